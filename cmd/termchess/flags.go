// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/game"
	"github.com/lgbarn/termchess-go/internal/search"
)

var (
	// Game options
	mode     = flag.String("mode", "hb", "Game mode: hh (human vs human), hw (engine plays white), hb (engine plays black)")
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the standard one")

	// Search options
	depth   = flag.Int("depth", search.DefaultDepth, "Engine search depth in plies")
	seed    = flag.Int64("seed", 0, "Seed for choosing between equally good moves (0 = from the clock)")
	workers = flag.Int("workers", 1, "Goroutines to split the engine's root moves across")

	// Display options
	noColour = flag.Bool("nocolor", false, "Disable ANSI colours")
	flip     = flag.Bool("flip", false, "Draw the board from Black's side")

	// Diagnostics
	perftDepth = flag.Int("perft", 0, "Count move tree leaves to depth N from the start position and exit")
	verbosity  = flag.Int("v", 0, "Verbosity: 0 silent, 1 moves, 2 search statistics")
	logFile    = flag.String("l", "", "Write diagnostics to log file (default: stderr)")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration and validates it.
func applyFlags(cfg *config.Config) error {
	m, err := config.ParseMode(*mode)
	if err != nil {
		return err
	}
	cfg.Mode = m
	cfg.StartFEN = *startFEN
	cfg.Verbosity = *verbosity

	applySearchFlags(cfg)
	applyDisplayFlags(cfg)

	return cfg.Validate()
}

// applySearchFlags configures the automated player.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.Seed = *seed
	cfg.Search.Workers = *workers
}

// applyDisplayFlags configures board rendering. The board is drawn from
// Black's side when the human plays Black.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Colour = !*noColour
	cfg.Display.Flip = *flip || cfg.Mode == game.HumanVsEngineWhite
}

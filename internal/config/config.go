// Package config provides configuration for termchess.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/game"
)

// Verbosity levels for Logf.
const (
	Silent     = 0
	MoveLog    = 1 // one line per move played
	SearchInfo = 2 // search statistics per automated move
)

// Config holds all program configuration.
type Config struct {
	Mode      game.Mode
	Verbosity int // 0=nothing, 1=moves, 2=search statistics

	// StartFEN is the starting position; empty means the standard one.
	StartFEN string

	Search  *SearchConfig
	Display *DisplayConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:       game.HumanVsEngineBlack,
		Verbosity:  Silent,
		Search:     NewSearchConfig(),
		Display:    NewDisplayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	switch c.Mode {
	case game.HumanVsHuman, game.HumanVsEngineWhite, game.HumanVsEngineBlack:
	default:
		return fmt.Errorf("mode %d: %w", c.Mode, errors.ErrInvalidConfig)
	}
	if c.Verbosity < Silent || c.Verbosity > SearchInfo {
		return fmt.Errorf("verbosity %d not in 0..%d: %w", c.Verbosity, SearchInfo, errors.ErrInvalidConfig)
	}
	return c.Search.Validate()
}

// SetOutput sets the stream the board and prompts are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Logger returns Logf bound to level, for packages that take a plain
// printf-style sink.
func (c *Config) Logger(level int) func(format string, args ...interface{}) {
	return func(format string, args ...interface{}) {
		c.Logf(level, format, args...)
	}
}

// ParseMode parses a command line mode name.
func ParseMode(s string) (game.Mode, error) {
	m, ok := game.ParseMode(s)
	if !ok {
		return m, fmt.Errorf("mode %q (want hh, hw or hb): %w", s, errors.ErrInvalidConfig)
	}
	return m, nil
}

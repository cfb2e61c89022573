package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/engine"
)

// runPerft prints the perft node count below each root move and the total.
func runPerft(ctx context.Context, cfg *config.Config, depth int) error {
	state := chess.NewGameState()
	if cfg.StartFEN != "" {
		var err error
		if state, err = engine.ParseFEN(cfg.StartFEN); err != nil {
			return err
		}
	}

	start := time.Now()
	entries, err := engine.PerftDivide(ctx, state, depth, cfg.Search.Workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})

	var total uint64
	for _, e := range entries {
		fmt.Fprintf(cfg.OutputFile, "%v: %d\n", e.Move, e.Nodes)
		total += e.Nodes
	}
	fmt.Fprintf(cfg.OutputFile, "\nNodes: %d\n", total)
	cfg.Logf(config.MoveLog, "perft depth %d: %d nodes in %v", depth, total, elapsed)
	return nil
}

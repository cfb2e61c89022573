package engine

import (
	"context"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(state chess.GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(state)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(Apply(state, m), depth-1)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// PerftDivide reports perft counts per root move, in move generation order.
// Root subtrees are processed by a worker pool with the given number of workers.
// Subtrees not yet started when ctx is cancelled are skipped.
func PerftDivide(ctx context.Context, state chess.GameState, depth, workers int) ([]DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}
	moves := LegalMoves(state)
	jobs := make([]worker.Job, len(moves))
	for i, m := range moves {
		jobs[i] = worker.Job{Index: i, Move: m, State: Apply(state, m), Depth: depth - 1}
	}

	results, err := worker.Run(ctx, jobs, func(job worker.Job) worker.Result {
		return worker.Result{Index: job.Index, Move: job.Move, Nodes: Perft(job.State, job.Depth)}
	}, worker.WithWorkers(workers))
	if err != nil {
		return nil, err
	}

	entries := make([]DivideEntry, len(results))
	for i, r := range results {
		entries[i] = DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	return entries, nil
}

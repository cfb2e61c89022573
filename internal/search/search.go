// Package search selects moves for the automated player with depth-bounded
// minimax and alpha-beta pruning.
package search

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/eval"
)

const (
	// DefaultDepth is the search depth in plies when none is configured.
	DefaultDepth = 2

	// MateScore is the score of delivering checkmate at the root. A mate
	// found n plies deep scores MateScore-n, so faster mates score higher.
	MateScore = 1000000

	// DrawScore is the score of a stalemate.
	DrawScore = 0

	infinity = MateScore + 1

	// How many nodes pass between context checks.
	cancelCheckInterval = 1024
)

// Logger receives search diagnostics.
type Logger func(format string, args ...interface{})

// Searcher picks moves. Each call searches from scratch; nothing is cached
// between calls. A Searcher is not safe for concurrent use because of its
// random source, but a single search may itself use several goroutines.
type Searcher struct {
	depth   int
	workers int
	rng     *rand.Rand
	logf    Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithDepth sets the search depth in plies. Values below 1 are ignored.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 1 {
			s.depth = depth
		}
	}
}

// WithWorkers splits root moves across n goroutines when n > 1.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithSeed seeds the tie-break random source.
func WithSeed(seed int64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the diagnostics sink.
func WithLogger(logf Logger) Option {
	return func(s *Searcher) {
		if logf != nil {
			s.logf = logf
		}
	}
}

// New creates a Searcher. Defaults: depth 2, one worker, time-seeded ties.
func New(opts ...Option) *Searcher {
	s := &Searcher{
		depth:   DefaultDepth,
		workers: 1,
		logf:    func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Depth returns the configured depth.
func (s *Searcher) Depth() int {
	return s.depth
}

// Result is the outcome of a search.
type Result struct {
	Move  chess.Move
	Score int // from the perspective of the side to move at the root
	Depth int
	Nodes uint64

	// Candidates are all root moves sharing the best score; Move is one of them.
	Candidates []chess.Move
}

// SelectMove searches to the configured depth and returns the chosen move.
func (s *Searcher) SelectMove(ctx context.Context, state chess.GameState) (chess.Move, error) {
	r, err := s.Search(ctx, state, s.depth)
	if err != nil {
		return chess.Move{}, err
	}
	return r.Move, nil
}

// Search runs minimax with alpha-beta pruning to depth plies for the side to
// move. Ties among equally scored root moves are broken uniformly at random.
// A position without legal moves is a caller error and yields ErrNoLegalMoves.
func (s *Searcher) Search(ctx context.Context, state chess.GameState, depth int) (Result, error) {
	if depth < 1 {
		depth = 1
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	moves := engine.LegalMoves(state)
	if len(moves) == 0 {
		return Result{}, errors.Wrapf(errors.ErrNoLegalMoves, "search from %q", engine.FEN(state))
	}
	orderMoves(moves)

	var (
		scores []int
		nodes  uint64
		err    error
	)
	if s.workers > 1 && len(moves) > 1 {
		scores, nodes, err = s.searchParallel(ctx, state, moves, depth)
	} else {
		scores, nodes, err = s.searchSequential(ctx, state, moves, depth)
	}
	if err != nil {
		return Result{}, err
	}

	best := -infinity
	for _, v := range scores {
		if v > best {
			best = v
		}
	}
	var candidates []chess.Move
	for i, v := range scores {
		if v == best {
			candidates = append(candidates, moves[i])
		}
	}

	r := Result{
		Move:       candidates[s.rng.Intn(len(candidates))],
		Score:      best,
		Depth:      depth,
		Nodes:      nodes,
		Candidates: candidates,
	}
	s.logf("search depth=%d nodes=%d score=%d candidates=%d move=%v", depth, nodes, best, len(candidates), r.Move)
	return r, nil
}

// searchSequential scores root moves in order. Each later move is searched
// with alpha just below the best score so far: a move that ties is scored
// exactly, and a worse one fails low and can never be mistaken for a tie.
func (s *Searcher) searchSequential(ctx context.Context, state chess.GameState, moves []chess.Move, depth int) ([]int, uint64, error) {
	w := &walker{ctx: ctx, root: state.ToMove}
	scores := make([]int, len(moves))
	best := -infinity
	for i, m := range moves {
		alpha := -infinity
		if best > -infinity {
			alpha = best - 1
		}
		v := w.minimax(engine.Apply(state, m), depth-1, alpha, infinity, 1)
		if w.err != nil {
			return nil, w.nodes, w.err
		}
		scores[i] = v
		if v > best {
			best = v
		}
	}
	return scores, w.nodes, nil
}

// searchParallel scores every root move with a full window on its own
// goroutine. Each branch owns its GameState copy; the caller merges.
func (s *Searcher) searchParallel(ctx context.Context, state chess.GameState, moves []chess.Move, depth int) ([]int, uint64, error) {
	scores := make([]int, len(moves))
	nodes := make([]uint64, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, m := range moves {
		i, child := i, engine.Apply(state, m)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w := &walker{ctx: ctx, root: state.ToMove}
			scores[i] = w.minimax(child, depth-1, -infinity, infinity, 1)
			nodes[i] = w.nodes
			return w.err
		})
	}
	err := g.Wait()

	var total uint64
	for _, n := range nodes {
		total += n
	}
	return scores, total, err
}

// walker carries the state of one recursive search.
type walker struct {
	ctx   context.Context
	root  chess.Colour
	nodes uint64
	err   error
}

// minimax returns the score of state from the root side's perspective.
// The root side maximizes, the opponent minimizes.
func (w *walker) minimax(state chess.GameState, depth, alpha, beta, ply int) int {
	w.nodes++
	if w.nodes%cancelCheckInterval == 0 && w.err == nil {
		w.err = w.ctx.Err()
	}
	if w.err != nil {
		return 0
	}

	if depth <= 0 {
		if !engine.HasLegalMoves(state) {
			return w.terminal(state, ply)
		}
		return eval.Evaluate(&state.Board, w.root)
	}

	moves := engine.LegalMoves(state)
	if len(moves) == 0 {
		return w.terminal(state, ply)
	}
	orderMoves(moves)

	if state.ToMove == w.root {
		best := -infinity
		for _, m := range moves {
			v := w.minimax(engine.Apply(state, m), depth-1, alpha, beta, ply+1)
			if v > best {
				best = v
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := infinity
	for _, m := range moves {
		v := w.minimax(engine.Apply(state, m), depth-1, alpha, beta, ply+1)
		if v < best {
			best = v
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// terminal scores a position without legal moves.
func (w *walker) terminal(state chess.GameState, ply int) int {
	if !engine.IsInCheck(&state.Board, state.ToMove) {
		return DrawScore
	}
	if state.ToMove == w.root {
		return -(MateScore - ply)
	}
	return MateScore - ply
}

// orderMoves puts captures of valuable pieces first to prune earlier.
// The order never changes which moves tie at the root.
func orderMoves(moves []chess.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Captured.Value() > moves[j].Captured.Value()
	})
}

// IsMate reports whether score encodes a forced mate for either side.
func IsMate(score int) bool {
	return score >= MateScore-1000 || score <= -(MateScore-1000)
}

// MatePlies returns the number of plies to mate encoded in score.
func MatePlies(score int) int {
	if score < 0 {
		return MateScore + score
	}
	return MateScore - score
}

// Package game runs a chess game: it tracks the current position and turn
// order, validates candidate moves from humans and the engine alike, and
// reports check, checkmate and stalemate.
package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/search"
)

// Mode selects which sides the engine plays.
type Mode int

const (
	HumanVsHuman Mode = iota
	// HumanVsEngineWhite has the engine play White.
	HumanVsEngineWhite
	// HumanVsEngineBlack has the engine play Black.
	HumanVsEngineBlack
)

// String returns the short name used on the command line.
func (m Mode) String() string {
	switch m {
	case HumanVsHuman:
		return "hh"
	case HumanVsEngineWhite:
		return "hw"
	case HumanVsEngineBlack:
		return "hb"
	}
	return "unknown"
}

// EngineColour returns the colour the engine plays, if any.
func (m Mode) EngineColour() (chess.Colour, bool) {
	switch m {
	case HumanVsEngineWhite:
		return chess.White, true
	case HumanVsEngineBlack:
		return chess.Black, true
	}
	return chess.White, false
}

// ParseMode parses a mode name as accepted on the command line.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hh", "human", "human-vs-human":
		return HumanVsHuman, true
	case "hw", "white", "engine-white":
		return HumanVsEngineWhite, true
	case "hb", "black", "engine-black":
		return HumanVsEngineBlack, true
	}
	return HumanVsHuman, false
}

// Phase is the controller state.
type Phase int

const (
	AwaitingMove Phase = iota
	// MoveApplied is held only while the new position is classified.
	MoveApplied
	// Check is AwaitingMove for a side in check.
	Check
	Checkmate
	Stalemate
	// Terminated is reached by Quit.
	Terminated
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case AwaitingMove:
		return "awaiting move"
	case MoveApplied:
		return "move applied"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Over reports whether no more moves can be played.
func (p Phase) Over() bool {
	return p == Checkmate || p == Stalemate || p == Terminated
}

// Game is a single game. It is not safe for concurrent use.
type Game struct {
	ID string

	mode     Mode
	state    chess.GameState
	status   engine.Status
	phase    Phase
	history  []chess.GameState // state before each played move
	moves    []chess.Move
	searcher *search.Searcher
	logf     func(format string, args ...interface{})
}

// Option configures a Game.
type Option func(*Game)

// WithMode sets which sides the engine plays.
func WithMode(m Mode) Option {
	return func(g *Game) {
		g.mode = m
	}
}

// WithSearcher sets the searcher used for automated moves.
func WithSearcher(s *search.Searcher) Option {
	return func(g *Game) {
		if s != nil {
			g.searcher = s
		}
	}
}

// WithLogger sets the sink for move diagnostics.
func WithLogger(logf func(format string, args ...interface{})) Option {
	return func(g *Game) {
		if logf != nil {
			g.logf = logf
		}
	}
}

// New starts a game from the standard position.
func New(opts ...Option) *Game {
	return newGame(chess.NewGameState(), opts...)
}

// NewFromFEN starts a game from a FEN position.
func NewFromFEN(fen string, opts ...Option) (*Game, error) {
	state, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(state, opts...), nil
}

func newGame(state chess.GameState, opts ...Option) *Game {
	g := &Game{
		ID:    uuid.New().String(),
		mode:  HumanVsEngineBlack,
		state: state,
		logf:  func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.searcher == nil {
		g.searcher = search.New()
	}
	g.classify()
	return g
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// State returns a copy of the current position.
func (g *Game) State() chess.GameState {
	return g.state
}

// Status returns the classification of the current position.
func (g *Game) Status() engine.Status {
	return g.status
}

// Phase returns the controller state.
func (g *Game) Phase() Phase {
	return g.phase
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.state.ToMove
}

// Moves returns the moves played so far.
func (g *Game) Moves() []chess.Move {
	out := make([]chess.Move, len(g.moves))
	copy(out, g.moves)
	return out
}

// LegalMoves returns the legal moves for the side to move, or none once the
// game is over.
func (g *Game) LegalMoves() []chess.Move {
	if g.phase.Over() {
		return nil
	}
	return engine.LegalMoves(g.state)
}

// IsAutomatedTurn reports whether the engine should move next.
func (g *Game) IsAutomatedTurn() bool {
	if g.phase.Over() {
		return false
	}
	c, ok := g.mode.EngineColour()
	return ok && c == g.state.ToMove
}

// ResolveMove finds the legal move from one square to another.
func (g *Game) ResolveMove(from, to chess.Square) (chess.Move, error) {
	if g.phase.Over() {
		return chess.Move{}, g.overError()
	}

	text := from.String() + to.String()
	if m, ok := engine.FindMove(g.state, from, to); ok {
		return m, nil
	}

	p, ok := g.state.Board.PieceAt(from)
	switch {
	case !ok:
		return chess.Move{}, g.moveError(text, fmt.Sprintf("no piece on %v", from))
	case p.Colour != g.state.ToMove:
		return chess.Move{}, g.moveError(text, "that is not your piece")
	}
	return chess.Move{}, g.moveError(text, fmt.Sprintf("%v on %v cannot move to %v", p.Kind, from, to))
}

// Play validates m against the legal moves of the current position and
// applies it. Human and engine moves take this same path. A rejected move
// leaves the game untouched.
func (g *Game) Play(m chess.Move) (engine.Status, error) {
	if g.phase.Over() {
		return g.status, g.overError()
	}
	if !engine.IsLegal(g.state, m) {
		return g.status, g.moveError(m.String(), "not a legal move")
	}

	mover := g.state.ToMove
	g.history = append(g.history, g.state)
	g.moves = append(g.moves, m)
	g.state = engine.Apply(g.state, m)
	g.phase = MoveApplied
	g.classify()

	g.logf("game %s ply %d: %v plays %v, %v", g.ID, len(g.moves), mover, m, g.status)
	return g.status, nil
}

// PlayCoordinates resolves and plays the move from one square to another.
func (g *Game) PlayCoordinates(from, to chess.Square) (engine.Status, error) {
	m, err := g.ResolveMove(from, to)
	if err != nil {
		return g.status, err
	}
	return g.Play(m)
}

// AutomatedMove asks the searcher for a move and plays it through Play.
func (g *Game) AutomatedMove(ctx context.Context) (chess.Move, error) {
	if g.phase.Over() {
		return chess.Move{}, g.overError()
	}
	m, err := g.searcher.SelectMove(ctx, g.state)
	if err != nil {
		return chess.Move{}, err
	}
	if _, err := g.Play(m); err != nil {
		return chess.Move{}, err
	}
	return m, nil
}

// Undo takes back the last move. When playing the engine, the engine's
// reply is taken back along with the human move so the human is to move
// again. It returns the moves taken back, most recent first.
func (g *Game) Undo() ([]chess.Move, error) {
	if g.phase == Terminated {
		return nil, g.overError()
	}
	if len(g.moves) == 0 {
		return nil, errors.ErrNothingToUndo
	}

	var undone []chess.Move
	for len(g.moves) > 0 {
		last := len(g.moves) - 1
		undone = append(undone, g.moves[last])
		g.state = g.history[last]
		g.history = g.history[:last]
		g.moves = g.moves[:last]
		g.phase = AwaitingMove
		g.classify()
		if !g.IsAutomatedTurn() {
			break
		}
	}

	g.logf("game %s: took back %d ply", g.ID, len(undone))
	return undone, nil
}

// Quit ends the game at the player's request.
func (g *Game) Quit() {
	g.phase = Terminated
	g.logf("game %s: terminated after %d ply", g.ID, len(g.moves))
}

// classify sets the status and phase from the current position.
func (g *Game) classify() {
	g.status = engine.GameStatus(g.state)
	switch g.status.Kind {
	case engine.Check:
		g.phase = Check
	case engine.Checkmate:
		g.phase = Checkmate
	case engine.Stalemate:
		g.phase = Stalemate
	default:
		g.phase = AwaitingMove
	}
}

func (g *Game) moveError(text, reason string) error {
	return &errors.MoveError{
		Err:      errors.ErrInvalidMove,
		Ply:      g.state.Ply() + 1,
		MoveText: text,
		Reason:   reason,
	}
}

func (g *Game) overError() error {
	return errors.Wrapf(errors.ErrGameOver, "%v", g.phase)
}

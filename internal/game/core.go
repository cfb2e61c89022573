package game

import (
	"context"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/search"
)

// The functions below are the stateless core over chess.GameState values,
// for callers that keep their own position rather than a Game.

// NewGame returns the standard starting position.
func NewGame() chess.GameState {
	return chess.NewGameState()
}

// LegalMoves returns the legal moves for the side to move.
func LegalMoves(state chess.GameState) []chess.Move {
	return engine.LegalMoves(state)
}

// ApplyMove returns the position after m, or a *errors.MoveError wrapping
// ErrInvalidMove when m is not legal in state.
func ApplyMove(state chess.GameState, m chess.Move) (chess.GameState, error) {
	if !engine.IsLegal(state, m) {
		return state, &errors.MoveError{
			Err:      errors.ErrInvalidMove,
			Ply:      state.Ply() + 1,
			MoveText: m.String(),
			Reason:   "not a legal move",
		}
	}
	return engine.Apply(state, m), nil
}

// GameStatus classifies state for the side to move.
func GameStatus(state chess.GameState) engine.Status {
	return engine.GameStatus(state)
}

// AutomatedMove searches depth plies and returns the chosen move.
func AutomatedMove(ctx context.Context, state chess.GameState, depth int) (chess.Move, error) {
	return search.New(search.WithDepth(depth)).SelectMove(ctx, state)
}

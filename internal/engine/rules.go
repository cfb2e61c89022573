package engine

import (
	"fmt"

	"github.com/lgbarn/termchess-go/internal/chess"
)

// StatusKind classifies a position for the side to move.
type StatusKind int

const (
	InProgress StatusKind = iota
	Check
	Checkmate
	Stalemate
)

// String returns the name of the status kind.
func (k StatusKind) String() string {
	switch k {
	case InProgress:
		return "in progress"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// Status is the outcome of a position.
type Status struct {
	Kind StatusKind

	// For Check, the side in check. For Checkmate, the winner.
	// Unused for InProgress and Stalemate.
	Colour chess.Colour
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s.Kind == Checkmate || s.Kind == Stalemate
}

// String describes the status for display.
func (s Status) String() string {
	switch s.Kind {
	case Check:
		return fmt.Sprintf("%v is in check", s.Colour)
	case Checkmate:
		return fmt.Sprintf("checkmate, %v wins", s.Colour)
	case Stalemate:
		return "stalemate, draw"
	}
	return "in progress"
}

// GameStatus classifies the state for the side to move.
// No legal moves while in check is checkmate; without check it is stalemate.
func GameStatus(state chess.GameState) Status {
	colour := state.ToMove
	inCheck := IsInCheck(&state.Board, colour)
	hasMoves := HasLegalMoves(state)

	switch {
	case inCheck && !hasMoves:
		return Status{Kind: Checkmate, Colour: colour.Opposite()}
	case !hasMoves:
		return Status{Kind: Stalemate}
	case inCheck:
		return Status{Kind: Check, Colour: colour}
	}
	return Status{Kind: InProgress}
}

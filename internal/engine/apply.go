// Package engine implements the chess rules: move generation, legality,
// move application, check detection and game outcome.
package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// Apply returns the state after m. The argument state is not modified.
// m is trusted to be legal; validate with IsLegal or FindMove first.
func Apply(state chess.GameState, m chess.Move) chess.GameState {
	colour := state.ToMove
	next := state
	next.Board = state.Board.WithMoveApplied(m)
	next.Castling = updateCastlingRights(state.Castling, m)

	// Set en passant square if double pawn push
	next.EnPassant = chess.NoSquare
	if m.Piece.Kind == chess.Pawn && abs(int(m.To.Rank)-int(m.From.Rank)) == 2 {
		next.EnPassant = chess.Square{File: m.From.File, Rank: (m.From.Rank + m.To.Rank) / 2}
	}

	if m.Piece.Kind == chess.Pawn || m.IsCapture() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if colour == chess.Black {
		next.FullmoveNumber++
	}
	next.ToMove = colour.Opposite()
	return next
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

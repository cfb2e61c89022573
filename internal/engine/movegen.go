package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// PseudoLegalMoves returns every move obeying the movement rules for the side
// to move, without checking whether the mover's king is left in check.
// Castling moves are fully checked since their legality depends on attacks
// along the king's path.
func PseudoLegalMoves(state chess.GameState) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	colour := state.ToMove
	state.Board.ForEach(func(sq chess.Square, p chess.Piece) {
		if p.Colour == colour {
			moves = addPieceMoves(moves, &state, sq, p)
		}
	})
	return moves
}

// LegalMoves returns the moves available to the side to move that do not
// leave its own king attacked. The result is empty, never nil-erroring, when
// the side has no moves.
func LegalMoves(state chess.GameState) []chess.Move {
	pseudo := PseudoLegalMoves(state)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if isLegal(&state.Board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(state chess.GameState, from chess.Square) []chess.Move {
	var moves []chess.Move
	for _, m := range LegalMoves(state) {
		if m.From == from {
			moves = append(moves, m)
		}
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(state chess.GameState) bool {
	for _, m := range PseudoLegalMoves(state) {
		if isLegal(&state.Board, m) {
			return true
		}
	}
	return false
}

// FindMove returns the legal move from -> to, if there is one.
func FindMove(state chess.GameState, from, to chess.Square) (chess.Move, bool) {
	for _, m := range LegalMoves(state) {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return chess.Move{}, false
}

// IsLegal reports whether m is in the legal set of state.
func IsLegal(state chess.GameState, m chess.Move) bool {
	for _, lm := range LegalMoves(state) {
		if lm == m {
			return true
		}
	}
	return false
}

// isLegal makes the move on a copied board and checks it does not leave the king in check.
func isLegal(board *chess.Board, m chess.Move) bool {
	next := board.WithMoveApplied(m)
	return !IsInCheck(&next, m.Piece.Colour)
}

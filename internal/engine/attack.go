package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if sq is attacked by any piece of byColour.
// Attacks are computed by looking outward from sq, so occupancy of sq itself is irrelevant.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack diagonally forward, so look one rank behind from the pawn's point of view.
	pawn := chess.Piece{Kind: chess.Pawn, Colour: byColour}
	behind := -byColour.Forward()
	if board.Get(sq.Offset(-1, behind)) == pawn || board.Get(sq.Offset(1, behind)) == pawn {
		return true
	}

	knight := chess.Piece{Kind: chess.Knight, Colour: byColour}
	for _, d := range knightOffsets {
		if board.Get(sq.Offset(d[0], d[1])) == knight {
			return true
		}
	}

	king := chess.Piece{Kind: chess.King, Colour: byColour}
	for _, d := range kingOffsets {
		if board.Get(sq.Offset(d[0], d[1])) == king {
			return true
		}
	}

	queen := chess.Piece{Kind: chess.Queen, Colour: byColour}
	bishop := chess.Piece{Kind: chess.Bishop, Colour: byColour}
	if attackedAlong(board, sq, diagonalDirs, bishop, queen) {
		return true
	}
	rook := chess.Piece{Kind: chess.Rook, Colour: byColour}
	return attackedAlong(board, sq, straightDirs, rook, queen)
}

// attackedAlong walks each direction from sq and reports whether the first
// piece met is one of the two given sliders.
func attackedAlong(board *chess.Board, sq chess.Square, dirs [4][2]int, slider, queen chess.Piece) bool {
	for _, d := range dirs {
		for to := sq.Offset(d[0], d[1]); to.Valid(); to = to.Offset(d[0], d[1]) {
			piece := board.Get(to)
			if piece.IsEmpty() {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break // Blocked
		}
	}
	return false
}

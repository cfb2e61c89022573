package engine

import "github.com/lgbarn/termchess-go/internal/chess"

var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// addPieceMoves appends the pseudo-legal moves of the piece on from.
func addPieceMoves(moves []chess.Move, state *chess.GameState, from chess.Square, piece chess.Piece) []chess.Move {
	switch piece.Kind {
	case chess.Pawn:
		return addPawnMoves(moves, state, from, piece)
	case chess.Knight:
		return addStepMoves(moves, &state.Board, from, piece, knightOffsets[:])
	case chess.Bishop:
		return addSlidingMoves(moves, &state.Board, from, piece, diagonalDirs[:])
	case chess.Rook:
		return addSlidingMoves(moves, &state.Board, from, piece, straightDirs[:])
	case chess.Queen:
		moves = addSlidingMoves(moves, &state.Board, from, piece, diagonalDirs[:])
		return addSlidingMoves(moves, &state.Board, from, piece, straightDirs[:])
	case chess.King:
		moves = addStepMoves(moves, &state.Board, from, piece, kingOffsets[:])
		return addCastlingMoves(moves, state, from, piece)
	}
	return moves
}

// addStepMoves handles single-step pieces (knight and king).
func addStepMoves(moves []chess.Move, board *chess.Board, from chess.Square, piece chess.Piece, offsets [][2]int) []chess.Move {
	for _, d := range offsets {
		to := from.Offset(d[0], d[1])
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Colour != piece.Colour {
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
		}
	}
	return moves
}

// addSlidingMoves handles bishops, rooks and queens: slide until the edge or
// the first piece, which is captured if it belongs to the opponent.
func addSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, piece chess.Piece, dirs [][2]int) []chess.Move {
	for _, d := range dirs {
		for to := from.Offset(d[0], d[1]); to.Valid(); to = to.Offset(d[0], d[1]) {
			target := board.Get(to)
			if target.IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: to, Piece: piece})
				continue
			}
			if target.Colour != piece.Colour {
				moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
			}
			break // Blocked
		}
	}
	return moves
}

package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// castlePath describes the squares involved in one castling move, as file indices.
type castlePath struct {
	kind     chess.MoveKind
	kingTo   int8
	rookFrom int8
	empty    []int8 // must be unoccupied
	safe     []int8 // king passes through or lands on these; must not be attacked
}

var castlePaths = [2]castlePath{
	{kind: chess.CastleKingside, kingTo: 6, rookFrom: 7, empty: []int8{5, 6}, safe: []int8{5, 6}},
	{kind: chess.CastleQueenside, kingTo: 2, rookFrom: 0, empty: []int8{1, 2, 3}, safe: []int8{3, 2}},
}

// addCastlingMoves appends castling moves for the king on from.
// Castling requires: the right is still held (king and rook unmoved), the
// rook is in place, the squares between are empty, the king is not in check
// and does not pass through or land on an attacked square.
func addCastlingMoves(moves []chess.Move, state *chess.GameState, from chess.Square, king chess.Piece) []chess.Move {
	colour := king.Colour
	home := colour.HomeRank()
	if from != (chess.Square{File: 4, Rank: home}) {
		return moves
	}
	board := &state.Board
	opponent := colour.Opposite()
	rook := chess.Piece{Kind: chess.Rook, Colour: colour}

	inCheck := false
	checked := false

	for _, path := range castlePaths {
		right := chess.Kingside(colour)
		if path.kind == chess.CastleQueenside {
			right = chess.Queenside(colour)
		}
		if !state.Castling.Has(right) {
			continue
		}
		if board.Get(chess.Square{File: path.rookFrom, Rank: home}) != rook {
			continue
		}
		if !squaresEmpty(board, home, path.empty) {
			continue
		}
		if !checked {
			inCheck = IsSquareAttacked(board, from, opponent)
			checked = true
		}
		if inCheck {
			return moves
		}
		if anyAttacked(board, home, path.safe, opponent) {
			continue
		}
		moves = append(moves, chess.Move{
			From:  from,
			To:    chess.Square{File: path.kingTo, Rank: home},
			Piece: king,
			Kind:  path.kind,
		})
	}
	return moves
}

func squaresEmpty(board *chess.Board, rank int8, files []int8) bool {
	for _, f := range files {
		if !board.Get(chess.Square{File: f, Rank: rank}).IsEmpty() {
			return false
		}
	}
	return true
}

func anyAttacked(board *chess.Board, rank int8, files []int8, by chess.Colour) bool {
	for _, f := range files {
		if IsSquareAttacked(board, chess.Square{File: f, Rank: rank}, by) {
			return true
		}
	}
	return false
}

// updateCastlingRights removes rights lost by m: a king move loses both,
// a rook leaving or being captured on its home corner loses that side.
func updateCastlingRights(rights chess.CastlingRights, m chess.Move) chess.CastlingRights {
	if m.Piece.Kind == chess.King {
		rights = rights.Without(chess.Kingside(m.Piece.Colour) | chess.Queenside(m.Piece.Colour))
	}
	rights = rights.Without(cornerRight(m.From))
	rights = rights.Without(cornerRight(m.To))
	return rights
}

// cornerRight returns the castling right tied to a rook's home corner.
func cornerRight(sq chess.Square) chess.CastlingRights {
	switch sq {
	case chess.Sq(0, 0):
		return chess.WhiteQueenside
	case chess.Sq(7, 0):
		return chess.WhiteKingside
	case chess.Sq(0, 7):
		return chess.BlackQueenside
	case chess.Sq(7, 7):
		return chess.BlackKingside
	}
	return chess.NoCastling
}

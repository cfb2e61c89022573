package chess

import "strings"

// Board is the 8x8 grid of pieces, indexed rank-major from a1.
// It is a value type: copying a Board copies every square.
// Accessors and mutators take a pointer. WithMoveApplied and String take
// a copy and never modify the caller's board.
type Board struct {
	squares [BoardSize * BoardSize]Piece
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// StartingBoard returns the standard initial position.
func StartingBoard() Board {
	var b Board
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Set(Sq(file, 0), W(backRank[file]))
		b.Set(Sq(file, 1), W(Pawn))
		b.Set(Sq(file, 6), B(Pawn))
		b.Set(Sq(file, 7), B(backRank[file]))
	}
	return b
}

// PieceAt returns the piece on sq and whether the square is occupied.
// Off-board squares are reported as empty.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return NoPiece, false
	}
	p := b.squares[sq.index()]
	return p, !p.IsEmpty()
}

// Get returns the piece on sq, or NoPiece.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq.index()]
}

// Set places p on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b.squares[sq.index()] = p
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, NoPiece)
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(c Colour) (Square, bool) {
	king := Piece{Kind: King, Colour: c}
	for i, p := range b.squares {
		if p == king {
			return Sq(i%BoardSize, i/BoardSize), true
		}
	}
	return NoSquare, false
}

// Count returns the number of pieces matching p.
func (b *Board) Count(p Piece) int {
	n := 0
	for _, q := range b.squares {
		if q == p {
			n++
		}
	}
	return n
}

// ForEach calls fn for every occupied square in a1..h8 order.
func (b *Board) ForEach(fn func(sq Square, p Piece)) {
	for i, p := range b.squares {
		if !p.IsEmpty() {
			fn(Sq(i%BoardSize, i/BoardSize), p)
		}
	}
}

// WithMoveApplied returns a new board reflecting m. The receiver is not modified.
// Special move kinds carry their secondary effects: castling also moves the
// rook, en passant removes the bypassed pawn, promotion places a queen.
// The move is trusted to be structurally valid.
func (b Board) WithMoveApplied(m Move) Board {
	next := b
	next.Clear(m.From)

	switch m.Kind {
	case CastleKingside, CastleQueenside:
		rookFrom, rookTo := m.CastleRookSquares()
		rook := next.Get(rookFrom)
		next.Clear(rookFrom)
		next.Set(rookTo, rook)
		next.Set(m.To, m.Piece)
	case EnPassant:
		next.Clear(Square{File: m.To.File, Rank: m.From.Rank})
		next.Set(m.To, m.Piece)
	case Promotion:
		next.Set(m.To, Piece{Kind: Queen, Colour: m.Piece.Colour})
	default:
		next.Set(m.To, m.Piece)
	}
	return next
}

// String renders the board with rank 8 at the top, one line per rank.
func (b Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.Get(Sq(file, rank)).Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

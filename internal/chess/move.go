package chess

// MoveKind categorizes moves by their board side effects.
type MoveKind int8

const (
	Normal MoveKind = iota
	CastleKingside
	CastleQueenside
	EnPassant
	Promotion
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case CastleKingside:
		return "castle-kingside"
	case CastleQueenside:
		return "castle-queenside"
	case EnPassant:
		return "en-passant"
	case Promotion:
		return "promotion"
	}
	return "unknown"
}

// Move describes a transition between two positions. It is a value, not an action.
type Move struct {
	From Square
	To   Square

	// The piece being moved.
	Piece Piece

	// The piece captured, NoPiece if none. For en passant this is the
	// bypassed pawn, which does not stand on To.
	Captured Piece

	Kind MoveKind
}

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsCastle reports whether the move is either castling move.
func (m Move) IsCastle() bool {
	return m.Kind == CastleKingside || m.Kind == CastleQueenside
}

// CastleRookSquares returns the rook's origin and destination for a castling move.
func (m Move) CastleRookSquares() (from, to Square) {
	rank := m.From.Rank
	if m.Kind == CastleQueenside {
		return Square{File: 0, Rank: rank}, Square{File: 3, Rank: rank}
	}
	return Square{File: 7, Rank: rank}, Square{File: 5, Rank: rank}
}

// String returns coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Kind == Promotion {
		s += "q"
	}
	return s
}

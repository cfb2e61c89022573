package chess

// CastlingRights records which castling moves remain available.
// A right is lost once the king or the relevant rook has moved or the rook is captured.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Kingside returns the kingside right for colour c.
func Kingside(c Colour) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

// Queenside returns the queenside right for colour c.
func Queenside(c Colour) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Has reports whether all rights in r are present.
func (cr CastlingRights) Has(r CastlingRights) bool {
	return cr&r == r
}

// Without returns cr with the rights in r removed.
func (cr CastlingRights) Without(r CastlingRights) CastlingRights {
	return cr &^ r
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var s []byte
	if cr.Has(WhiteKingside) {
		s = append(s, 'K')
	}
	if cr.Has(WhiteQueenside) {
		s = append(s, 'Q')
	}
	if cr.Has(BlackKingside) {
		s = append(s, 'k')
	}
	if cr.Has(BlackQueenside) {
		s = append(s, 'q')
	}
	return string(s)
}

// GameState is everything needed to continue a game from a position.
// It owns its Board by value; passing a GameState copies it.
type GameState struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// The square a pawn skipped over on the previous move, or NoSquare.
	EnPassant Square

	// Half-moves since the last pawn move or capture.
	HalfmoveClock int

	// Starts at 1 and increments after Black moves.
	FullmoveNumber int
}

// NewGameState returns the standard starting state.
func NewGameState() GameState {
	return GameState{
		Board:          StartingBoard(),
		ToMove:         White,
		Castling:       AllCastling,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

// Ply returns the number of half-moves played since the start of the game.
func (s GameState) Ply() int {
	ply := (s.FullmoveNumber - 1) * 2
	if s.ToMove == Black {
		ply++
	}
	return ply
}

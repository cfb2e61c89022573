// Package chess provides the core chess value types: colours, pieces,
// squares, boards, moves and game states.
package chess

// Colour represents the colour of a piece or player.
type Colour int8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (pawn direction in ranks).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index for the colour.
func (c Colour) HomeRank() int8 {
	if c == White {
		return 0
	}
	return 7
}

// Kind is the closed set of piece kinds.
type Kind int8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// Material values in pawns, indexed by Kind. The king is never counted.
var kindValues = [...]int{0, 1, 3, 3, 5, 9, 0}

var kindLetters = [...]byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}

// String returns the name of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Value returns the material value of the kind in pawns.
func (k Kind) Value() int {
	if k >= 0 && int(k) < len(kindValues) {
		return kindValues[k]
	}
	return 0
}

// Letter returns the upper-case letter for the kind.
func (k Kind) Letter() byte {
	if k >= 0 && int(k) < len(kindLetters) {
		return kindLetters[k]
	}
	return '?'
}

// KindFromLetter maps a piece letter of either case to its kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoKind
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the empty square marker.
var NoPiece = Piece{}

// W creates a white piece.
func W(k Kind) Piece { return Piece{Kind: k, Colour: White} }

// B creates a black piece.
func B(k Kind) Piece { return Piece{Kind: k, Colour: Black} }

// IsEmpty reports whether p is the empty marker.
func (p Piece) IsEmpty() bool { return p.Kind == NoKind }

// Value returns the material value of the piece.
func (p Piece) Value() int { return p.Kind.Value() }

// Letter returns the FEN letter: upper case for White, lower case for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

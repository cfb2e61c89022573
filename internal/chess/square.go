package chess

import (
	"fmt"

	"github.com/lgbarn/termchess-go/internal/errors"
)

// Square is a board coordinate. File 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File int8
	Rank int8
}

// NoSquare marks an absent square, e.g. no en-passant target.
var NoSquare = Square{File: -1, Rank: -1}

// Sq builds a square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: int8(file), Rank: int8(rank)}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square shifted by df files and dr ranks. The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + int8(df), Rank: s.Rank + int8(dr)}
}

// index returns the position of the square in a Board array.
func (s Square) index() int {
	return int(s.Rank)*BoardSize + int(s.File)
}

// String returns algebraic notation such as "e4", or "-" for an invalid square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare parses algebraic notation such as "e4". Upper-case files are accepted.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Expected: "square like e4"}
	}
	file := text[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	rank := text[1]
	if file < 'a' || file > 'h' {
		return NoSquare, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Expected: "file a-h", Got: fmt.Sprintf("%q", file)}
	}
	if rank < '1' || rank > '8' {
		return NoSquare, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Expected: "rank 1-8", Got: fmt.Sprintf("%q", rank)}
	}
	return Sq(int(file-'a'), int(rank-'1')), nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for constants and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

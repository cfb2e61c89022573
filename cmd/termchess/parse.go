package main

import (
	"strings"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
)

const moveFormat = "'e2 e4' or 'e2e4'"

// parseMoveText parses a move typed as two squares, "e2 e4", "e2e4" or
// "e2-e4". A trailing "q" on a promotion is accepted; pawns always promote
// to a queen.
func parseMoveText(text string) (from, to chess.Square, err error) {
	fields := strings.Fields(strings.ReplaceAll(strings.ToLower(text), "-", " "))
	if len(fields) == 1 && len(fields[0]) >= 4 {
		fields = []string{fields[0][:2], fields[0][2:]}
	}
	if len(fields) != 2 {
		return chess.NoSquare, chess.NoSquare, &errors.ParseError{
			Err:      errors.ErrInvalidMove,
			Input:    text,
			Expected: moveFormat,
		}
	}

	dest := fields[1]
	if len(dest) == 3 {
		if dest[2] != 'q' {
			return chess.NoSquare, chess.NoSquare, &errors.ParseError{
				Err:      errors.ErrInvalidMove,
				Input:    text,
				Expected: "promotion to q",
				Got:      dest[2:],
			}
		}
		dest = dest[:2]
	}

	if from, err = chess.ParseSquare(fields[0]); err != nil {
		return chess.NoSquare, chess.NoSquare, err
	}
	if to, err = chess.ParseSquare(dest); err != nil {
		return chess.NoSquare, chess.NoSquare, err
	}
	return from, to, nil
}

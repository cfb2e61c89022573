package testutil

import (
	"sort"

	"github.com/lgbarn/termchess-go/internal/chess"
)

// MoveStrings returns the coordinate notation of moves, sorted, so move
// sets can be compared with AssertEqual regardless of generation order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// ContainsMove reports whether moves has a move in the given coordinate notation.
func ContainsMove(moves []chess.Move, text string) bool {
	for _, m := range moves {
		if m.String() == text {
			return true
		}
	}
	return false
}

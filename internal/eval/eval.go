// Package eval scores positions for the search.
package eval

import "github.com/lgbarn/termchess-go/internal/chess"

// Score weights in centipawns. Positional bonuses stay well below a pawn.
const (
	PawnUnit          = 100
	CentreBonus       = 10 // any piece on d4, e4, d5 or e5
	PawnAdvance       = 5  // per rank a pawn has advanced from its start rank
	KnightCentreBonus = 15 // knight inside c3-f6
)

// Evaluate returns the score of board from perspective's point of view:
// material plus positional bonuses of perspective minus those of the opponent.
// It is a pure function of the board contents.
func Evaluate(board *chess.Board, perspective chess.Colour) int {
	score := 0
	board.ForEach(func(sq chess.Square, p chess.Piece) {
		v := pieceScore(sq, p)
		if p.Colour == perspective {
			score += v
		} else {
			score -= v
		}
	})
	return score
}

// Material returns the material balance in pawns from perspective's point of view.
func Material(board *chess.Board, perspective chess.Colour) int {
	total := 0
	board.ForEach(func(_ chess.Square, p chess.Piece) {
		if p.Colour == perspective {
			total += p.Value()
		} else {
			total -= p.Value()
		}
	})
	return total
}

// pieceScore is the unsigned contribution of one piece.
func pieceScore(sq chess.Square, p chess.Piece) int {
	v := p.Value() * PawnUnit
	if isCentre(sq) {
		v += CentreBonus
	}
	switch p.Kind {
	case chess.Pawn:
		start := p.Colour.HomeRank() + int8(p.Colour.Forward())
		advanced := int(sq.Rank - start)
		if advanced < 0 {
			advanced = -advanced
		}
		v += advanced * PawnAdvance
	case chess.Knight:
		if sq.File >= 2 && sq.File <= 5 && sq.Rank >= 2 && sq.Rank <= 5 {
			v += KnightCentreBonus
		}
	}
	return v
}

func isCentre(sq chess.Square) bool {
	return (sq.File == 3 || sq.File == 4) && (sq.Rank == 3 || sq.Rank == 4)
}

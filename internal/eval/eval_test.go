package eval

import (
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
)

func TestEvaluate_StartIsBalanced(t *testing.T) {
	state := chess.NewGameState()
	if got := Evaluate(&state.Board, chess.White); got != 0 {
		t.Errorf("Evaluate(start, White) = %d; want 0", got)
	}
	if got := Material(&state.Board, chess.Black); got != 0 {
		t.Errorf("Material(start, Black) = %d; want 0", got)
	}
}

func TestEvaluate_Symmetric(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	}
	for _, fen := range fens {
		state := engine.MustParseFEN(fen)
		w := Evaluate(&state.Board, chess.White)
		b := Evaluate(&state.Board, chess.Black)
		if w != -b {
			t.Errorf("%s: White %d, Black %d; want negation", fen, w, b)
		}
	}
}

func TestEvaluate_Components(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"extra queen", "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1", 900},
		{"extra rook for black", "r3k3/8/8/8/8/8/8/4K3 w - - 0 1", -500},
		{"centre pawn advanced two ranks", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", 100 + CentreBonus + 2*PawnAdvance},
		{"knight on f3", "4k3/8/8/8/8/5N2/8/4K3 w - - 0 1", 300 + KnightCentreBonus},
		{"knight on a1", "4k3/8/8/8/8/8/8/N3K3 w - - 0 1", 300},
		{"knight on e5", "4k3/8/8/4N3/8/8/8/4K3 w - - 0 1", 300 + KnightCentreBonus + CentreBonus},
		{"black pawn advanced", "4k3/8/8/8/3p4/8/8/4K3 w - - 0 1", -(100 + CentreBonus + 3*PawnAdvance)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := engine.MustParseFEN(tt.fen)
			if got := Evaluate(&state.Board, chess.White); got != tt.want {
				t.Errorf("Evaluate() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestEvaluate_BonusesSmallerThanPawn(t *testing.T) {
	if CentreBonus+KnightCentreBonus >= PawnUnit {
		t.Error("knight centre bonuses reach a pawn's value")
	}
	if 5*PawnAdvance+CentreBonus >= PawnUnit {
		t.Error("pawn advancement bonus reaches a pawn's value")
	}
}

package engine

import (
	"math/rand"
	"sort"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

// referenceMoves returns the from-to pairs notnil/chess generates for fen.
// Promotions collapse to a single pair since only queen promotion exists here.
func referenceMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := nchess.FEN(fen)
	if err != nil {
		t.Fatalf("notnil FEN(%q): %v", fen, err)
	}
	game := nchess.NewGame(opt)

	seen := make(map[string]bool)
	for _, m := range game.ValidMoves() {
		seen[m.S1().String()+m.S2().String()] = true
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func ourMoves(state chess.GameState) []string {
	out := make([]string, 0, 48)
	for _, m := range LegalMoves(state) {
		out = append(out, m.From.String()+m.To.String())
	}
	sort.Strings(out)
	return out
}

func TestLegalMoves_MatchReference(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			testutil.AssertEqual(t, ourMoves(MustParseFEN(fen)), referenceMoves(t, fen))
		})
	}
}

// TestRandomPlayouts compares move sets along random games and checks the
// one-king-per-colour invariant in every reached state.
func TestRandomPlayouts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for game := 0; game < 8; game++ {
		state := chess.NewGameState()
		for ply := 0; ply < 80; ply++ {
			fen := FEN(state)
			for _, c := range []chess.Colour{chess.White, chess.Black} {
				if n := state.Board.Count(chess.Piece{Kind: chess.King, Colour: c}); n != 1 {
					t.Fatalf("game %d ply %d: %v has %d kings in %s", game, ply, c, n, fen)
				}
			}

			got := ourMoves(state)
			want := referenceMoves(t, fen)
			testutil.AssertEqual(t, got, want, "game %d ply %d %s", game, ply, fen)

			moves := LegalMoves(state)
			if len(moves) == 0 {
				break
			}
			state = Apply(state, moves[rng.Intn(len(moves))])
		}
	}
}

package main

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/engine"
	chesserrors "github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/game"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

// playScript runs a session over scripted input and returns everything it printed.
func playScript(t *testing.T, mode game.Mode, fen, input string) string {
	t.Helper()
	var out strings.Builder
	cfg := config.NewConfigBuilder().
		WithMode(mode).
		WithStartFEN(fen).
		WithSeed(1).
		WithColour(false).
		WithOutput(&out).
		WithLog(io.Discard).
		Build()

	s, err := newSession(cfg, strings.NewReader(input))
	if err != nil {
		t.Fatalf("newSession() error = %v", err)
	}
	if err := s.run(context.Background()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	return out.String()
}

func TestSession_Scripts(t *testing.T) {
	tests := []struct {
		name  string
		mode  game.Mode
		fen   string
		input string
		want  []string
	}{
		{
			name:  "fool's mate",
			mode:  game.HumanVsHuman,
			input: "f2 f3\ne7e5\ng2-g4\nd8h4\n",
			want:  []string{"Welcome to termchess!", "White's move: ", "Black's move: ", "Checkmate! Black wins."},
		},
		{
			name:  "rejected input",
			mode:  game.HumanVsHuman,
			input: "e2e5\ne3e4\ne7e5\nfoo\nquit\n",
			want: []string{
				"Invalid move! ply 1, move \"e2e5\": invalid move (Pawn on e2 cannot move to e5)",
				"(no piece on e3)",
				"(that is not your piece)",
				"Error: \"foo\"",
				"Game ended after 0 moves.",
			},
		},
		{
			name:  "commands",
			mode:  game.HumanVsHuman,
			input: "help\nmoves\nfen\nundo\nexit\n",
			want: []string{
				"Game Controls:",
				"a2a3 a2a4 b1a3 b1c3",
				engine.InitialFEN,
				"Error: nothing to undo",
			},
		},
		{
			name:  "moves for one square",
			mode:  game.HumanVsHuman,
			input: "moves g1\nmoves e4\nmoves z9\nquit\n",
			want: []string{
				"g1f3 g1h3",
				"No legal moves from e4",
				"Error: ",
				"Game ended after 0 moves.",
			},
		},
		{
			name:  "engine replies and undo takes back both moves",
			mode:  game.HumanVsEngineBlack,
			input: "e2e4\nundo\nfen\nquit\n",
			want:  []string{"Black plays ", "Took back e2e4", engine.InitialFEN, "Game ended after 0 moves."},
		},
		{
			name: "engine moves first as white",
			mode: game.HumanVsEngineWhite,
			want: []string{"White plays ", "Game ended after 1 moves."},
		},
		{
			name: "engine finds mate",
			mode: game.HumanVsEngineWhite,
			fen:  "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
			want: []string{"White plays a1a8", "Checkmate! White wins."},
		},
		{
			name:  "check is announced",
			mode:  game.HumanVsHuman,
			fen:   "4k3/8/8/8/8/8/8/4K2R w - - 0 1",
			input: "h1h8\nquit\n",
			want:  []string{"Black is in check"},
		},
		{
			name:  "stalemate",
			mode:  game.HumanVsHuman,
			fen:   "7k/5Q2/8/6K1/8/8/8/8 w - - 0 1",
			input: "g5 g6\n",
			want:  []string{"Stalemate! The game is a draw."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := playScript(t, tt.mode, tt.fen, tt.input)
			for _, want := range tt.want {
				testutil.AssertTrue(t, strings.Contains(out, want), "output missing %q:\n%s", want, out)
			}
		})
	}
}

func TestNewSession_InvalidFEN(t *testing.T) {
	cfg := config.NewConfigBuilder().WithStartFEN("8/8/8 w").WithOutput(io.Discard).Build()

	_, err := newSession(cfg, strings.NewReader(""))
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
}

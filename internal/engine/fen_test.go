package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

func TestParseFEN_Initial(t *testing.T) {
	state, err := ParseFEN(InitialFEN)
	testutil.AssertNoError(t, err)

	want := chess.NewGameState()
	if state != want {
		t.Errorf("ParseFEN(InitialFEN) = %s; want starting state", FEN(state))
	}
}

func TestParseFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 12 57",
	}
	for _, fen := range fens {
		state, err := ParseFEN(fen)
		if err != nil {
			t.Errorf("ParseFEN(%q) error: %v", fen, err)
			continue
		}
		testutil.AssertEqual(t, FEN(state), fen)
	}
}

func TestParseFEN_Defaults(t *testing.T) {
	state, err := ParseFEN("4k3/8/8/8/8/8/8/4K3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, FEN(state), "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
}

func TestParseFEN_DropsUnbackedCastlingRights(t *testing.T) {
	state, err := ParseFEN("4k3/8/8/8/8/8/8/4K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state.Castling, chess.WhiteKingside)
}

func TestParseFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "8/8/8 w - - 0 1"},
		{"bad piece", "4k3/8/8/8/8/8/8/4X3 w - - 0 1"},
		{"rank too long", "4k3/8/8/8/8/8/8/4K4 w - - 0 1"},
		{"missing white king", "4k3/8/8/8/8/8/8/8 w - - 0 1"},
		{"two black kings", "4k2k/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"pawn on back rank", "4k2P/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w Z - 0 1"},
		{"bad en passant", "4k3/8/8/8/8/8/8/4K3 w - e4 0 1"},
		{"en passant on mover's side", "4k3/8/8/3pP3/8/8/8/4K3 w - d3 0 2"},
		{"en passant without double-pushed pawn", "4k3/8/8/8/8/8/1Pp5/4K3 w - c3 0 1"},
		{"en passant with pawn still on start square", "4k3/3p4/8/3pP3/8/8/8/4K3 w - d6 0 2"},
		{"non-ascii piece letter", "4k3/8/8/8/8/8/PPPPPPP\u0150/4K3 w - - 0 1"},
		{"bad clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
		{"zero fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}

func TestParseFEN_EnPassantTarget(t *testing.T) {
	tests := []struct {
		fen  string
		want string
	}{
		{"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2", "d6"},
		{"4k3/8/8/8/3Pp3/8/8/4K3 b - d3 0 1", "d3"},
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "e3"},
	}
	for _, tt := range tests {
		state, err := ParseFEN(tt.fen)
		if err != nil {
			t.Errorf("ParseFEN(%q) error: %v", tt.fen, err)
			continue
		}
		testutil.AssertEqual(t, state.EnPassant, chess.MustParseSquare(tt.want))
	}

	_, err := ParseFEN("4k3/8/8/8/8/8/1Pp5/4K3 w - c3 0 1")
	var pe *errors.ParseError
	if !stderrors.As(err, &pe) || pe.Field != "en passant" {
		t.Errorf("ParseFEN error = %v; want en passant ParseError", err)
	}
}

package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN creates a game state from a FEN string. Missing trailing fields
// take their defaults: White to move, no castling, no en passant, clocks 0 and 1.
// Each side must have exactly one king.
func ParseFEN(fen string) (chess.GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.GameState{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Got: "empty string"}
	}

	state := chess.GameState{
		ToMove:         chess.White,
		EnPassant:      chess.NoSquare,
		FullmoveNumber: 1,
	}

	if err := parsePiecePositions(&state.Board, parts[0]); err != nil {
		return chess.GameState{}, fenError(fen, err)
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if n := state.Board.Count(chess.Piece{Kind: chess.King, Colour: c}); n != 1 {
			return chess.GameState{}, fenError(fen, &errors.ParseError{
				Field:    "piece placement",
				Expected: fmt.Sprintf("one %v king", c),
				Got:      strconv.Itoa(n),
			})
		}
	}

	if err := parseSideToMove(&state, parts); err != nil {
		return chess.GameState{}, fenError(fen, err)
	}
	if err := parseCastlingRights(&state, parts); err != nil {
		return chess.GameState{}, fenError(fen, err)
	}
	if err := parseEnPassant(&state, parts); err != nil {
		return chess.GameState{}, fenError(fen, err)
	}
	if err := parseClocks(&state, parts); err != nil {
		return chess.GameState{}, fenError(fen, err)
	}
	return state, nil
}

// MustParseFEN is like ParseFEN but panics on error. Intended for constants and tests.
func MustParseFEN(fen string) chess.GameState {
	state, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return state
}

// fenError fills in the input and sentinel of a field-level parse error.
func fenError(fen string, err error) error {
	if pe, ok := err.(*errors.ParseError); ok {
		pe.Input = fen
		pe.Err = errors.ErrInvalidFEN
		return pe
	}
	return errors.Wrapf(errors.ErrInvalidFEN, "%q: %v", fen, err)
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{Field: "piece placement", Expected: "8 ranks", Got: strconv.Itoa(len(ranks))}
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := chess.KindFromLetter(c)
				if kind == chess.NoKind {
					return &errors.ParseError{Field: "piece placement", Expected: "piece letter", Got: fmt.Sprintf("%q", c)}
				}
				if file >= chess.BoardSize {
					return &errors.ParseError{Field: "piece placement", Got: fmt.Sprintf("rank %d too long", rank+1)}
				}
				colour := chess.White
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
				}
				if kind == chess.Pawn && (rank == 0 || rank == chess.BoardSize-1) {
					return &errors.ParseError{Field: "piece placement", Got: fmt.Sprintf("pawn on rank %d", rank+1)}
				}
				board.Set(chess.Sq(file, rank), chess.Piece{Kind: kind, Colour: colour})
				file++
			}
		}
		if file != chess.BoardSize {
			return &errors.ParseError{Field: "piece placement", Expected: fmt.Sprintf("8 files on rank %d", rank+1), Got: strconv.Itoa(file)}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(state *chess.GameState, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		state.ToMove = chess.White
	case "b":
		state.ToMove = chess.Black
	default:
		return &errors.ParseError{Field: "side to move", Expected: "w or b", Got: parts[1]}
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Rights whose
// king or rook is not on its home square are dropped.
func parseCastlingRights(state *chess.GameState, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var right chess.CastlingRights
		switch c {
		case 'K':
			right = chess.WhiteKingside
		case 'Q':
			right = chess.WhiteQueenside
		case 'k':
			right = chess.BlackKingside
		case 'q':
			right = chess.BlackQueenside
		default:
			return &errors.ParseError{Field: "castling", Expected: "KQkq or -", Got: fmt.Sprintf("%q", c)}
		}
		state.Castling |= right
	}

	for _, c := range []chess.Colour{chess.White, chess.Black} {
		home := c.HomeRank()
		if state.Board.Get(chess.Square{File: 4, Rank: home}) != (chess.Piece{Kind: chess.King, Colour: c}) {
			state.Castling = state.Castling.Without(chess.Kingside(c) | chess.Queenside(c))
		}
		rook := chess.Piece{Kind: chess.Rook, Colour: c}
		if state.Board.Get(chess.Square{File: 7, Rank: home}) != rook {
			state.Castling = state.Castling.Without(chess.Kingside(c))
		}
		if state.Board.Get(chess.Square{File: 0, Rank: home}) != rook {
			state.Castling = state.Castling.Without(chess.Queenside(c))
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(state *chess.GameState, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return &errors.ParseError{Field: "en passant", Expected: "square or -", Got: parts[3]}
	}
	// The target lies between the start and landing squares of a pawn of the
	// side not to move that has just advanced two squares.
	wantRank := int8(5)
	if state.ToMove == chess.Black {
		wantRank = 2
	}
	if sq.Rank != wantRank {
		return &errors.ParseError{Field: "en passant", Expected: fmt.Sprintf("square on rank %d", wantRank+1), Got: parts[3]}
	}
	behind := -state.ToMove.Forward()
	pawn := chess.Piece{Kind: chess.Pawn, Colour: state.ToMove.Opposite()}
	if state.Board.Get(sq.Offset(0, behind)) != pawn ||
		!state.Board.Get(sq).IsEmpty() ||
		!state.Board.Get(sq.Offset(0, -behind)).IsEmpty() {
		return &errors.ParseError{Field: "en passant", Expected: "square behind a pawn that just advanced two squares", Got: parts[3]}
	}
	state.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(state *chess.GameState, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return &errors.ParseError{Field: "halfmove clock", Expected: "non-negative integer", Got: parts[4]}
		}
		state.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return &errors.ParseError{Field: "fullmove number", Expected: "positive integer", Got: parts[5]}
		}
		state.FullmoveNumber = n
	}
	return nil
}

// FEN converts a game state to a FEN string.
func FEN(state chess.GameState) string {
	var sb strings.Builder

	writePiecePositions(&sb, &state.Board)
	sb.WriteByte(' ')
	if state.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(state.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(state.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", state.HalfmoveClock, state.FullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

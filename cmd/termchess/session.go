package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/game"
	"github.com/lgbarn/termchess-go/internal/search"
)

// session is one interactive game over a line-based input and an output stream.
type session struct {
	cfg  *config.Config
	game *game.Game
	in   *bufio.Scanner
	out  io.Writer
}

// newSession creates the game described by cfg.
func newSession(cfg *config.Config, in io.Reader) (*session, error) {
	opts := []game.Option{
		game.WithMode(cfg.Mode),
		game.WithSearcher(search.New(cfg.Search.Options(cfg.Logger(config.SearchInfo))...)),
		game.WithLogger(cfg.Logger(config.MoveLog)),
	}

	var g *game.Game
	if cfg.StartFEN != "" {
		var err error
		if g, err = game.NewFromFEN(cfg.StartFEN, opts...); err != nil {
			return nil, err
		}
	} else {
		g = game.New(opts...)
	}

	return &session{
		cfg:  cfg,
		game: g,
		in:   bufio.NewScanner(in),
		out:  cfg.OutputFile,
	}, nil
}

// run plays until the game ends, the player quits or input runs out.
func (s *session) run(ctx context.Context) error {
	s.printf("Welcome to termchess!\n")
	s.printf("Enter moves like 'e2 e4' or type 'help'.\n")

	for !s.game.Phase().Over() {
		s.render()
		if s.game.Phase() == game.Check {
			s.printf("%v\n", s.game.Status())
		}

		if s.game.IsAutomatedTurn() {
			mover := s.game.ToMove()
			m, err := s.game.AutomatedMove(ctx)
			if err != nil {
				return err
			}
			s.printf("\n%v plays %v\n", mover, m)
			continue
		}

		s.printf("\n%v's move: ", s.game.ToMove())
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return err
			}
			s.game.Quit()
			break
		}
		s.handle(s.in.Text())
	}

	s.finish()
	return nil
}

// handle runs one line of player input.
func (s *session) handle(line string) {
	line = strings.ToLower(strings.TrimSpace(line))
	if arg, ok := strings.CutPrefix(line, "moves "); ok {
		s.showMovesFrom(strings.TrimSpace(arg))
		return
	}
	switch line {
	case "":
		return
	case "quit", "exit":
		s.game.Quit()
		return
	case "help", "?":
		s.showHelp()
		return
	case "moves":
		s.printf("%s\n", strings.Join(moveList(s.game.LegalMoves()), " "))
		return
	case "fen":
		s.printf("%s\n", engine.FEN(s.game.State()))
		return
	case "undo":
		undone, err := s.game.Undo()
		if err != nil {
			s.printf("Error: %v\n", err)
			return
		}
		for _, m := range undone {
			s.printf("Took back %v\n", m)
		}
		return
	}

	from, to, err := parseMoveText(line)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if _, err := s.game.PlayCoordinates(from, to); err != nil {
		s.printf("Invalid move! %v\n", err)
	}
}

// finish draws the final position and announces the result.
func (s *session) finish() {
	if s.game.Phase() != game.Terminated {
		s.render()
	}

	switch status := s.game.Status(); s.game.Phase() {
	case game.Checkmate:
		s.printf("\nCheckmate! %v wins.\n", status.Colour)
	case game.Stalemate:
		s.printf("\nStalemate! The game is a draw.\n")
	default:
		s.printf("\nGame ended after %d moves.\n", len(s.game.Moves()))
	}
}

// showMovesFrom lists the legal moves of the piece on the named square.
func (s *session) showMovesFrom(name string) {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	moves := engine.LegalMovesFrom(s.game.State(), sq)
	if len(moves) == 0 {
		s.printf("No legal moves from %v\n", sq)
		return
	}
	s.printf("%s\n", strings.Join(moveList(moves), " "))
}

func (s *session) render() {
	state := s.game.State()
	renderBoard(s.out, &state.Board, s.cfg.Display)
}

// moveList returns the moves in coordinate notation, sorted.
func moveList(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func (s *session) showHelp() {
	s.printf("\nGame Controls:\n")
	s.printf("- Enter moves as origin and destination squares (e.g., 'e2 e4' or 'e2e4')\n")
	s.printf("- Pawns reaching the last rank become queens\n")
	s.printf("- Castle by moving the king two squares (e.g., 'e1 g1')\n")
	s.printf("- Type 'moves' to list the legal moves, or 'moves e2' for one piece\n")
	s.printf("- Type 'undo' to take back your last move\n")
	s.printf("- Type 'fen' to print the position\n")
	s.printf("- Type 'quit' to exit the game\n")
	s.printf("- Type 'help' to see this message again\n")
}

func (s *session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

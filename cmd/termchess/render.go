package main

import (
	"fmt"
	"io"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
)

// ANSI escape sequences
const (
	ansiReset      = "\x1b[0m"
	ansiLightSq    = "\x1b[47m"
	ansiDarkSq     = "\x1b[100m"
	ansiWhitePiece = "\x1b[1;97m"
	ansiBlackPiece = "\x1b[1;30m"
)

// renderBoard draws the board with rank and file labels.
func renderBoard(w io.Writer, board *chess.Board, display *config.DisplayConfig) {
	files := "a b c d e f g h"
	if display.Flip {
		files = "h g f e d c b a"
	}

	fmt.Fprintf(w, "\n   %s\n", files)
	fmt.Fprintf(w, "   ---------------\n")
	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.BoardSize - 1 - row
		if display.Flip {
			rank = row
		}
		fmt.Fprintf(w, "%d | ", rank+1)
		for col := 0; col < chess.BoardSize; col++ {
			file := col
			if display.Flip {
				file = chess.BoardSize - 1 - col
			}
			sq := chess.Sq(file, rank)
			fmt.Fprintf(w, "%s ", squareText(sq, board.Get(sq), display.Colour))
		}
		fmt.Fprintf(w, "| %d\n", rank+1)
	}
	fmt.Fprintf(w, "   ---------------\n")
	fmt.Fprintf(w, "   %s\n", files)
}

// squareText renders one square. Without colour, empty squares are dots.
func squareText(sq chess.Square, p chess.Piece, colour bool) string {
	if !colour {
		return string(p.Letter())
	}

	bg := ansiDarkSq
	if (sq.File+sq.Rank)%2 == 1 {
		bg = ansiLightSq
	}
	if p.IsEmpty() {
		return bg + " " + ansiReset
	}
	fg := ansiWhitePiece
	if p.Colour == chess.Black {
		fg = ansiBlackPiece
	}
	return bg + fg + string(p.Letter()) + ansiReset
}

package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// addPawnMoves appends pushes, double pushes, captures, en passant and
// promotions for the pawn on from. Promotion is always to a queen.
func addPawnMoves(moves []chess.Move, state *chess.GameState, from chess.Square, pawn chess.Piece) []chess.Move {
	board := &state.Board
	dir := pawn.Colour.Forward()
	lastRank := pawn.Colour.Opposite().HomeRank()
	startRank := pawn.Colour.HomeRank() + int8(dir)

	kindFor := func(to chess.Square) chess.MoveKind {
		if to.Rank == lastRank {
			return chess.Promotion
		}
		return chess.Normal
	}

	// Forward move
	one := from.Offset(0, dir)
	if one.Valid() && board.Get(one).IsEmpty() {
		moves = append(moves, chess.Move{From: from, To: one, Piece: pawn, Kind: kindFor(one)})

		// Double push from starting rank
		two := from.Offset(0, 2*dir)
		if from.Rank == startRank && board.Get(two).IsEmpty() {
			moves = append(moves, chess.Move{From: from, To: two, Piece: pawn})
		}
	}

	// Captures
	for _, df := range [2]int{-1, 1} {
		to := from.Offset(df, dir)
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour != pawn.Colour {
			moves = append(moves, chess.Move{From: from, To: to, Piece: pawn, Captured: target, Kind: kindFor(to)})
			continue
		}
		if target.IsEmpty() && to == state.EnPassant {
			bypassed := board.Get(chess.Square{File: to.File, Rank: from.Rank})
			if bypassed.Kind == chess.Pawn && bypassed.Colour != pawn.Colour {
				moves = append(moves, chess.Move{From: from, To: to, Piece: pawn, Captured: bypassed, Kind: chess.EnPassant})
			}
		}
	}
	return moves
}

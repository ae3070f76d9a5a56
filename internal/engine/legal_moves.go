package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalTargets returns every square the piece on from may move to according
// to IsValidMove, in row-major order. It returns nil for an empty square.
func LegalTargets(board *chess.Board, from chess.Square) []chess.Square {
	if board.Get(from) == chess.Empty {
		return nil
	}
	var targets []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Sq(row, col)
			if IsValidMove(board, from, to) {
				targets = append(targets, to)
			}
		}
	}
	return targets
}

// SafeTargets is LegalTargets without the moves that leave the mover's own
// king in check.
func SafeTargets(board *chess.Board, from chess.Square) []chess.Square {
	var targets []chess.Square
	for _, to := range LegalTargets(board, from) {
		if !LeavesKingInCheck(board, from, to) {
			targets = append(targets, to)
		}
	}
	return targets
}

package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if side is in check and no move of any of its
// pieces gets the king out of check.
//
// Every candidate move is tried on the board itself and undone before the
// next one, so the board is left exactly as it was found.
func IsCheckmate(board *chess.Board, side chess.Side) bool {
	if !IsCheck(board, side) {
		return false
	}
	return !hasEscape(board, side)
}

// hasEscape searches every from/to pair row-major and stops at the first
// move after which side is no longer in check.
func hasEscape(board *chess.Board, side chess.Side) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			if !board.Get(from).BelongsTo(side) {
				continue
			}
			for _, to := range LegalTargets(board, from) {
				if !LeavesKingInCheck(board, from, to) {
					return true
				}
			}
		}
	}
	return false
}

// LeavesKingInCheck plays from-to on the board, tests whether the mover's
// king is attacked, and takes the move back before returning.
func LeavesKingInCheck(board *chess.Board, from, to chess.Square) bool {
	side := board.Get(from).Side()
	captured := board.Move(from, to)
	defer board.Unmove(from, to, captured)
	return IsCheck(board, side)
}

// Package engine provides move legality, check and checkmate detection on a
// chess.Board.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsValidMove reports whether the piece on from may move to to under its
// movement rules and path obstruction alone.
//
// It does not check that the move keeps the mover's own king safe; only
// IsCheckmate's search and the game's strict mode look at that. An empty
// origin is never a valid move. A destination holding a piece of the
// mover's side is always rejected, which also rules out from == to.
func IsValidMove(board *chess.Board, from, to chess.Square) bool {
	piece := board.Get(from)
	if piece == chess.Empty {
		return false
	}
	target := board.Get(to)
	if target.BelongsTo(piece.Side()) {
		return false // Cannot capture your own piece
	}

	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	switch piece.Kind() {
	case chess.Pawn:
		return isValidPawnMove(board, piece.Side(), from, to, target)

	case chess.Knight:
		return (rowDiff == 2 && colDiff == 1) || (rowDiff == 1 && colDiff == 2)

	case chess.Bishop:
		if rowDiff != colDiff || rowDiff == 0 {
			return false
		}
		return IsPathClear(board, from, to)

	case chess.Rook:
		if (rowDiff != 0 && colDiff != 0) || (rowDiff == 0 && colDiff == 0) {
			return false
		}
		return IsPathClear(board, from, to)

	case chess.Queen:
		if rowDiff == 0 && colDiff == 0 {
			return false
		}
		if rowDiff == colDiff || rowDiff == 0 || colDiff == 0 {
			return IsPathClear(board, from, to)
		}
		return false

	case chess.King:
		return rowDiff <= 1 && colDiff <= 1
	}

	return false
}

// isValidPawnMove handles straight advances and diagonal captures.
// En-passant and promotion do not exist in this rule set.
func isValidPawnMove(board *chess.Board, side chess.Side, from, to chess.Square, target chess.Piece) bool {
	dir := side.Forward()
	rowStep := to.Row - from.Row

	if from.Col == to.Col {
		if target != chess.Empty {
			return false
		}
		if rowStep == dir {
			return true
		}
		// Double step from the starting row, through an empty square
		if from.Row == side.PawnRow() && rowStep == 2*dir {
			return board.Get(chess.Sq(from.Row+dir, from.Col)) == chess.Empty
		}
		return false
	}

	// Diagonal capture, one square away in any row direction
	return abs(rowStep) == 1 && abs(to.Col-from.Col) == 1 && target != chess.Empty
}

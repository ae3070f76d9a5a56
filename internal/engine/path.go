package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Aligned reports whether two squares share a row, a column or a diagonal.
// A square is aligned with itself.
func Aligned(from, to chess.Square) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	return rowDiff == 0 || colDiff == 0 || rowDiff == colDiff
}

// IsPathClear reports whether every square strictly between from and to is
// empty. The squares must be Aligned; otherwise the walk never reaches to
// and runs off the board.
func IsPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := chess.Sq(from.Row+rowDir, from.Col+colDir)

	for sq != to {
		if board.Get(sq) != chess.Empty {
			return false
		}
		sq = chess.Sq(sq.Row+rowDir, sq.Col+colDir)
	}

	return true
}

package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// KingSquare finds the king of the given side. The board is scanned row by
// row from row 0, columns left to right, and the first king found wins; this
// only matters for boards holding more than one king of a side.
func KingSquare(board *chess.Board, side chess.Side) (chess.Square, error) {
	sq, ok := board.Find(chess.MakePiece(side, chess.King))
	if !ok {
		return chess.Square{}, fmt.Errorf("%v: %w", side, errors.ErrMissingKing)
	}
	return sq, nil
}

// IsCheck returns true if side's king is attacked by any piece of the other
// side, using IsValidMove from the attacker onto the king's square.
//
// A board without a king for side violates the caller's contract and
// panics with an error wrapping errors.ErrMissingKing.
func IsCheck(board *chess.Board, side chess.Side) bool {
	kingSq, err := KingSquare(board, side)
	if err != nil {
		panic(err)
	}
	return IsAttacked(board, kingSq, side.Opposite())
}

// IsAttacked reports whether any piece of side by could move onto sq.
func IsAttacked(board *chess.Board, sq chess.Square, by chess.Side) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			if !board.Get(from).BelongsTo(by) {
				continue
			}
			if IsValidMove(board, from, sq) {
				return true
			}
		}
	}
	return false
}

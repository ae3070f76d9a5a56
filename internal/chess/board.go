package chess

import "strings"

// Board is the 8x8 grid of square contents, indexed [row][col].
//
// Board does no legality checking and no bounds checking: a square outside
// [0,7] makes the access panic with an index out of range error.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// backRow is the order of pieces on either back row, column a first.
var backRow = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialBoard creates a board with the standard starting layout: Dark
// on rows 0 and 1, Light on rows 6 and 7.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition resets b to the standard starting layout.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Squares[Dark.BackRow()][col] = D(backRow[col])
		b.Squares[Dark.PawnRow()][col] = D(Pawn)
		b.Squares[Light.PawnRow()][col] = L(Pawn)
		b.Squares[Light.BackRow()][col] = L(backRow[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the content of a square.
func (b *Board) Get(sq Square) Piece {
	return b.Squares[sq.Row][sq.Col]
}

// Set places p on a square, overwriting whatever was there.
func (b *Board) Set(sq Square, p Piece) {
	b.Squares[sq.Row][sq.Col] = p
}

// Move copies the content of from onto to and empties from. It returns the
// previous content of to so the move can be reversed with Unmove.
func (b *Board) Move(from, to Square) (captured Piece) {
	captured = b.Get(to)
	b.Set(to, b.Get(from))
	b.Set(from, Empty)
	return captured
}

// Unmove reverses Move(from, to) that returned captured: the moved piece
// goes back to from and to gets its original occupant.
func (b *Board) Unmove(from, to Square, captured Piece) {
	b.Move(to, from)
	b.Set(to, captured)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Find returns the first square holding p, scanning rows 0..7 and within
// each row columns 0..7.
func (b *Board) Find(p Piece) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == p {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Count returns the number of squares holding p.
func (b *Board) Count(p Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == p {
				n++
			}
		}
	}
	return n
}

// String draws the board with row 0 at the top, one FEN letter per square
// and '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.Squares[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

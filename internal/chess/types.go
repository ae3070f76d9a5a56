// Package chess provides the board model: sides, piece kinds, squares and
// the 8x8 board itself.
package chess

import "fmt"

// Side is one of the two players.
type Side uint8

const (
	Light Side = iota
	Dark
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == Dark {
		return "Dark"
	}
	return "Light"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Light {
		return Dark
	}
	return Light
}

// Forward returns the row step of a pawn of this side: Light moves toward
// row 0, Dark toward row 7.
func (s Side) Forward() int {
	if s == Light {
		return -1
	}
	return 1
}

// PawnRow returns the row on which this side's pawns start.
func (s Side) PawnRow() int {
	if s == Light {
		return BoardSize - 2
	}
	return 1
}

// BackRow returns the row holding this side's pieces in the initial layout.
func (s Side) BackRow() int {
	if s == Light {
		return BoardSize - 1
	}
	return 0
}

// Kind is a piece type.
type Kind uint8

const (
	NoKind Kind = iota // Only carried by Empty
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds lists every real piece kind.
var Kinds = [...]Kind{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the upper case letter of a kind.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
// It returns NoKind for anything else.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// Piece is the content of a square: either Empty or a kind owned by a side.
//
// The kind sits above the side bit, so the zero value is Empty and every
// real piece is non-zero.
type Piece uint8

// Empty is an unoccupied square.
const Empty Piece = 0

// pieceShift is the number of bits reserved for the side.
const pieceShift = 1

// MakePiece creates a piece of the given side and kind.
func MakePiece(side Side, kind Kind) Piece {
	return Piece(uint8(kind)<<pieceShift | uint8(side))
}

// L creates a Light piece.
func L(kind Kind) Piece {
	return MakePiece(Light, kind)
}

// D creates a Dark piece.
func D(kind Kind) Piece {
	return MakePiece(Dark, kind)
}

// IsEmpty reports whether the square content is Empty.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Kind extracts the piece kind.
func (p Piece) Kind() Kind {
	return Kind(p >> pieceShift)
}

// Side extracts the owning side. It is meaningless for Empty.
func (p Piece) Side() Side {
	return Side(p & 0x01)
}

// BelongsTo reports whether p is a piece owned by side.
func (p Piece) BelongsTo(side Side) bool {
	return p != Empty && p.Side() == side
}

// Letter returns the FEN letter: upper case for Light, lower case for Dark,
// and '.' for Empty.
func (p Piece) Letter() byte {
	if p == Empty {
		return '.'
	}
	letter := p.Kind().Letter()
	if p.Side() == Dark {
		letter += 'a' - 'A'
	}
	return letter
}

// Glyph returns the Unicode chess symbol of the piece, or a space for Empty.
func (p Piece) Glyph() string {
	if p == Empty {
		return " "
	}
	light := []string{"", "♙", "♘", "♗", "♖", "♕", "♔"}
	dark := []string{"", "♟", "♞", "♝", "♜", "♛", "♚"}
	k := int(p.Kind())
	if k >= len(light) {
		return "?"
	}
	if p.Side() == Dark {
		return dark[k]
	}
	return light[k]
}

// String returns a human readable name such as "Light Knight".
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	return p.Side().String() + " " + p.Kind().String()
}

// BoardSize is the number of rows and of columns.
const BoardSize = 8

// Square is a (row, column) pair. Row 0 holds Dark's back rank, row 7
// Light's.
type Square struct {
	Row, Col int
}

// Sq creates a square.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether both coordinates are in [0,7].
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// String returns the algebraic name of the square, e.g. "e2" for (6,4).
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, BoardSize-s.Row)
}

// ParseSquare parses an algebraic square name such as "e2".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	file, rank := name[0], name[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	return Square{Row: BoardSize - int(rank-'0'), Col: int(file - 'a')}, true
}

// MustParseSquare is like ParseSquare but panics on bad input. Intended for
// tests and fixed tables.
func MustParseSquare(name string) Square {
	sq, ok := ParseSquare(name)
	if !ok {
		panic(fmt.Sprintf("chess: invalid square %q", name))
	}
	return sq
}

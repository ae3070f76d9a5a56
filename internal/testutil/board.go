package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ParseDiagram builds a board from eight rows of eight characters, row 0
// first. Upper case letters are Light pieces, lower case Dark, and '.' an
// empty square. Spaces are ignored so rows can be written "r . . k".
func ParseDiagram(rows ...string) (*chess.Board, error) {
	if len(rows) != chess.BoardSize {
		return nil, fmt.Errorf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}
	b := chess.NewBoard()
	for row, line := range rows {
		col := 0
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c == ' ' {
				continue
			}
			if col >= chess.BoardSize {
				return nil, fmt.Errorf("row %d is longer than %d squares", row, chess.BoardSize)
			}
			if c != '.' {
				kind := chess.KindFromLetter(c)
				if kind == chess.NoKind {
					return nil, fmt.Errorf("row %d: bad piece letter %q", row, c)
				}
				side := chess.Light
				if c >= 'a' && c <= 'z' {
					side = chess.Dark
				}
				b.Set(chess.Sq(row, col), chess.MakePiece(side, kind))
			}
			col++
		}
		if col != chess.BoardSize {
			return nil, fmt.Errorf("row %d has %d squares, want %d", row, col, chess.BoardSize)
		}
	}
	return b, nil
}

// MustBoard is ParseDiagram for test setup: it calls t.Fatal on bad input.
func MustBoard(t testing.TB, rows ...string) *chess.Board {
	t.Helper()
	b, err := ParseDiagram(rows...)
	if err != nil {
		t.Fatalf("bad board diagram: %v", err)
	}
	return b
}

// Sq parses an algebraic square name, failing the test on bad input.
func Sq(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("bad square name %q", name)
	}
	return sq
}

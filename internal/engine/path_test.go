package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// between returns the squares strictly between two aligned squares.
func between(from, to chess.Square) []chess.Square {
	rowDir, colDir := sign(to.Row-from.Row), sign(to.Col-from.Col)
	var squares []chess.Square
	for sq := chess.Sq(from.Row+rowDir, from.Col+colDir); sq != to; sq = chess.Sq(sq.Row+rowDir, sq.Col+colDir) {
		squares = append(squares, sq)
	}
	return squares
}

func allSquares() []chess.Square {
	squares := make([]chess.Square, 0, chess.BoardSize*chess.BoardSize)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			squares = append(squares, chess.Sq(row, col))
		}
	}
	return squares
}

func TestIsPathClear_EmptyBoard(t *testing.T) {
	board := chess.NewBoard()
	for _, from := range allSquares() {
		for _, to := range allSquares() {
			if !Aligned(from, to) {
				continue
			}
			if !IsPathClear(board, from, to) {
				t.Errorf("IsPathClear(%v, %v) on empty board = false, want true", from, to)
			}
		}
	}
}

func TestIsPathClear_AnyBlockerBlocks(t *testing.T) {
	for _, from := range allSquares() {
		for _, to := range allSquares() {
			if from == to || !Aligned(from, to) {
				continue
			}
			for _, blocker := range between(from, to) {
				board := chess.NewBoard()
				board.Set(blocker, chess.D(chess.Pawn))
				if IsPathClear(board, from, to) {
					t.Errorf("IsPathClear(%v, %v) with blocker on %v = true, want false", from, to, blocker)
				}
			}
		}
	}
}

func TestIsPathClear_EndpointsIgnored(t *testing.T) {
	board := chess.NewBoard()
	from, to := chess.MustParseSquare("a1"), chess.MustParseSquare("h8")
	board.Set(from, chess.L(chess.Bishop))
	board.Set(to, chess.D(chess.Rook))

	if !IsPathClear(board, from, to) {
		t.Error("IsPathClear(a1, h8) with occupied endpoints = false, want true")
	}
}

func TestIsPathClear_AdjacentSquares(t *testing.T) {
	board := chess.NewInitialBoard()
	tests := []struct{ from, to string }{
		{"e1", "e2"},
		{"e1", "d2"},
		{"a8", "b8"},
	}
	for _, tt := range tests {
		from, to := chess.MustParseSquare(tt.from), chess.MustParseSquare(tt.to)
		if !IsPathClear(board, from, to) {
			t.Errorf("IsPathClear(%s, %s) = false, want true (nothing in between)", tt.from, tt.to)
		}
	}
}

func TestAligned(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"a1", "a8", true},
		{"a1", "h1", true},
		{"a1", "h8", true},
		{"h1", "a8", true},
		{"e4", "e4", true},
		{"b1", "c3", false},
		{"a1", "b3", false},
		{"d4", "g6", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.from+tt.to, func(t *testing.T) {
			got := Aligned(chess.MustParseSquare(tt.from), chess.MustParseSquare(tt.to))
			if got != tt.want {
				t.Errorf("Aligned(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

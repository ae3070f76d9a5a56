package engine

import (
	"testing"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// The positions below avoid castling, en-passant and promotion, where the
// two rule sets differ, so an independent engine must reach the same
// verdicts.
var oraclePositions = []struct {
	name string
	fen  string
}{
	{"initial", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
	{"after 1.e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1"},
	{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3"},
	{"scholar's mate", "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b - - 0 4"},
	{"back rank mate", "R6k/6pp/8/8/8/8/8/K7 b - - 0 1"},
	{"king takes rook", "6Rk/8/8/8/8/8/8/K7 b - - 0 1"},
	{"block available", "R6k/6pp/4n3/8/8/8/8/K7 b - - 0 1"},
}

func fromOracle(t *testing.T, pos *notnil.Position) *chess.Board {
	t.Helper()
	kinds := map[notnil.PieceType]chess.Kind{
		notnil.Pawn:   chess.Pawn,
		notnil.Knight: chess.Knight,
		notnil.Bishop: chess.Bishop,
		notnil.Rook:   chess.Rook,
		notnil.Queen:  chess.Queen,
		notnil.King:   chess.King,
	}
	board := chess.NewBoard()
	for sq, p := range pos.Board().SquareMap() {
		side := chess.Light
		if p.Color() == notnil.Black {
			side = chess.Dark
		}
		row := chess.BoardSize - 1 - int(sq.Rank())
		board.Set(chess.Sq(row, int(sq.File())), chess.MakePiece(side, kinds[p.Type()]))
	}
	return board
}

func TestOracle_BoardParsing(t *testing.T) {
	for _, tt := range oraclePositions {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			opt, err := notnil.FEN(tt.fen)
			if err != nil {
				t.Fatalf("notnil.FEN(%q) error: %v", tt.fen, err)
			}
			want := fromOracle(t, notnil.NewGame(opt).Position())

			got, _, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			if got.String() != want.String() {
				t.Errorf("board mismatch\n got:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestOracle_CheckmateVerdicts(t *testing.T) {
	for _, tt := range oraclePositions {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			opt, err := notnil.FEN(tt.fen)
			if err != nil {
				t.Fatalf("notnil.FEN(%q) error: %v", tt.fen, err)
			}
			want := notnil.NewGame(opt).Method() == notnil.Checkmate

			board, side, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			if got := IsCheckmate(board, side); got != want {
				t.Errorf("IsCheckmate = %v, oracle says %v", got, want)
			}
		})
	}
}

package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
// Only the placement and side-to-move fields are used; the rest is kept so
// the string is valid FEN for other tools.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// NewBoardFromFEN creates a board from a FEN string and returns the side to
// move, Light when the field is absent. Castling, en-passant and clock
// fields are accepted and ignored.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Side, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.Light, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.Light, err
	}

	side, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.Light, err
	}

	return board, side, nil
}

// parsePiecePositions parses the piece placement field; its first rank is
// board row 0.
func parsePiecePositions(board *chess.Board, positions string) error {
	row, col := 0, 0

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("row %d has %d squares: %w", row, col, errors.ErrInvalidFEN)
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		case c > unicode.MaxASCII:
			return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
		default:
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize || row >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			side := chess.Light
			if unicode.IsLower(c) {
				side = chess.Dark
			}
			board.Set(chess.Sq(row, col), chess.MakePiece(side, kind))
			col++
		}
		if col > chess.BoardSize || row >= chess.BoardSize {
			return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return fmt.Errorf("placement has %d rows: %w", row+1, errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Side, error) {
	if len(parts) < 2 {
		return chess.Light, nil
	}
	switch parts[1] {
	case "w":
		return chess.Light, nil
	case "b":
		return chess.Dark, nil
	default:
		return chess.Light, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN converts a board and side to move to the first two FEN fields,
// e.g. "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w".
func BoardToFEN(board *chess.Board, side chess.Side) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if side == chess.Light {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Sq(row, col))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// Package errors provides sentinel errors and error types for the rule
// engine. It defines common error conditions and a structured move error
// that preserves context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move the piece cannot make geometrically
	// or because its path is obstructed.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongSide indicates a move from a square that does not hold a
	// piece of the side to move.
	ErrWrongSide = errors.New("no piece of the side to move on origin square")

	// ErrOutOfBounds indicates a square outside the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrMissingKing indicates a position without a king for a side.
	ErrMissingKing = errors.New("missing king")

	// ErrGameOver indicates a move attempted after the game has ended.
	ErrGameOver = errors.New("game is over")

	// ErrSelfCheck indicates a move that leaves the mover's own king in check.
	ErrSelfCheck = errors.New("move leaves own king in check")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Is reports whether any error in err's chain matches target.
// It is re-exported so callers need not import both errors packages.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// MoveError wraps errors with move context: who moved what from where to
// where. It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Side  string // Side attempting the move (if known)
	Piece string // Kind of the moving piece (if known)
	From  string // Origin square name
	To    string // Destination square name
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.Piece != "" {
		parts = append(parts, strings.ToLower(e.Piece))
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, e.From+"-"+e.To)
	}

	context := strings.Join(parts, " ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

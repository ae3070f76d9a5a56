package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrWrongSide", ErrWrongSide, ErrWrongSide},
		{"ErrOutOfBounds", ErrOutOfBounds, ErrOutOfBounds},
		{"ErrMissingKing", ErrMissingKing, ErrMissingKing},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrSelfCheck", ErrSelfCheck, ErrSelfCheck},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct guards against two sentinels matching each other.
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrIllegalMove, ErrWrongSide, ErrOutOfBounds, ErrMissingKing,
		ErrGameOver, ErrSelfCheck, ErrInvalidFEN, ErrInvalidConfig,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MoveError
		want string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:   ErrIllegalMove,
				Side:  "Light",
				Piece: "Pawn",
				From:  "e2",
				To:    "e5",
			},
			want: "Light pawn e2-e5: illegal move",
		},
		{
			name: "squares only",
			err: &MoveError{
				Err:  ErrWrongSide,
				From: "e4",
				To:   "e5",
			},
			want: "e4-e5: no piece of the side to move on origin square",
		},
		{
			name: "no context",
			err:  &MoveError{Err: ErrGameOver},
			want: "game is over",
		},
		{
			name: "no error",
			err:  &MoveError{Side: "Dark"},
			want: "Dark",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrIllegalMove,
		From: "a1",
		To:   "b3",
	}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrIllegalMove) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrIllegalMove)
	}

	if !Is(moveErr, ErrIllegalMove) {
		t.Error("Is(moveErr, ErrIllegalMove) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:   ErrSelfCheck,
		Side:  "Dark",
		Piece: "Bishop",
		From:  "f8",
		To:    "b4",
	}

	wrapped := fmt.Errorf("attempt failed: %w", moveErr)

	var extracted *MoveError
	if !As(wrapped, &extracted) {
		t.Fatal("As() could not extract MoveError")
	}
	if extracted.From != "f8" || extracted.To != "b4" {
		t.Errorf("extracted squares = %s-%s, want f8-b4", extracted.From, extracted.To)
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing start position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !strings.Contains(msg, "parsing start position") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidConfig, "flag -%s", "log-level")

	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); !strings.Contains(msg, "flag -log-level") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

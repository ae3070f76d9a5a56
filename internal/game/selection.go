package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Action tells what a square click did.
type Action int

const (
	Ignored   Action = iota // Click on nothing selectable
	Selected                // A piece of the side to move was selected
	Attempted               // The click was a move attempt from the selection
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Ignored:
		return "ignored"
	case Selected:
		return "selected"
	case Attempted:
		return "attempted"
	default:
		return "unknown"
	}
}

// ClickResult is returned by HandleSquare.
type ClickResult struct {
	Action  Action
	Outcome Outcome // Set when Action is Attempted
}

// HandleSquare is the two-click move input. Without a selection, a square
// holding a piece of the side to move becomes the selection and any other
// square is ignored. With a selection, the click is a move attempt from the
// selection to sq, and the selection is cleared whatever the result.
//
// Once the game is over every click is rejected with errors.ErrGameOver.
func (g *Game) HandleSquare(sq chess.Square) (ClickResult, error) {
	if !sq.Valid() {
		return ClickResult{}, errors.Wrapf(errors.ErrOutOfBounds, "square %v", sq)
	}
	if g.over {
		g.selected = nil
		return ClickResult{}, errors.ErrGameOver
	}

	if g.selected == nil {
		if !g.board.Get(sq).BelongsTo(g.toMove) {
			return ClickResult{Action: Ignored}, nil
		}
		sel := sq
		g.selected = &sel
		g.logger.Debug("selected", "side", g.toMove, "square", sq, "piece", g.board.Get(sq))
		return ClickResult{Action: Selected}, nil
	}

	out, err := g.AttemptMove(*g.selected, sq)
	return ClickResult{Action: Attempted, Outcome: out}, err
}

// Selected returns the selected origin square, if any.
func (g *Game) Selected() (chess.Square, bool) {
	if g.selected == nil {
		return chess.Square{}, false
	}
	return *g.selected, true
}

// Deselect clears the selection.
func (g *Game) Deselect() {
	g.selected = nil
}

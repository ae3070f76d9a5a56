// Package game holds the state of a two-player game: the board, whose turn
// it is, the current selection and whether the game has ended. It drives the
// rule engine after every move and is the only place the board is mutated
// outside of speculative trials.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Phase is the state of the game after an accepted move, seen from the side
// that moves next.
type Phase int

const (
	Continue     Phase = iota // Nothing to report
	Check                     // Side to move is in check
	Checkmate                 // Side to move is checkmated; game over
	KingCaptured              // Side to move lost its king; game over
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Continue:
		return "continue"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case KingCaptured:
		return "king captured"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the game.
func (p Phase) Terminal() bool {
	return p == Checkmate || p == KingCaptured
}

// Outcome describes the result of a move attempt.
type Outcome struct {
	Accepted bool
	Phase    Phase       // Only meaningful when Accepted
	Mover    chess.Side  // Side that attempted the move
	From, To chess.Square
	Captured chess.Piece // Occupant of To before the move, or Empty
}

// Game is a single game between Light and Dark. It is not safe for
// concurrent use; each session owns its own Game.
type Game struct {
	board    *chess.Board
	toMove   chess.Side
	phase    Phase
	selected *chess.Square
	over     bool
	winner   chess.Side
	plies    int

	start     *chess.Board
	startSide chess.Side
	strict    bool
	logger    *log.Logger
}

type options struct {
	board  *chess.Board
	side   chess.Side
	fen    string
	strict bool
	logger *log.Logger
}

// Option configures a Game.
type Option func(*options)

// WithLogger sets the logger used for game events. The default discards
// everything.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStrictKingSafety rejects moves that leave the mover's own king in
// check. Off by default.
func WithStrictKingSafety(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithFEN starts the game from a FEN position instead of the standard one.
// An empty string keeps the standard start.
func WithFEN(fen string) Option {
	return func(o *options) {
		o.fen = fen
		o.board = nil
	}
}

// WithBoard starts the game from a copy of board with side to move.
func WithBoard(board *chess.Board, side chess.Side) Option {
	return func(o *options) {
		o.board = board.Copy()
		o.side = side
		o.fen = ""
	}
}

// New creates a game. Both sides must have a king on the starting board.
func New(opts ...Option) (*Game, error) {
	o := options{side: chess.Light}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	start, side := o.board, o.side
	if o.fen != "" {
		var err error
		start, side, err = engine.NewBoardFromFEN(o.fen)
		if err != nil {
			return nil, err
		}
	}
	if start == nil {
		start, side = chess.NewInitialBoard(), chess.Light
	}

	for _, s := range []chess.Side{chess.Light, chess.Dark} {
		if _, err := engine.KingSquare(start, s); err != nil {
			return nil, errors.Wrap(err, "starting position")
		}
	}

	g := &Game{
		start:     start,
		startSide: side,
		strict:    o.strict,
		logger:    o.logger,
	}
	g.Reset()
	return g, nil
}

// Reset returns the game to its starting position.
func (g *Game) Reset() {
	g.board = g.start.Copy()
	g.toMove = g.startSide
	g.selected = nil
	g.over = false
	g.plies = 0
	g.phase = g.evaluate()
	if g.phase.Terminal() {
		g.over = true
		g.winner = g.toMove.Opposite()
	}
	g.logger.Debug("game reset", "fen", g.FEN(), "phase", g.phase)
}

// Board returns the live board. Callers must not mutate it.
func (g *Game) Board() *chess.Board {
	return g.board
}

// SideToMove returns the side whose turn it is.
func (g *Game) SideToMove() chess.Side {
	return g.toMove
}

// Phase returns the phase reached by the last accepted move.
func (g *Game) Phase() Phase {
	return g.phase
}

// IsGameOver reports whether the game has ended.
func (g *Game) IsGameOver() bool {
	return g.over
}

// Winner returns the winning side once the game is over.
func (g *Game) Winner() (chess.Side, bool) {
	if !g.over {
		return chess.Light, false
	}
	return g.winner, true
}

// Plies returns the number of accepted moves since the start.
func (g *Game) Plies() int {
	return g.plies
}

// StrictKingSafety reports whether self-check moves are rejected.
func (g *Game) StrictKingSafety() bool {
	return g.strict
}

// FEN returns the current position as FEN placement and side to move.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board, g.toMove)
}

// Targets returns the squares the piece on from may move to. In strict mode
// moves that leave the mover's king in check are left out.
func (g *Game) Targets(from chess.Square) []chess.Square {
	if !from.Valid() {
		return nil
	}
	if g.strict && g.board.Get(from) != chess.Empty {
		return engine.SafeTargets(g.board, from)
	}
	return engine.LegalTargets(g.board, from)
}

// AttemptMove validates from-to for the side to move and, if legal, applies
// it, switches sides and evaluates check and checkmate for the new side to
// move. A rejected move leaves the game untouched apart from clearing the
// selection, and the returned error wraps one of the errors package
// sentinels.
func (g *Game) AttemptMove(from, to chess.Square) (Outcome, error) {
	g.selected = nil
	out := Outcome{Mover: g.toMove, From: from, To: to}

	if err := g.validate(from, to); err != nil {
		g.logger.Debug("move rejected", "from", from, "to", to, "err", err)
		return out, err
	}

	out.Captured = g.board.Move(from, to)
	out.Accepted = true
	g.plies++
	g.toMove = g.toMove.Opposite()
	g.phase = g.evaluate()
	out.Phase = g.phase

	g.logger.Info("move",
		"side", out.Mover,
		"from", from,
		"to", to,
		"captured", out.Captured,
		"phase", out.Phase,
	)

	if g.phase.Terminal() {
		g.over = true
		g.winner = out.Mover
		g.logger.Info("game over", "winner", g.winner, "phase", g.phase, "plies", g.plies)
	}
	return out, nil
}

func (g *Game) validate(from, to chess.Square) error {
	moveErr := func(err error) error {
		e := &errors.MoveError{Err: err, Side: g.toMove.String(), From: from.String(), To: to.String()}
		if from.Valid() {
			if p := g.board.Get(from); p != chess.Empty {
				e.Piece = p.Kind().String()
			}
		}
		return e
	}

	if !from.Valid() || !to.Valid() {
		return moveErr(errors.ErrOutOfBounds)
	}
	if g.over {
		return moveErr(errors.ErrGameOver)
	}
	if !g.board.Get(from).BelongsTo(g.toMove) {
		return moveErr(errors.ErrWrongSide)
	}
	if !engine.IsValidMove(g.board, from, to) {
		return moveErr(errors.ErrIllegalMove)
	}
	if g.strict && engine.LeavesKingInCheck(g.board, from, to) {
		return moveErr(errors.ErrSelfCheck)
	}
	return nil
}

// evaluate classifies the position for the side to move.
func (g *Game) evaluate() Phase {
	if _, err := engine.KingSquare(g.board, g.toMove); err != nil {
		return KingCaptured
	}
	if engine.IsCheckmate(g.board, g.toMove) {
		return Checkmate
	}
	if engine.IsCheck(g.board, g.toMove) {
		return Check
	}
	return Continue
}

// Status returns the status line for the current state.
func (g *Game) Status() string {
	switch {
	case g.over && g.phase == KingCaptured:
		return "King captured! " + g.winner.String() + " wins!"
	case g.over:
		return "Checkmate! " + g.winner.String() + " wins!"
	case g.phase == Check:
		return "Check! " + g.toMove.String() + "'s turn."
	default:
		return g.toMove.String() + "'s turn"
	}
}

// Package ui is the terminal front end: a Bubble Tea model that draws the
// board and turns key presses into square clicks on a game.Game.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Model is the Bubble Tea model for one player seat in front of one game.
type Model struct {
	game    *game.Game
	cfg     *config.UIConfig
	styles  styles
	cursor  chess.Square
	targets []chess.Square
	message string // Reason the last click was rejected
	last    *game.Outcome
}

// New creates a model for g. A nil renderer uses the default one for the
// process's terminal; SSH sessions pass a renderer bound to the session.
func New(g *game.Game, cfg *config.UIConfig, r *lipgloss.Renderer) Model {
	if cfg == nil {
		cfg = config.NewUIConfig()
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Model{
		game:   g,
		cfg:    cfg,
		styles: newStyles(r),
		cursor: startCursor(g),
	}
}

func startCursor(g *game.Game) chess.Square {
	return chess.Sq(g.SideToMove().PawnRow(), 4)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1, 0)
		case "down", "j":
			m.moveCursor(1, 0)
		case "left", "h":
			m.moveCursor(0, -1)
		case "right", "l":
			m.moveCursor(0, 1)
		case "enter", " ":
			m.click()
		case "esc":
			m.game.Deselect()
			m.targets = nil
			m.message = ""
		case "r":
			m.game.Reset()
			m.cursor = startCursor(m.game)
			m.targets = nil
			m.message = ""
			m.last = nil
		}
	}
	return m, nil
}

func (m *Model) moveCursor(dr, dc int) {
	next := chess.Sq(m.cursor.Row+dr, m.cursor.Col+dc)
	if next.Valid() {
		m.cursor = next
	}
}

func (m *Model) click() {
	res, err := m.game.HandleSquare(m.cursor)
	m.targets = nil
	m.message = ""
	if err != nil {
		m.message = err.Error()
	}

	switch res.Action {
	case game.Selected:
		if m.cfg.ShowTargets {
			m.targets = m.game.Targets(m.cursor)
		}
	case game.Attempted:
		if res.Outcome.Accepted {
			out := res.Outcome
			m.last = &out
		}
	}
}

// Cursor returns the square under the cursor.
func (m Model) Cursor() chess.Square {
	return m.cursor
}

// Message returns the text of the last rejection, or "".
func (m Model) Message() string {
	return m.message
}

// Game returns the game the model drives.
func (m Model) Game() *game.Game {
	return m.game
}

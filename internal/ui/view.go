package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

const helpText = "arrows/hjkl move · enter select · esc clear · r restart · q quit"

// View implements tea.Model.
func (m Model) View() string {
	board := m.renderBoard()
	panel := m.renderPanel()
	body := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", panel)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("chessrules"),
		"",
		body,
		"",
		m.styles.help.Render(helpText),
	)
}

func (m Model) renderBoard() string {
	files := "  "
	for col := 0; col < chess.BoardSize; col++ {
		files += fmt.Sprintf(" %c ", 'a'+col)
	}
	files = m.styles.label.Render(files)

	selected, hasSel := m.game.Selected()
	board := m.game.Board()

	lines := []string{files}
	for row := 0; row < chess.BoardSize; row++ {
		var line strings.Builder
		rank := m.styles.label.Render(fmt.Sprintf("%d ", chess.BoardSize-row))
		line.WriteString(rank)
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)

			style := m.styles.lightSquare
			switch {
			case sq == m.cursor:
				style = m.styles.cursor
			case hasSel && sq == selected:
				style = m.styles.selected
			case slices.Contains(m.targets, sq):
				style = m.styles.target
			case (row+col)%2 == 1:
				style = m.styles.darkSquare
			}
			p := board.Get(sq)
			line.WriteString(m.pieceStyle(style, p).Render(m.glyph(p)))
		}
		line.WriteString(rank)
		lines = append(lines, line.String())
	}
	lines = append(lines, files)
	return strings.Join(lines, "\n")
}

// pieceStyle adds the piece colour to a square style.
func (m Model) pieceStyle(square lipgloss.Style, p chess.Piece) lipgloss.Style {
	if p == chess.Empty {
		return square
	}
	piece := m.styles.lightPiece
	if p.Side() == chess.Dark {
		piece = m.styles.darkPiece
	}
	return square.Inherit(piece)
}

// glyph returns the one-cell text for a piece.
func (m Model) glyph(p chess.Piece) string {
	if p == chess.Empty {
		return " "
	}
	if m.cfg.ASCII {
		return string(p.Letter())
	}
	return p.Glyph()
}

func (m Model) renderPanel() string {
	g := m.game
	lines := []string{m.styles.status.Render(g.Status())}

	if m.message != "" {
		lines = append(lines, m.styles.alert.Render(m.message))
	}
	lines = append(lines, "")

	cursorPiece := g.Board().Get(m.cursor)
	lines = append(lines, fmt.Sprintf("Cursor:   %s %s", m.cursor, cursorPiece))

	if sel, ok := g.Selected(); ok {
		lines = append(lines, fmt.Sprintf("Selected: %s %s", sel, g.Board().Get(sel)))
		if len(m.targets) > 0 {
			names := make([]string, len(m.targets))
			for i, sq := range m.targets {
				names[i] = sq.String()
			}
			lines = append(lines, "Targets:  "+wrapWords(names, 6))
		}
	}

	if m.last != nil {
		last := fmt.Sprintf("Last:     %s %s-%s", m.last.Mover, m.last.From, m.last.To)
		if m.last.Captured != chess.Empty {
			last += " x " + m.last.Captured.Kind().String()
		}
		lines = append(lines, last)
	}
	lines = append(lines, fmt.Sprintf("Plies:    %d", g.Plies()))

	if g.StrictKingSafety() {
		lines = append(lines, "Strict king safety")
	}
	if m.cfg.ShowFEN {
		lines = append(lines, "", "FEN: "+g.FEN())
	}
	return m.styles.panel.Render(strings.Join(lines, "\n"))
}

// wrapWords joins words with spaces, perLine to a line, indenting
// continuation lines under the first.
func wrapWords(words []string, perLine int) string {
	var sb strings.Builder
	for i, w := range words {
		switch {
		case i == 0:
		case i%perLine == 0:
			sb.WriteString("\n          ")
		default:
			sb.WriteByte(' ')
		}
		sb.WriteString(w)
	}
	return sb.String()
}

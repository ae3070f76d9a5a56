package ui

import "github.com/charmbracelet/lipgloss"

// styles are bound to a renderer so that each SSH session gets colours
// matching its own terminal.
type styles struct {
	lightSquare lipgloss.Style
	darkSquare  lipgloss.Style
	cursor      lipgloss.Style
	selected    lipgloss.Style
	target      lipgloss.Style
	lightPiece  lipgloss.Style
	darkPiece   lipgloss.Style
	label       lipgloss.Style
	title       lipgloss.Style
	status      lipgloss.Style
	alert       lipgloss.Style
	help        lipgloss.Style
	panel       lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	cell := r.NewStyle().Padding(0, 1)
	return styles{
		lightSquare: cell.Background(lipgloss.Color("180")),
		darkSquare:  cell.Background(lipgloss.Color("94")),
		cursor:      cell.Background(lipgloss.Color("160")),
		selected:    cell.Background(lipgloss.Color("178")),
		target:      cell.Background(lipgloss.Color("71")),
		lightPiece:  r.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
		darkPiece:   r.NewStyle().Foreground(lipgloss.Color("16")).Bold(true),
		label:       r.NewStyle().Foreground(lipgloss.Color("245")),
		title:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		status:      r.NewStyle().Bold(true),
		alert:       r.NewStyle().Foreground(lipgloss.Color("203")),
		help:        r.NewStyle().Foreground(lipgloss.Color("241")),
		panel:       r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

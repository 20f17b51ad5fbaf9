// Package theme turns the highlight table into styles: Lip Gloss styles
// for the auxiliary surfaces and the inspector, and the style sheet the
// shell applies to window chrome.
package theme

import (
	"github.com/atomicstack/nvim-ui-mirror/internal/highlight"
	"github.com/charmbracelet/lipgloss"
)

// Styles describes the inspector's own chrome.
type Styles struct {
	Header            *lipgloss.Style
	Footer            *lipgloss.Style
	Info              *lipgloss.Style
	Error             *lipgloss.Style
	Item              *lipgloss.Style
	SelectedItem      *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	Busy              *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	Busy: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

// Color converts a highlight colour to a Lip Gloss colour.
func Color(c highlight.Color) lipgloss.Color {
	return lipgloss.Color("#" + highlight.Hex(c))
}

// Role returns the style for role g. Missing colours fall back to the
// table defaults.
func Role(hl *highlight.Table, g highlight.Group) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(Color(hl.GroupFg(g))).
		Background(Color(hl.GroupBg(g)))
	if def, ok := hl.Group(g); ok {
		s = s.Bold(def.Bold).Italic(def.Italic).Underline(def.Underline || def.Undercurl).Strikethrough(def.Strikethrough)
		if def.Reverse {
			s = s.Reverse(true)
		}
	}
	return s
}

// Cell returns the style for a resolved cell highlight.
func Cell(r highlight.Resolved) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Color(r.Fg)).
		Background(Color(r.Bg)).
		Bold(r.Bold).
		Italic(r.Italic).
		Underline(r.Underline || r.Undercurl).
		Strikethrough(r.Strikethrough)
}

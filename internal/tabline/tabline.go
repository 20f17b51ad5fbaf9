// Package tabline holds the externalised tab bar.
package tabline

import (
	"strings"

	"github.com/atomicstack/nvim-ui-mirror/internal/font"
	"github.com/atomicstack/nvim-ui-mirror/internal/highlight"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
	"github.com/atomicstack/nvim-ui-mirror/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/neovim/go-client/nvim"
)

type Tabline struct {
	font      font.Font
	lineSpace int

	current nvim.Tabpage
	tabs    []redraw.Tab

	tab  lipgloss.Style
	sel  lipgloss.Style
	fill lipgloss.Style
}

func New(f font.Font, lineSpace int) *Tabline {
	return &Tabline{
		font:      f,
		lineSpace: lineSpace,
		tab:       lipgloss.NewStyle(),
		sel:       lipgloss.NewStyle().Bold(true),
		fill:      lipgloss.NewStyle(),
	}
}

// Update replaces the tab list.
func (t *Tabline) Update(current nvim.Tabpage, tabs []redraw.Tab) {
	t.current = current
	t.tabs = tabs
}

func (t *Tabline) Tabs() []redraw.Tab {
	return t.tabs
}

// Current returns the index of the current tab, or -1.
func (t *Tabline) Current() int {
	for i, tab := range t.tabs {
		if tab.Tab == t.current {
			return i
		}
	}
	return -1
}

// Visible reports whether the bar is shown; a single tab hides it.
func (t *Tabline) Visible() bool {
	return len(t.tabs) > 1
}

func (t *Tabline) SetFont(f font.Font) {
	t.font = f
}

func (t *Tabline) SetLineSpace(lineSpace int) {
	t.lineSpace = lineSpace
}

func (t *Tabline) Font() (font.Font, int) {
	return t.font, t.lineSpace
}

// SetColors re-reads the tabline roles from hl.
func (t *Tabline) SetColors(hl *highlight.Table) {
	t.tab = theme.Role(hl, highlight.GroupTabline)
	t.sel = theme.Role(hl, highlight.GroupTablineSel)
	t.fill = theme.Role(hl, highlight.GroupTablineFill)
}

// Render draws the bar padded with the fill style to width cells.
func (t *Tabline) Render(width int) string {
	if !t.Visible() {
		return ""
	}
	cur := t.Current()
	var out string
	for i, tab := range t.tabs {
		s := t.tab
		if i == cur {
			s = t.sel
		}
		out += s.Render(" " + tab.Name + " ")
	}
	if used := ansi.StringWidth(out); used < width {
		out += t.fill.Render(strings.Repeat(" ", width-used))
	}
	return out
}

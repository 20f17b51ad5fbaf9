package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/nvim-ui-mirror/internal/format/table"
	"github.com/atomicstack/nvim-ui-mirror/internal/grid"
	"github.com/atomicstack/nvim-ui-mirror/internal/highlight"
	"github.com/atomicstack/nvim-ui-mirror/internal/theme"
	uistate "github.com/atomicstack/nvim-ui-mirror/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	headerSeparator = " │ "
	activeMarker    = "*"
)

var sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// View implements tea.Model.
func (m *Model) View() string {
	top := m.headerLines()
	top = append(top, m.gridTableLines()...)
	top = append(top, m.overlayLines()...)

	bottom := make([]string, 0, 3)
	if m.showHl {
		bottom = append(bottom, m.filterLine())
	}
	if m.errMsg != "" {
		bottom = append(bottom, render(styles.Error, m.errMsg))
	}
	bottom = append(bottom, m.footerLine())

	bodyHeight := max(m.height-len(top)-len(bottom), 1)
	var body []string
	if m.showHl {
		body = m.highlightLines(bodyHeight)
	} else {
		m.body.Width = m.width
		m.body.Height = bodyHeight
		body = strings.Split(m.body.View(), "\n")
	}

	lines := make([]string, 0, len(top)+len(body)+len(bottom))
	lines = append(lines, top...)
	lines = append(lines, body...)
	lines = append(lines, bottom...)
	if m.width > 0 {
		for i, line := range lines {
			lines[i] = truncate.String(line, uint(m.width))
		}
	}
	return strings.Join(lines, "\n")
}

// layout sizes the body viewport before the chrome is known; View
// settles the final height.
func (m *Model) layout() {
	m.body.Width = max(m.width, 0)
	m.body.Height = max(m.height-4, 1)
	m.filter.Width = max(m.width-len(m.filter.Prompt)-1, 1)
}

// refresh rebuilds the body content and the highlight listing from the
// UI state.
func (m *Model) refresh() {
	m.body.SetContent(strings.Join(m.gridLines(), "\n"))
	m.highlights.UpdateItems(highlightItems(m.state.Highlights()))
}

func (m *Model) headerLines() []string {
	s := m.state
	title := s.Title
	if title == "" {
		title = "nvim"
	}
	mode := "-"
	if info, ok := s.Mode(); ok {
		mode = info.Name
	}
	parts := []string{
		title,
		"mode " + mode,
		"grid " + strconv.Itoa(s.CurrentGrid()),
		"frames " + strconv.Itoa(m.frames),
	}
	header := render(styles.Header, strings.Join(parts, headerSeparator))
	if g, ok := s.Grid(s.CurrentGrid()); ok && g.Busy() {
		header += headerSeparator + render(styles.Busy, "busy")
	}
	return []string{header}
}

func (m *Model) gridTableLines() []string {
	s := m.state
	rows := [][]string{{"grid", "size", "cursor", "window", "rect", "scroll"}}
	for _, id := range s.GridIDs() {
		g, ok := s.Grid(id)
		if !ok {
			continue
		}
		cols, height := g.Size()
		row, col := g.Cursor()
		label := strconv.Itoa(id)
		if id == s.CurrentGrid() {
			label = activeMarker + label
		}
		window, rect, scroll := "-", "-", "-"
		if w, ok := s.Window(id); ok {
			window = w.Kind().String()
			if !w.Visible() {
				window += " (hidden)"
			}
			r := w.Rect()
			rect = fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
			if visible, adj := w.Scrollbar(); visible {
				scroll = fmt.Sprintf("%.0f/%.0f", adj.Value, adj.Upper)
			}
		}
		rows = append(rows, []string{
			label,
			fmt.Sprintf("%dx%d", cols, height),
			fmt.Sprintf("%d,%d", row, col),
			window,
			rect,
			scroll,
		})
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignRight, table.AlignRight, table.AlignRight})
	out := make([]string, len(formatted))
	for i, line := range formatted {
		style := styles.Item
		if i == 0 {
			style = &sectionStyle
		}
		out[i] = render(style, line)
	}
	return out
}

func (m *Model) overlayLines() []string {
	s := m.state
	var out []string
	if tl := s.Tabline(); tl.Visible() {
		out = append(out, tl.Render(m.width))
	}
	if cl := s.Cmdline().Render(m.width); cl != "" {
		out = append(out, strings.Split(cl, "\n")...)
	}
	if pm := s.Popupmenu(); pm.Visible() {
		r := pm.Rect()
		out = append(out, render(&sectionStyle, fmt.Sprintf("popupmenu at %d,%d %dx%d", r.X, r.Y, r.Width, r.Height)))
		out = append(out, pm.Render()...)
	}
	if tt := s.Tooltip(); tt.IsVisible() {
		out = append(out, render(styles.Info, fmt.Sprintf("tooltip (%s): %s", tt.Gravity(), strings.ReplaceAll(tt.Content(), "\n", " "))))
	}
	if mw := s.MsgWindow(); mw.Grid() != 0 {
		y, w, h := mw.Bounds()
		line := fmt.Sprintf("messages: grid %d at row %d %dx%d", mw.Grid(), y, w, h)
		if mw.Scrolled() {
			line += " (scrolled)"
		}
		out = append(out, render(styles.Info, line))
	}
	return out
}

func (m *Model) gridLines() []string {
	g, ok := m.state.Grid(m.state.CurrentGrid())
	if !ok {
		return nil
	}
	_, rows := g.Size()
	hl := m.state.Highlights()
	out := make([]string, rows)
	for r := range out {
		out[r] = renderCells(g.PaintedRow(r, hl))
	}
	return out
}

// renderCells styles runs of cells sharing a highlight together.
func renderCells(cells []grid.Painted) string {
	var b, run strings.Builder
	var attrs highlight.Resolved
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(theme.Cell(attrs).Render(run.String()))
		run.Reset()
	}
	for i, c := range cells {
		if i == 0 || c.Attrs != attrs {
			flush()
			attrs = c.Attrs
		}
		run.WriteString(c.Text)
	}
	flush()
	return b.String()
}

func highlightItems(hl *highlight.Table) []uistate.Item {
	ids := hl.IDs()
	items := make([]uistate.Item, 0, len(ids))
	for _, id := range ids {
		r := hl.Resolve(id)
		fg, bg := highlight.Hex(r.Fg), highlight.Hex(r.Bg)
		attrs := attrNames(r)
		label := fmt.Sprintf("%d fg #%s bg #%s", id, fg, bg)
		if len(attrs) > 0 {
			label += " " + strings.Join(attrs, ",")
		}
		items = append(items, uistate.Item{
			ID:     strconv.Itoa(id),
			Label:  label,
			Colors: []string{fg, bg},
			Attrs:  attrs,
		})
	}
	return items
}

func attrNames(r highlight.Resolved) []string {
	var names []string
	for _, a := range []struct {
		on   bool
		name string
	}{
		{r.Bold, "bold"},
		{r.Italic, "italic"},
		{r.Underline, "underline"},
		{r.Undercurl, "undercurl"},
		{r.Strikethrough, "strikethrough"},
	} {
		if a.on {
			names = append(names, a.name)
		}
	}
	return names
}

func (m *Model) highlightLines(height int) []string {
	l := m.highlights
	if len(l.Items) == 0 {
		msg := "(no highlights defined)"
		if strings.TrimSpace(l.Filter) != "" {
			msg = fmt.Sprintf("No matches for %q", l.Filter)
		}
		return []string{render(styles.Info, msg)}
	}
	hl := m.state.Highlights()
	visible := l.Visible(height)
	out := make([]string, 0, len(visible))
	for i, item := range visible {
		sample := " Aa "
		if id, err := strconv.Atoi(item.ID); err == nil {
			sample = theme.Cell(hl.Resolve(id)).Render(sample)
		}
		style := styles.Item
		if l.ViewportOffset+i == l.Cursor {
			style = styles.SelectedItem
		}
		out = append(out, sample+" "+render(style, item.Label))
	}
	return out
}

func (m *Model) filterLine() string {
	if m.filtering {
		return m.filter.View()
	}
	if m.highlights.Filter == "" {
		return render(styles.FilterPlaceholder, "press / to filter highlights")
	}
	return render(styles.FilterPrompt, "/ ") + render(styles.Filter, m.highlights.Filter)
}

func (m *Model) footerLine() string {
	bindings := m.keys.hints(m.filtering, m.showHl)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return render(styles.Footer, strings.Join(parts, " • "))
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// Package popupmenu holds the completion menu shown next to the cursor.
package popupmenu

import (
	"math"
	"strings"

	"github.com/atomicstack/nvim-ui-mirror/internal/font"
	"github.com/atomicstack/nvim-ui-mirror/internal/geom"
	"github.com/atomicstack/nvim-ui-mirror/internal/highlight"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
	"github.com/atomicstack/nvim-ui-mirror/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultMaxRows      = 12
	defaultWidth        = 40
	defaultWidthDetails = 60
)

// Popupmenu is the completion menu.
type Popupmenu struct {
	measurer  font.Measurer
	font      font.Font
	lineSpace int

	items    []redraw.PopupmenuItem
	selected int
	anchor   geom.Rect
	bounds   geom.Rect
	visible  bool

	showInfo      bool
	showMenuOnAll bool
	width         int
	widthDetails  int
	maxRows       int

	normal   lipgloss.Style
	selStyle lipgloss.Style
}

func New(m font.Measurer, f font.Font, lineSpace int) *Popupmenu {
	return &Popupmenu{
		measurer:     m,
		font:         f,
		lineSpace:    lineSpace,
		selected:     -1,
		width:        defaultWidth,
		widthDetails: defaultWidthDetails,
		maxRows:      defaultMaxRows,
		normal:       lipgloss.NewStyle(),
		selStyle:     lipgloss.NewStyle().Reverse(true),
	}
}

func (p *Popupmenu) SetItems(items []redraw.PopupmenuItem) {
	p.items = items
	p.selected = -1
}

func (p *Popupmenu) Items() []redraw.PopupmenuItem {
	return p.items
}

// SetAnchor sets the cell rectangle, in shell coordinates, the menu is
// placed against.
func (p *Popupmenu) SetAnchor(r geom.Rect) {
	p.anchor = r
}

func (p *Popupmenu) Anchor() geom.Rect {
	return p.anchor
}

// SetBounds sets the area the menu has to fit in.
func (p *Popupmenu) SetBounds(r geom.Rect) {
	p.bounds = r
}

// Select marks item i. Any value outside the item range clears the
// selection.
func (p *Popupmenu) Select(i int) {
	if i < 0 || i >= len(p.items) {
		p.selected = -1
		return
	}
	p.selected = i
}

func (p *Popupmenu) Selected() int {
	return p.selected
}

func (p *Popupmenu) Show() {
	p.visible = true
}

func (p *Popupmenu) Hide() {
	p.visible = false
}

func (p *Popupmenu) Visible() bool {
	return p.visible
}

func (p *Popupmenu) rowHeight() float64 {
	_, h := p.measurer.CellSize(p.font, p.lineSpace)
	return h
}

// Height returns the menu height in pixels.
func (p *Popupmenu) Height() int {
	rows := min(len(p.items), p.maxRows)
	return int(math.Ceil(float64(rows) * p.rowHeight()))
}

// IsAboveAnchor reports whether the menu opens upwards, which happens
// when it does not fit below the anchor but does fit above it.
func (p *Popupmenu) IsAboveAnchor() bool {
	if p.bounds.Height == 0 {
		return false
	}
	h := p.Height()
	below := p.bounds.Bottom() - p.anchor.Bottom()
	above := p.anchor.Y - p.bounds.Y
	return h > below && above >= h
}

// Rect returns the menu rectangle in shell coordinates.
func (p *Popupmenu) Rect() geom.Rect {
	cw, _ := p.measurer.CellSize(p.font, p.lineSpace)
	w := p.width
	if p.showInfo {
		w = p.widthDetails
	}
	r := geom.Rect{X: p.anchor.X, Width: int(math.Ceil(float64(w) * cw)), Height: p.Height()}
	if p.IsAboveAnchor() {
		r.Y = p.anchor.Y - r.Height
	} else {
		r.Y = p.anchor.Bottom()
	}
	return r
}

func (p *Popupmenu) SetFont(f font.Font) {
	p.font = f
}

func (p *Popupmenu) SetLineSpace(lineSpace int) {
	p.lineSpace = lineSpace
}

func (p *Popupmenu) Font() (font.Font, int) {
	return p.font, p.lineSpace
}

// SetColors re-reads the Pmenu roles from hl.
func (p *Popupmenu) SetColors(hl *highlight.Table) {
	p.normal = theme.Role(hl, highlight.GroupPmenu)
	p.selStyle = theme.Role(hl, highlight.GroupPmenuSel)
}

// ToggleShowInfo switches between the compact and the detailed menu.
func (p *Popupmenu) ToggleShowInfo() {
	p.showInfo = !p.showInfo
}

func (p *Popupmenu) ShowInfo() bool {
	return p.showInfo
}

// SetWidth sets the compact width in cells.
func (p *Popupmenu) SetWidth(w int) {
	if w > 0 {
		p.width = w
	}
}

// SetWidthDetails sets the detailed width in cells.
func (p *Popupmenu) SetWidthDetails(w int) {
	if w > 0 {
		p.widthDetails = w
	}
}

func (p *Popupmenu) Widths() (compact, details int) {
	return p.width, p.widthDetails
}

// SetShowMenuOnAllItems shows the menu column on every item instead of
// only the selected one.
func (p *Popupmenu) SetShowMenuOnAllItems(show bool) {
	p.showMenuOnAll = show
}

func (p *Popupmenu) ShowMenuOnAllItems() bool {
	return p.showMenuOnAll
}

// Render returns the visible rows, scrolled so the selection is shown.
func (p *Popupmenu) Render() []string {
	if len(p.items) == 0 {
		return nil
	}
	width := p.width
	if p.showInfo {
		width = p.widthDetails
	}
	start := 0
	if p.selected >= p.maxRows {
		start = p.selected - p.maxRows + 1
	}
	end := min(start+p.maxRows, len(p.items))

	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		it := p.items[i]
		parts := []string{it.Word}
		if it.Kind != "" {
			parts = append(parts, it.Kind)
		}
		if it.Menu != "" && (p.showMenuOnAll || i == p.selected) {
			parts = append(parts, it.Menu)
		}
		if p.showInfo && i == p.selected && it.Info != "" {
			parts = append(parts, strings.ReplaceAll(it.Info, "\n", " "))
		}
		line := truncate.StringWithTail(strings.Join(parts, " "), uint(width), "…")
		style := p.normal
		if i == p.selected {
			style = p.selStyle
		}
		out = append(out, style.Width(width).Render(line))
	}
	return out
}

package grid

import (
	"github.com/atomicstack/nvim-ui-mirror/internal/highlight"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
)

// Painted is a cell with its highlight resolved.
type Painted struct {
	Text        string
	Attrs       highlight.Resolved
	DoubleWidth bool
}

// CursorState is what a canvas needs to draw the cursor.
type CursorState struct {
	Row     int
	Col     int
	Visible bool
	Mode    redraw.ModeInfo
	Attrs   highlight.Resolved
}

// Canvas is the rendering layer's paint target for one grid.
type Canvas interface {
	Resize(cols, rows int, cellWidth, cellHeight float64)
	PaintRow(row int, cells []Painted)
	PaintCursor(c CursorState)
}

// Flush paints rows changed since the last flush.
func (g *Grid) Flush(hl *highlight.Table) {
	if g.canvas == nil {
		for i := range g.dirty {
			g.dirty[i] = false
		}
		g.cursorDirty = false
		return
	}
	m := g.Metrics()
	g.canvas.Resize(g.cols, g.rows, m.CellWidth, m.CellHeight)
	for r, d := range g.dirty {
		if !d {
			continue
		}
		g.canvas.PaintRow(r, g.paintRow(r, hl))
		g.dirty[r] = false
	}
	if g.cursorDirty {
		g.canvas.PaintCursor(g.cursorState(hl))
		g.cursorDirty = false
	}
}

// Redraw repaints every row against the current highlight table.
func (g *Grid) Redraw(hl *highlight.Table) {
	g.Invalidate()
	g.Flush(hl)
}

// PaintedRow resolves one row against hl without touching dirty state.
func (g *Grid) PaintedRow(row int, hl *highlight.Table) []Painted {
	if row < 0 || row >= g.rows {
		return nil
	}
	return g.paintRow(row, hl)
}

func (g *Grid) paintRow(row int, hl *highlight.Table) []Painted {
	out := make([]Painted, len(g.cells[row]))
	for i, c := range g.cells[row] {
		out[i] = Painted{Text: c.Text, Attrs: hl.Resolve(c.HlID), DoubleWidth: c.DoubleWidth}
	}
	return out
}

func (g *Grid) cursorState(hl *highlight.Table) CursorState {
	cs := CursorState{
		Row:     g.cursorRow,
		Col:     g.cursorCol,
		Visible: g.active && !g.busy,
	}
	if g.mode != nil {
		cs.Mode = *g.mode
		cs.Attrs = hl.Resolve(g.mode.AttrID)
	} else {
		cs.Attrs = hl.Resolve(0)
	}
	return cs
}

// Package grid implements the addressable cell buffer behind every editor
// window. A Grid owns its cells, cursor and cell metrics; painting those
// cells is delegated to a Canvas supplied by the rendering layer.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/atomicstack/nvim-ui-mirror/internal/font"
	"github.com/atomicstack/nvim-ui-mirror/internal/geom"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
	"github.com/mattn/go-runewidth"
)

var (
	ErrUnknownGrid = errors.New("unknown grid")
	ErrOutOfBounds = errors.New("position outside grid")
)

// Cell is one stored cell. A double-width glyph occupies its cell and
// the following one, whose Text is empty.
type Cell struct {
	Text        string
	HlID        int
	DoubleWidth bool
}

var blank = Cell{Text: " "}

// Metrics describes a grid's size in cells and pixels.
type Metrics struct {
	CellWidth  float64
	CellHeight float64
	Cols       float64
	Rows       float64
	Width      float64
	Height     float64
}

// Grid is a rectangular buffer of styled cells.
type Grid struct {
	ID int

	measurer  font.Measurer
	font      font.Font
	lineSpace int

	cellWidth  float64
	cellHeight float64

	cols  int
	rows  int
	cells [][]Cell

	// allocWidth and allocHeight are the pixel extent the host gave this
	// grid. Zero means "same as the grid's own size".
	allocWidth  float64
	allocHeight float64

	cursorRow int
	cursorCol int
	active    bool
	busy      bool
	mode      *redraw.ModeInfo

	dirty       []bool
	cursorDirty bool
	canvas      Canvas
}

// New creates a grid of cols x rows blank cells.
func New(id int, m font.Measurer, f font.Font, lineSpace, cols, rows int) *Grid {
	if m == nil {
		m = font.Terminal{}
	}
	g := &Grid{
		ID:        id,
		measurer:  m,
		font:      f,
		lineSpace: lineSpace,
	}
	g.cellWidth, g.cellHeight = m.CellSize(f, lineSpace)
	g.Resize(cols, rows)
	return g
}

// SetCanvas attaches the paint target. A nil canvas keeps state only.
func (g *Grid) SetCanvas(c Canvas) {
	g.canvas = c
	g.Invalidate()
}

// Size returns the grid size in cells.
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Resize changes the cell buffer to cols x rows, keeping the overlapping
// content.
func (g *Grid) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		row := make([]Cell, cols)
		for c := range row {
			if r < g.rows && c < g.cols {
				row[c] = g.cells[r][c]
			} else {
				row[c] = blank
			}
		}
		cells[r] = row
	}
	g.cells = cells
	g.cols = cols
	g.rows = rows
	g.dirty = make([]bool, rows)
	g.Invalidate()
	if g.cursorRow >= rows {
		g.cursorRow = max(rows-1, 0)
	}
	if g.cursorCol >= cols {
		g.cursorCol = max(cols-1, 0)
	}
}

// PutLine writes one grid_line segment. Repeats are expanded. A segment
// that does not fit the row is rejected without writing any cell.
func (g *Grid) PutLine(line redraw.GridLine) error {
	if line.Row < 0 || line.Row >= g.rows {
		return fmt.Errorf("grid %d row %d: %w", g.ID, line.Row, ErrOutOfBounds)
	}
	width := 0
	for _, c := range line.Cells {
		width += repeatOf(c)
	}
	if line.ColStart < 0 || line.ColStart+width > g.cols {
		return fmt.Errorf("grid %d cols %d-%d: %w", g.ID, line.ColStart, line.ColStart+width-1, ErrOutOfBounds)
	}
	col := line.ColStart
	row := g.cells[line.Row]
	for _, c := range line.Cells {
		wide := runewidth.StringWidth(c.Text) == 2
		for i := 0; i < repeatOf(c); i++ {
			row[col] = Cell{Text: c.Text, HlID: c.HlID, DoubleWidth: wide}
			col++
		}
	}
	g.dirty[line.Row] = true
	return nil
}

func repeatOf(c redraw.Cell) int {
	if c.Repeat <= 0 {
		return 1
	}
	return c.Repeat
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = blank
		}
	}
	g.Invalidate()
}

// Scroll moves the region's content by rows (positive moves text up)
// and cols (positive moves text left). Vacated cells keep their old
// content until the editor redraws them.
func (g *Grid) Scroll(reg redraw.Region, rows, cols int) {
	top, bot := clamp(reg.Top, 0, g.rows), clamp(reg.Bot, 0, g.rows)
	left, right := clamp(reg.Left, 0, g.cols), clamp(reg.Right, 0, g.cols)
	if rows > 0 {
		for r := top; r < bot-rows; r++ {
			copy(g.cells[r][left:right], g.cells[r+rows][left:right])
		}
	} else if rows < 0 {
		for r := bot - 1; r >= top-rows; r-- {
			copy(g.cells[r][left:right], g.cells[r+rows][left:right])
		}
	}
	if cols != 0 {
		for r := top; r < bot; r++ {
			line := g.cells[r]
			if cols > 0 && left+cols < right {
				copy(line[left:right-cols], line[left+cols:right])
			} else if cols < 0 && left-cols < right {
				copy(line[left-cols:right], line[left:right+cols])
			}
		}
	}
	for r := top; r < bot; r++ {
		g.dirty[r] = true
	}
	g.cursorDirty = true
}

// Cell returns the cell at row, col.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Cell{}, false
	}
	return g.cells[row][col], true
}

// RowText returns the row as plain text.
func (g *Grid) RowText(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	var b []byte
	for _, c := range g.cells[row] {
		b = append(b, c.Text...)
	}
	return string(b)
}

// CursorGoto moves the cursor.
func (g *Grid) CursorGoto(row, col int) {
	g.markCursorRow()
	g.cursorRow = row
	g.cursorCol = col
	g.cursorDirty = true
}

// Cursor returns the cursor position.
func (g *Grid) Cursor() (row, col int) {
	return g.cursorRow, g.cursorCol
}

func (g *Grid) SetActive(active bool) {
	g.active = active
	g.cursorDirty = true
}

func (g *Grid) Active() bool {
	return g.active
}

func (g *Grid) SetBusy(busy bool) {
	g.busy = busy
	g.cursorDirty = true
}

func (g *Grid) Busy() bool {
	return g.busy
}

// SetMode sets the cursor style used when painting the cursor.
func (g *Grid) SetMode(mode redraw.ModeInfo) {
	m := mode
	g.mode = &m
	g.cursorDirty = true
}

// Mode returns the current cursor mode, if any.
func (g *Grid) Mode() (redraw.ModeInfo, bool) {
	if g.mode == nil {
		return redraw.ModeInfo{}, false
	}
	return *g.mode, true
}

// Tick invalidates the cursor cell so a stale cursor is repainted.
func (g *Grid) Tick() {
	g.markCursorRow()
	g.cursorDirty = true
}

func (g *Grid) markCursorRow() {
	if g.cursorRow >= 0 && g.cursorRow < g.rows {
		g.dirty[g.cursorRow] = true
	}
}

// Font returns the font the cell metrics were computed from.
func (g *Grid) Font() font.Font {
	return g.font
}

func (g *Grid) LineSpace() int {
	return g.lineSpace
}

// UpdateCellMetrics recomputes the cell size. The pixel allocation is
// kept so CalcSize reports how many cells now fit.
func (g *Grid) UpdateCellMetrics(f font.Font, lineSpace int) {
	if g.allocWidth == 0 && g.allocHeight == 0 {
		g.allocWidth, g.allocHeight = g.pixelSize()
	}
	g.font = f
	g.lineSpace = lineSpace
	g.cellWidth, g.cellHeight = g.measurer.CellSize(f, lineSpace)
	g.Invalidate()
}

// SetAllocation records the pixel extent the host gives this grid.
func (g *Grid) SetAllocation(width, height float64) {
	g.allocWidth = width
	g.allocHeight = height
}

// Allocation returns the pixel extent used by CalcSize.
func (g *Grid) Allocation() (width, height float64) {
	if g.allocWidth == 0 && g.allocHeight == 0 {
		return g.pixelSize()
	}
	return g.allocWidth, g.allocHeight
}

// CalcSize returns how many whole cells fit in the allocation.
func (g *Grid) CalcSize() (cols, rows int) {
	w, h := g.Allocation()
	if g.cellWidth <= 0 || g.cellHeight <= 0 {
		return g.cols, g.rows
	}
	return int(math.Floor(w / g.cellWidth)), int(math.Floor(h / g.cellHeight))
}

func (g *Grid) pixelSize() (float64, float64) {
	return float64(g.cols) * g.cellWidth, float64(g.rows) * g.cellHeight
}

// Metrics returns the grid's current metrics.
func (g *Grid) Metrics() Metrics {
	w, h := g.pixelSize()
	return Metrics{
		CellWidth:  g.cellWidth,
		CellHeight: g.cellHeight,
		Cols:       float64(g.cols),
		Rows:       float64(g.rows),
		Width:      w,
		Height:     h,
	}
}

// RectForCell returns the pixel rectangle of a cell, relative to the grid.
func (g *Grid) RectForCell(row, col int) geom.Rect {
	return geom.Rect{
		X:      int(math.Floor(float64(col) * g.cellWidth)),
		Y:      int(math.Floor(float64(row) * g.cellHeight)),
		Width:  int(math.Ceil(g.cellWidth)),
		Height: int(math.Ceil(g.cellHeight)),
	}
}

// Invalidate marks every row and the cursor for the next Flush.
func (g *Grid) Invalidate() {
	for i := range g.dirty {
		g.dirty[i] = true
	}
	g.cursorDirty = true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

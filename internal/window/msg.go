package window

import (
	"math"

	"github.com/atomicstack/nvim-ui-mirror/internal/grid"
)

// MsgWindow shows the message grid along the bottom of the primary grid.
type MsgWindow struct {
	container *Container
	frame     Frame

	grid     int
	row      float64
	scrolled bool
	rect     struct{ y, width, height int }
}

func NewMsgWindow(host Host, c *Container) *MsgWindow {
	f := host.NewFrame()
	f.Move(0, 0)
	return &MsgWindow{container: c, frame: f}
}

// SetPos shows grid starting at row. The y position is row times the
// cell height of m; h is the height to cover so that older renders on
// the primary grid stay hidden.
func (w *MsgWindow) SetPos(gridID int, m grid.Metrics, row, h float64, scrolled bool) {
	if w.grid != gridID {
		w.frame.SetGrid(gridID)
		w.grid = gridID
	}
	w.row = row
	w.scrolled = scrolled
	w.frame.SetClass("scrolled", scrolled)

	w.rect.width = int(math.Ceil(m.Cols * m.CellWidth))
	w.rect.height = int(math.Ceil(h))
	w.rect.y = int(m.CellHeight * row)
	w.frame.SetSizeRequest(w.rect.width, w.rect.height)
	w.frame.Move(0, w.rect.y)
	w.frame.SetVisible(true)
}

// Clear detaches the shown grid and hides the frame.
func (w *MsgWindow) Clear() {
	w.grid = 0
	w.row = 0
	w.scrolled = false
	w.rect.y, w.rect.width, w.rect.height = 0, 0, 0
	w.frame.SetGrid(0)
	w.frame.SetClass("scrolled", false)
	w.frame.SetVisible(false)
}

// Grid returns the grid currently shown, or 0.
func (w *MsgWindow) Grid() int {
	return w.grid
}

func (w *MsgWindow) Scrolled() bool {
	return w.scrolled
}

// Bounds returns the y position and size of the message frame.
func (w *MsgWindow) Bounds() (y, width, height int) {
	return w.rect.y, w.rect.width, w.rect.height
}

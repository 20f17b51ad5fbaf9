// Package surface provides a headless rendering host. It records what
// the engine asks of the rendering layer so the terminal inspector and
// tests can read it back.
package surface

import (
	"github.com/atomicstack/nvim-ui-mirror/internal/window"
)

// Frame records the last geometry requested for one frame.
type Frame struct {
	Grid      int
	X         int
	Y         int
	Width     int
	Height    int
	Visible   bool
	Scrollbar bool
	Adj       window.Adjustment
	Classes   map[string]bool
}

func (f *Frame) SetGrid(grid int)        { f.Grid = grid }
func (f *Frame) Move(x, y int)           { f.X, f.Y = x, y }
func (f *Frame) SetSizeRequest(w, h int) { f.Width, f.Height = w, h }
func (f *Frame) SetVisible(v bool)       { f.Visible = v }

func (f *Frame) SetScrollbar(visible bool, adj window.Adjustment) {
	f.Scrollbar = visible
	f.Adj = adj
}

func (f *Frame) SetClass(name string, on bool) {
	if f.Classes == nil {
		f.Classes = map[string]bool{}
	}
	f.Classes[name] = on
}

// External records one promoted top-level surface.
type External struct {
	Frame  *Frame
	Width  int
	Height int
	Closed bool
}

func (e *External) Close() { e.Closed = true }

// Headless implements window.Host and the shell the engine reports
// title and style changes to.
type Headless struct {
	Title      string
	StyleSheet string
	StyleLoads int
	Frames     []*Frame
	Externals  []*External
}

func New() *Headless {
	return &Headless{}
}

func (h *Headless) NewFrame() window.Frame {
	f := &Frame{}
	h.Frames = append(h.Frames, f)
	return f
}

func (h *Headless) NewExternal(frame window.Frame, width, height int) window.External {
	f, _ := frame.(*Frame)
	e := &External{Frame: f, Width: width, Height: height}
	h.Externals = append(h.Externals, e)
	return e
}

func (h *Headless) SetTitle(title string) {
	h.Title = title
}

func (h *Headless) LoadStyleSheet(css string) {
	h.StyleSheet = css
	h.StyleLoads++
}

// OpenExternals counts promoted surfaces that are still open.
func (h *Headless) OpenExternals() int {
	n := 0
	for _, e := range h.Externals {
		if !e.Closed {
			n++
		}
	}
	return n
}

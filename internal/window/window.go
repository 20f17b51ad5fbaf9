// Package window places grids on screen. A Window hosts exactly one grid
// inside a docked or floating Container, or promotes it to its own
// top-level surface.
package window

import (
	"math"

	"github.com/atomicstack/nvim-ui-mirror/internal/geom"
	"github.com/neovim/go-client/nvim"
)

// Kind is where a window currently lives.
type Kind int

const (
	KindDocked Kind = iota
	KindFloating
	KindMessage
	KindExternal
)

func (k Kind) String() string {
	switch k {
	case KindDocked:
		return "docked"
	case KindFloating:
		return "floating"
	case KindMessage:
		return "message"
	case KindExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Adjustment is a scrollbar range in pixels.
type Adjustment struct {
	Value         float64
	Lower         float64
	Upper         float64
	StepIncrement float64
	PageIncrement float64
	PageSize      float64
}

// Frame is the rendering layer's handle on one positioned surface.
type Frame interface {
	SetGrid(grid int)
	Move(x, y int)
	SetSizeRequest(width, height int)
	SetVisible(visible bool)
	SetScrollbar(visible bool, adj Adjustment)
	SetClass(name string, on bool)
}

// External is a top-level surface a frame was promoted into.
type External interface {
	Close()
}

// Host creates frames and top-level surfaces.
type Host interface {
	NewFrame() Frame
	NewExternal(frame Frame, width, height int) External
}

// Container groups the frames sharing one coordinate space.
type Container struct {
	Name string
	Kind Kind

	members map[*Window]struct{}
}

func NewContainer(name string, kind Kind) *Container {
	return &Container{Name: name, Kind: kind, members: map[*Window]struct{}{}}
}

func (c *Container) attach(w *Window) {
	c.members[w] = struct{}{}
}

func (c *Container) detach(w *Window) {
	delete(c.members, w)
}

// Contains reports whether w is attached to c.
func (c *Container) Contains(w *Window) bool {
	_, ok := c.members[w]
	return ok
}

// Len returns the number of attached windows.
func (c *Container) Len() int {
	return len(c.members)
}

// Window hosts one grid.
type Window struct {
	GridID int
	Handle nvim.Window

	// X and Y are the frame position relative to the parent container.
	X float64
	Y float64

	host     Host
	parent   *Container
	frame    Frame
	external External

	width   int
	height  int
	visible bool

	scrollbar bool
	adj       Adjustment
}

// New creates a window for grid and attaches it to parent at (0, 0).
func New(host Host, handle nvim.Window, parent *Container, grid int) *Window {
	w := &Window{
		GridID: grid,
		Handle: handle,
		host:   host,
		parent: parent,
		frame:  host.NewFrame(),
	}
	w.frame.SetGrid(grid)
	w.frame.Move(0, 0)
	parent.attach(w)
	return w
}

// Parent returns the container the window belongs to. An external
// window keeps its parent so it can return to it.
func (w *Window) Parent() *Container {
	return w.parent
}

// Kind reports the placement the window is currently in.
func (w *Window) Kind() Kind {
	if w.external != nil {
		return KindExternal
	}
	return w.parent.Kind
}

// SetParent moves the window into c, detaching it from its previous
// container first.
func (w *Window) SetParent(c *Container) {
	if w.parent == c {
		return
	}
	if w.external == nil {
		w.parent.detach(w)
		c.attach(w)
		w.frame.Move(0, 0)
	}
	w.parent = c
}

// Resize sets the frame size in pixels.
func (w *Window) Resize(width, height int) {
	w.width, w.height = width, height
	w.frame.SetSizeRequest(width, height)
}

// SetExternal promotes the window to a top-level surface of the given
// size. It is a no-op when the window is already external.
func (w *Window) SetExternal(width, height int) {
	if w.external != nil {
		return
	}
	w.Resize(width, height)
	w.parent.detach(w)
	w.external = w.host.NewExternal(w.frame, width, height)
	w.visible = true
	w.frame.SetVisible(true)
}

// IsExternal reports whether the window lives in its own surface.
func (w *Window) IsExternal() bool {
	return w.external != nil
}

// SetPosition places the frame inside its parent. Any external surface
// is closed first and the frame returned to the parent.
func (w *Window) SetPosition(x, y, width, height float64) {
	if w.external != nil {
		ext := w.external
		w.external = nil
		w.parent.attach(w)
		ext.Close()
	}
	w.X, w.Y = x, y
	w.frame.Move(int(math.Floor(x)), int(math.Floor(y)))
	w.Resize(int(math.Ceil(width)), int(math.Ceil(height)))
}

func (w *Window) Show() {
	w.visible = true
	w.frame.SetVisible(true)
}

func (w *Window) Hide() {
	w.visible = false
	w.frame.SetVisible(false)
}

func (w *Window) Visible() bool {
	return w.visible
}

// Close removes the window from its container and closes any external
// surface.
func (w *Window) Close() {
	w.parent.detach(w)
	w.frame.SetVisible(false)
	w.visible = false
	if w.external != nil {
		w.external.Close()
		w.external = nil
	}
}

// Size returns the frame size in pixels.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Rect returns the frame rectangle inside its parent.
func (w *Window) Rect() geom.Rect {
	return geom.Rect{
		X:      int(math.Floor(w.X)),
		Y:      int(math.Floor(w.Y)),
		Width:  w.width,
		Height: w.height,
	}
}

func (w *Window) SetAdjustment(adj Adjustment) {
	w.adj = adj
	w.frame.SetScrollbar(w.scrollbar, adj)
}

func (w *Window) ShowScrollbar() {
	w.scrollbar = true
	w.frame.SetScrollbar(true, w.adj)
}

func (w *Window) HideScrollbar() {
	w.scrollbar = false
	w.frame.SetScrollbar(false, w.adj)
}

// Scrollbar returns the scrollbar visibility and range.
func (w *Window) Scrollbar() (bool, Adjustment) {
	return w.scrollbar, w.adj
}

package state

import (
	"fmt"
	"math"

	"github.com/atomicstack/nvim-ui-mirror/internal/command"
	"github.com/atomicstack/nvim-ui-mirror/internal/logging"
	"github.com/atomicstack/nvim-ui-mirror/internal/logging/events"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
	"github.com/atomicstack/nvim-ui-mirror/internal/window"
	"github.com/neovim/go-client/nvim"
)

// placeWindow returns the window for grid inside c, creating it or
// moving it from another container.
func (s *UIState) placeWindow(grid int, handle nvim.Window, c *window.Container) *window.Window {
	w, ok := s.windows.get(grid)
	if !ok {
		w = window.New(s.host, handle, c, grid)
		s.windows.put(w)
		return w
	}
	w.SetParent(c)
	w.Handle = handle
	return w
}

func (s *UIState) windowPos(e redraw.WindowPos) error {
	g, err := s.lookupGrid(e.Grid)
	if err != nil {
		return err
	}
	base, err := s.lookupGrid(PrimaryGrid)
	if err != nil {
		return err
	}

	w := s.placeWindow(e.Grid, e.Win, s.docked)

	m := base.Metrics()
	x := float64(e.StartCol) * m.CellWidth
	y := float64(e.StartRow) * m.CellHeight
	width := float64(e.Width) * m.CellWidth
	height := float64(e.Height) * m.CellHeight

	w.SetPosition(x, y, width, height)
	w.Show()
	events.Window.Pos(e.Grid, int(x), int(y), int(width), int(height))

	g.Resize(e.Width, e.Height)
	return nil
}

// floatOffset is the pixel origin a float's anchor cell is measured from.
func (s *UIState) floatOffset(e redraw.WindowFloatPos) (float64, float64, error) {
	if e.AnchorGrid == e.Grid {
		logging.Warnf("win_float_pos: grid %d anchored to itself, using the primary grid", e.Grid)
	}
	if e.AnchorGrid == PrimaryGrid || e.AnchorGrid == e.Grid {
		return 0, 0, nil
	}
	aw, ok := s.windows.get(e.AnchorGrid)
	if !ok {
		return 0, 0, fmt.Errorf("anchor grid %d: %w", e.AnchorGrid, ErrUnknownWindow)
	}
	return aw.X, aw.Y, nil
}

func (s *UIState) windowFloatPos(e redraw.WindowFloatPos) error {
	anchor, err := s.lookupGrid(e.AnchorGrid)
	if err != nil {
		return err
	}
	g, err := s.lookupGrid(e.Grid)
	if err != nil {
		return err
	}
	base, err := s.lookupGrid(PrimaryGrid)
	if err != nil {
		return err
	}
	xOff, yOff, err := s.floatOffset(e)
	if err != nil {
		return err
	}

	w := s.placeWindow(e.Grid, e.Win, s.floating)

	m := g.Metrics()
	x, y := window.FloatAnchorPos(e.Anchor, anchor.Metrics(), m.Width, m.Height, xOff, yOff, e.AnchorRow, e.AnchorCol)

	if cols, rows, ok := window.FloatAdjustSize(m, base.Metrics(), x, y); ok {
		s.bus.Submit(command.TryResizeGrid{Grid: e.Grid, Cols: int(cols), Rows: int(rows)})
	}

	w.SetPosition(x, y, m.Width, m.Height)
	w.Show()
	events.Window.Float(e.Grid, e.AnchorGrid, e.Anchor.String(), x, y)
	return nil
}

func (s *UIState) windowExternalPos(e redraw.WindowExternalPos) error {
	g, err := s.lookupGrid(e.Grid)
	if err != nil {
		return err
	}
	w, ok := s.windows.get(e.Grid)
	if !ok {
		w = window.New(s.host, e.Win, s.floating, e.Grid)
		s.windows.put(w)
	}

	m := g.Metrics()
	w.SetExternal(int(math.Ceil(m.Width)), int(math.Ceil(m.Height)))

	// A grid promoted without ever being docked or floated only now has
	// a surface to bind its metrics to.
	cols, rows := g.Size()
	g.Resize(cols, rows)
	events.Window.External(e.Grid)
	return nil
}

func (s *UIState) windowHide(e redraw.WindowHide) error {
	w, ok := s.windows.get(e.Grid)
	if !ok {
		return fmt.Errorf("grid %d: %w", e.Grid, ErrUnknownWindow)
	}
	w.Hide()
	events.Window.Hide(e.Grid)
	return nil
}

func (s *UIState) windowClose(e redraw.WindowClose) {
	w, ok := s.windows.remove(e.Grid)
	if !ok {
		logging.Warnf("win_close: no window for grid %d", e.Grid)
		return
	}
	w.Close()
	events.Window.Close(e.Grid)
}

func (s *UIState) windowViewport(e redraw.WindowViewport) error {
	w, ok := s.windows.get(e.Grid)
	if !ok {
		return nil
	}
	g, err := s.lookupGrid(e.Grid)
	if err != nil {
		return err
	}
	m := g.Metrics()
	if float64(e.LineCount) <= m.Rows {
		w.HideScrollbar()
		return nil
	}
	w.ShowScrollbar()
	w.SetAdjustment(window.Adjustment{
		Value:         m.CellHeight * float64(e.TopLine),
		Lower:         0,
		Upper:         m.CellHeight * float64(e.LineCount),
		StepIncrement: m.CellHeight,
		PageIncrement: m.Height,
		PageSize:      m.Height,
	})
	return nil
}

func (s *UIState) msgSetPos(e redraw.MsgSetPos) error {
	base, err := s.lookupGrid(PrimaryGrid)
	if err != nil {
		return err
	}
	g, err := s.lookupGrid(e.Grid)
	if err != nil {
		return err
	}
	bm := base.Metrics()
	h := bm.Height - float64(e.Row)*bm.CellHeight
	s.msgWindow.SetPos(e.Grid, g.Metrics(), float64(e.Row), h, e.Scrolled)
	events.Window.Message(e.Grid, e.Row, e.Scrolled)
	return nil
}

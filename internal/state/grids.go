package state

import (
	"fmt"
	"math"

	"github.com/atomicstack/nvim-ui-mirror/internal/command"
	"github.com/atomicstack/nvim-ui-mirror/internal/font"
	"github.com/atomicstack/nvim-ui-mirror/internal/grid"
	"github.com/atomicstack/nvim-ui-mirror/internal/logging"
	"github.com/atomicstack/nvim-ui-mirror/internal/logging/events"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
)

func (s *UIState) lookupGrid(id int) (*grid.Grid, error) {
	g, ok := s.grids.get(id)
	if !ok {
		return nil, fmt.Errorf("grid %d: %w", id, grid.ErrUnknownGrid)
	}
	return g, nil
}

func (s *UIState) gridResize(e redraw.GridResize) {
	g, ok := s.grids.get(e.Grid)
	if !ok {
		g = s.newGrid(e.Grid, e.Width, e.Height)
		events.Grid.Create(e.Grid, e.Width, e.Height)
	} else {
		g.Resize(e.Width, e.Height)
		events.Grid.Resize(e.Grid, e.Width, e.Height)
	}

	if w, ok := s.windows.get(e.Grid); ok {
		m := g.Metrics()
		w.Resize(int(math.Ceil(m.Width)), int(math.Ceil(m.Height)))
	}
	if e.Grid == PrimaryGrid {
		s.updateBounds()
	}
}

func (s *UIState) gridLine(e redraw.GridLine) error {
	g, err := s.lookupGrid(e.Grid)
	if err != nil {
		return err
	}
	return g.PutLine(e)
}

func (s *UIState) gridClear(e redraw.GridClear) error {
	g, err := s.lookupGrid(e.Grid)
	if err != nil {
		return err
	}
	g.Clear()
	return nil
}

func (s *UIState) gridDestroy(e redraw.GridDestroy) {
	if !s.grids.remove(e.Grid) {
		logging.Warnf("grid_destroy: grid %d does not exist", e.Grid)
		return
	}
	if w, ok := s.windows.remove(e.Grid); ok {
		w.Close()
	}
	if s.msgWindow.Grid() == e.Grid {
		s.msgWindow.Clear()
	}
	if s.currentGrid == e.Grid {
		s.currentGrid = PrimaryGrid
		if primary, ok := s.grids.get(PrimaryGrid); ok {
			primary.SetActive(true)
			primary.Tick()
		}
	}
	events.Grid.Destroy(e.Grid, s.currentGrid)
}

func (s *UIState) gridScroll(e redraw.GridScroll) error {
	g, err := s.lookupGrid(e.Grid)
	if err != nil {
		return err
	}
	g.Scroll(e.Region, e.Rows, e.Cols)
	s.bus.Submit(command.Exec{Cmd: command.ScrollAutocmd})
	return nil
}

func (s *UIState) gridCursorGoto(e redraw.GridCursorGoto) error {
	g, err := s.lookupGrid(e.Grid)
	if err != nil {
		return err
	}
	if e.Grid != s.currentGrid {
		if prev, ok := s.grids.get(s.currentGrid); ok {
			prev.SetActive(false)
			prev.Tick()
		}
		g.SetActive(true)
		events.Grid.Focus(s.currentGrid, e.Grid)
		s.currentGrid = e.Grid
	}
	g.CursorGoto(e.Row, e.Col)
	return nil
}

func (s *UIState) optionSet(e redraw.OptionSet) {
	switch e.Option {
	case redraw.OptionGuiFont:
		f, err := font.Parse(e.Font)
		if err != nil {
			logging.Debugf("guifont %q: %v, using default", e.Font, err)
			f = font.Default()
		}
		s.font = f
		s.pendingResize().font = f
	case redraw.OptionLineSpace:
		s.lineSpace = e.LineSpace
		s.pendingResize().lineSpace = e.LineSpace
	default:
		logging.Debugf("unsupported option %q", e.Option)
	}
}

// pendingResize returns the record collecting option changes until the
// next flush, seeding it from the primary grid.
func (s *UIState) pendingResize() *pendingResize {
	if s.pending != nil {
		return s.pending
	}
	p := &pendingResize{font: s.font, lineSpace: s.lineSpace}
	if g, ok := s.grids.get(PrimaryGrid); ok {
		p.font = g.Font()
		p.lineSpace = g.LineSpace()
	}
	s.pending = p
	return p
}

func (s *UIState) modeChange(e redraw.ModeChange) error {
	if e.Index < 0 || e.Index >= len(s.modes) {
		return fmt.Errorf("%q index %d of %d: %w", e.Mode, e.Index, len(s.modes), ErrModeIndex)
	}
	mode := s.modes[e.Index]
	s.currentMode = &mode
	s.grids.each(func(g *grid.Grid) {
		g.SetMode(mode)
	})
	return nil
}

func (s *UIState) setBusy(busy bool) {
	s.grids.each(func(g *grid.Grid) {
		g.SetBusy(busy)
	})
}

// SetSurfaceSize records the pixel size the host gives the primary grid
// and schedules a delayed UI resize to match. A previously scheduled
// resize is cancelled.
func (s *UIState) SetSurfaceSize(width, height float64) {
	g, ok := s.grids.get(PrimaryGrid)
	if !ok {
		return
	}
	g.SetAllocation(width, height)
	s.updateBounds()
	cols, rows := g.CalcSize()
	if cols <= 0 || rows <= 0 {
		return
	}
	s.resizeTimer.Cancel()
	s.resizeTimer = s.bus.After(s.resizeDelay, command.TryResizeUI{Cols: cols, Rows: rows})
}

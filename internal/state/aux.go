package state

import (
	"fmt"
	"math"

	"github.com/atomicstack/nvim-ui-mirror/internal/command"
	"github.com/atomicstack/nvim-ui-mirror/internal/geom"
	"github.com/atomicstack/nvim-ui-mirror/internal/logging"
	"github.com/atomicstack/nvim-ui-mirror/internal/logging/events"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
	"github.com/atomicstack/nvim-ui-mirror/internal/tooltip"
)

// cellRect returns the rectangle of a cell on the current grid in shell
// coordinates.
func (s *UIState) cellRect(row, col int) (geom.Rect, error) {
	g, err := s.lookupGrid(s.currentGrid)
	if err != nil {
		return geom.Rect{}, err
	}
	r := g.RectForCell(row, col)
	if w, ok := s.windows.get(s.currentGrid); ok {
		r = r.Translate(int(w.X), int(w.Y))
	}
	return r, nil
}

// updateBounds gives the overlays the primary grid's area to fit in.
func (s *UIState) updateBounds() {
	g, ok := s.grids.get(PrimaryGrid)
	if !ok {
		return
	}
	w, h := g.Allocation()
	bounds := geom.Rect{Width: int(math.Ceil(w)), Height: int(math.Ceil(h))}
	s.popupmenu.SetBounds(bounds)
	s.tooltip.SetBounds(bounds, g.RectForCell(0, 0).Height)
}

func (s *UIState) popupmenuShow(e redraw.PopupmenuShow) error {
	if e.Grid == -1 {
		s.wildmenuShown = true
		s.cmdline.WildmenuShow(e.Items)
		s.cmdline.WildmenuSelect(e.Selected)
		events.Popupmenu.Show(len(e.Items), e.Selected, true)
		return nil
	}

	rect, err := s.cellRect(e.Row, e.Col)
	if err != nil {
		return err
	}
	s.wildmenuShown = false
	s.popupmenu.SetItems(e.Items)
	s.popupmenu.SetAnchor(rect)
	s.popupmenu.Select(e.Selected)
	s.popupmenu.Show()
	events.Popupmenu.Show(len(e.Items), e.Selected, false)

	if s.tooltip.IsVisible() {
		if s.popupmenu.IsAboveAnchor() {
			s.tooltip.ForceGravity(tooltip.GravityDown)
		} else {
			s.tooltip.ForceGravity(tooltip.GravityUp)
		}
		s.tooltip.RefreshPosition()
	}
	return nil
}

func (s *UIState) popupmenuHide() {
	events.Popupmenu.Hide(s.wildmenuShown)
	if s.wildmenuShown {
		s.cmdline.WildmenuHide()
		s.wildmenuShown = false
		return
	}
	s.popupmenu.Hide()
	s.tooltip.ForceGravity(tooltip.GravityAuto)
	s.tooltip.RefreshPosition()
}

func (s *UIState) popupmenuSelect(selected int) {
	if s.wildmenuShown {
		s.cmdline.WildmenuSelect(selected)
		return
	}
	s.popupmenu.Select(selected)
}

func (s *UIState) handleExtension(n redraw.Extension) error {
	if n.Err != nil {
		s.bus.Submit(command.Echo(fmt.Sprintf("Failed to parse extension notify: '%v'", n.Err)))
		logging.Warnf("extension: %v", n.Err)
		return fmt.Errorf("extension: %w", n.Err)
	}

	switch e := n.Event.(type) {
	case redraw.CompletionMenuToggleInfo:
		s.popupmenu.ToggleShowInfo()
	case redraw.PopupmenuWidth:
		s.popupmenu.SetWidth(e.Width)
	case redraw.PopupmenuWidthDetails:
		s.popupmenu.SetWidthDetails(e.Width)
	case redraw.PopupmenuShowMenuOnAllItems:
		s.popupmenu.SetShowMenuOnAllItems(e.Show)
	case redraw.CursorTooltipShow:
		rect, err := s.cellRect(e.Row, e.Col)
		if err != nil {
			logging.Warnf("cursor tooltip: %v", err)
			return err
		}
		s.tooltip.Show(e.Content)
		s.tooltip.MoveTo(rect)
	case redraw.CursorTooltipHide:
		s.tooltip.Hide()
	case redraw.CursorTooltipSetStyle:
		s.tooltip.SetStyle(e.Style)
	case redraw.CursorTooltipLoadStyle:
		if err := s.tooltip.LoadStyle(e.Path); err != nil {
			s.bus.Submit(command.Echo(fmt.Sprintf("Cursor tooltip load style failed: '%v'", err)))
			logging.Warnf("cursor tooltip load style: %v", err)
		}
	case redraw.UnknownExt:
		logging.Debugf("unknown extension event %q", e.Event)
	default:
		return fmt.Errorf("%w: %T", ErrUnhandledEvent, n.Event)
	}
	return nil
}

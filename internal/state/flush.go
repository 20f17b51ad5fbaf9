package state

import (
	"github.com/atomicstack/nvim-ui-mirror/internal/command"
	"github.com/atomicstack/nvim-ui-mirror/internal/grid"
	"github.com/atomicstack/nvim-ui-mirror/internal/logging"
	"github.com/atomicstack/nvim-ui-mirror/internal/logging/events"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
	"github.com/atomicstack/nvim-ui-mirror/internal/theme"
)

func (s *UIState) defaultColorsSet(e redraw.DefaultColorsSet) {
	s.hl.SetDefaults(e.Fg, e.Bg, e.Sp)
	s.tooltip.SetColors(e.Fg, e.Bg)
	s.hlChanged = true
}

func (s *UIState) hlAttrDefine(e redraw.HlAttrDefine) {
	s.hl.Define(e.ID, e.Hl)
	s.hlChanged = true
}

func (s *UIState) hlGroupSet(e redraw.HlGroupSet) {
	if !s.hl.Alias(e.Group, e.HlID) {
		return
	}
	s.hlChanged = true
}

// flush applies the work deferred to the end of a batch, at most one UI
// resize and at most one theme regeneration, then paints the grids so
// every canvas sees the new metrics and colours.
func (s *UIState) flush() {
	if p := s.pending; p != nil {
		s.pending = nil
		s.grids.each(func(g *grid.Grid) {
			g.UpdateCellMetrics(p.font, p.lineSpace)
		})

		if base, ok := s.grids.get(PrimaryGrid); ok {
			cols, rows := base.CalcSize()
			s.resizeTimer.Cancel()
			s.resizeTimer = nil
			s.bus.Submit(command.TryResizeUI{Cols: cols, Rows: rows})
			events.Flush.Resize(p.font.String(), p.lineSpace, cols, rows)
		} else {
			logging.Warnf("flush: primary grid missing, skipping resize")
		}

		s.popupmenu.SetFont(p.font)
		s.cmdline.SetFont(p.font)
		s.tabline.SetFont(p.font)
		s.tooltip.SetFont(p.font)

		s.popupmenu.SetLineSpace(p.lineSpace)
		s.cmdline.SetLineSpace(p.lineSpace)
		s.tabline.SetLineSpace(p.lineSpace)
		s.updateBounds()
	}

	if s.hlChanged {
		s.grids.each(func(g *grid.Grid) {
			g.Invalidate()
		})
		s.popupmenu.SetColors(s.hl)
		s.tabline.SetColors(s.hl)
		s.cmdline.SetColors(s.hl)
		s.cmdline.WildmenuSetColors(s.hl)
		s.shell.LoadStyleSheet(theme.StyleSheet(s.hl))
		s.hlChanged = false
		events.Flush.Theme(s.grids.len())
	}

	s.grids.each(func(g *grid.Grid) {
		g.Flush(s.hl)
	})
}

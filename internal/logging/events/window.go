package events

import "github.com/atomicstack/nvim-ui-mirror/internal/logging"

type WindowTracer struct{}

var Window = WindowTracer{}

func (WindowTracer) Pos(grid, x, y, width, height int) {
	logging.Trace("window.pos", map[string]interface{}{"grid": grid, "x": x, "y": y, "width": width, "height": height})
}

func (WindowTracer) Float(grid, anchorGrid int, anchor string, x, y float64) {
	logging.Trace("window.float", map[string]interface{}{"grid": grid, "anchor_grid": anchorGrid, "anchor": anchor, "x": x, "y": y})
}

func (WindowTracer) External(grid int) {
	logging.Trace("window.external", map[string]interface{}{"grid": grid})
}

func (WindowTracer) Hide(grid int) {
	logging.Trace("window.hide", map[string]interface{}{"grid": grid})
}

func (WindowTracer) Close(grid int) {
	logging.Trace("window.close", map[string]interface{}{"grid": grid})
}

func (WindowTracer) Message(grid, row int, scrolled bool) {
	logging.Trace("window.msg", map[string]interface{}{"grid": grid, "row": row, "scrolled": scrolled})
}

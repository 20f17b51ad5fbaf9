package events

import "github.com/atomicstack/nvim-ui-mirror/internal/logging"

type GridTracer struct{}

var Grid = GridTracer{}

func (GridTracer) Create(grid, cols, rows int) {
	logging.Trace("grid.create", map[string]interface{}{"grid": grid, "cols": cols, "rows": rows})
}

func (GridTracer) Resize(grid, cols, rows int) {
	logging.Trace("grid.resize", map[string]interface{}{"grid": grid, "cols": cols, "rows": rows})
}

func (GridTracer) Destroy(grid, current int) {
	logging.Trace("grid.destroy", map[string]interface{}{"grid": grid, "current": current})
}

func (GridTracer) Focus(from, to int) {
	logging.Trace("grid.focus", map[string]interface{}{"from": from, "to": to})
}

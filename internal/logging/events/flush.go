package events

import "github.com/atomicstack/nvim-ui-mirror/internal/logging"

type FlushTracer struct{}

var Flush = FlushTracer{}

func (FlushTracer) Resize(font string, lineSpace, cols, rows int) {
	logging.Trace("flush.resize", map[string]interface{}{"font": font, "linespace": lineSpace, "cols": cols, "rows": rows})
}

func (FlushTracer) Theme(grids int) {
	logging.Trace("flush.theme", map[string]interface{}{"grids": grids})
}

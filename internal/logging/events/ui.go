package events

import "github.com/atomicstack/nvim-ui-mirror/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Resize(cols, rows int, fixed bool) {
	logging.Trace("ui.resize", map[string]interface{}{"cols": cols, "rows": rows, "fixed": fixed})
}

func (UITracer) Toggle(view string, on bool) {
	logging.Trace("ui.toggle", map[string]interface{}{"view": view, "on": on})
}

func (UITracer) BackendError(err error) {
	if err == nil {
		return
	}
	logging.Trace("ui.backend-error", map[string]interface{}{"error": err.Error()})
}

func (FilterTracer) Set(list, query string, matches int) {
	logging.Trace("filter.set", map[string]interface{}{"list": list, "filter": query, "matches": matches})
}

func (FilterTracer) Cleared(list string) {
	logging.Trace("filter.clear", map[string]interface{}{"list": list})
}

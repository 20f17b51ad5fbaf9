package events

import "github.com/atomicstack/nvim-ui-mirror/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Attach(cols, rows int) {
	logging.Trace("app.attach", map[string]interface{}{"cols": cols, "rows": rows})
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}

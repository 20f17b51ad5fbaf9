package events

import "github.com/atomicstack/nvim-ui-mirror/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(label string) {
	logging.Trace("command.queue", map[string]interface{}{"label": label})
}

func (CommandTracer) Drop(label string) {
	logging.Trace("command.drop", map[string]interface{}{"label": label})
}

func (CommandTracer) Schedule(label string, delayMS int64) {
	logging.Trace("command.schedule", map[string]interface{}{"label": label, "delay_ms": delayMS})
}

func (CommandTracer) Cancel(label string) {
	logging.Trace("command.cancel", map[string]interface{}{"label": label})
}

func (CommandTracer) Result(label string, err error) {
	payload := map[string]interface{}{"label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}

package command

import (
	"context"
	"time"

	"github.com/atomicstack/nvim-ui-mirror/internal/logging"
	"github.com/atomicstack/nvim-ui-mirror/internal/logging/events"
)

// Worker performs queued commands against the editor. Failures are
// logged and never retried.
type Worker struct {
	bus    *Bus
	client Client

	// resizes spaces out resize requests so a burst of window size
	// changes does not flood the editor.
	resizes *throttle
}

// NewWorker creates a worker. resizeInterval is the minimum gap between
// resize requests; zero disables spacing.
func NewWorker(bus *Bus, client Client, resizeInterval time.Duration) *Worker {
	return &Worker{bus: bus, client: client, resizes: newThrottle(resizeInterval)}
}

// Run processes commands until ctx is done.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-w.bus.C():
			w.execute(cmd)
		}
	}
}

func (w *Worker) execute(cmd Command) {
	switch cmd.(type) {
	case TryResizeUI, TryResizeGrid:
		w.resizes.wait()
	}
	err := cmd.run(w.client)
	events.Command.Result(cmd.Label(), err)
	if err != nil {
		logging.Errorf("%s: %v", cmd.Label(), err)
	}
}

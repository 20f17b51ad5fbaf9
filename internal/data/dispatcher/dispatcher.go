package dispatcher

import (
	"github.com/atomicstack/nvim-ui-mirror/internal/backend"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
)

// Target applies decoded notifications.
type Target interface {
	HandleNotification(n redraw.Notification) error
}

// Result summarises what one backend event did to the target.
type Result struct {
	// Updated is set when the target applied the event.
	Updated bool
	// Flushed is set when the batch ended a frame, which is when a
	// view of the state is worth refreshing.
	Flushed bool
	// Exited is set when the session ended.
	Exited bool
	Err    error
}

type Dispatcher struct {
	target Target
}

func New(t Target) *Dispatcher {
	return &Dispatcher{target: t}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	switch evt.Kind {
	case backend.KindExit:
		res.Exited = true
		res.Err = evt.Err
		return res
	case backend.KindRedraw, backend.KindExtension:
		if evt.Data == nil {
			res.Err = evt.Err
			return res
		}
		res.Err = d.target.HandleNotification(evt.Data)
		res.Updated = true
		if batch, ok := evt.Data.(redraw.Batch); ok {
			res.Flushed = containsFlush(batch)
		}
	}
	return res
}

func containsFlush(b redraw.Batch) bool {
	for _, e := range b.Events {
		if _, ok := e.(redraw.Flush); ok {
			return true
		}
	}
	return false
}

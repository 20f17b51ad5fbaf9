package command

import (
	"sync"
	"time"

	"github.com/atomicstack/nvim-ui-mirror/internal/logging"
	"github.com/atomicstack/nvim-ui-mirror/internal/logging/events"
)

const defaultQueueSize = 256

// Bus is a bounded queue of outbound commands. Submit never blocks.
type Bus struct {
	queue chan Command
}

// NewBus creates a bus holding up to size commands. A size of zero or
// less uses the default.
func NewBus(size int) *Bus {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Bus{queue: make(chan Command, size)}
}

// Submit enqueues cmd. When the queue is full the command is dropped and
// false is returned.
func (b *Bus) Submit(cmd Command) bool {
	select {
	case b.queue <- cmd:
		events.Command.Queue(cmd.Label())
		return true
	default:
		events.Command.Drop(cmd.Label())
		logging.Warnf("command queue full, dropping %s", cmd.Label())
		return false
	}
}

// C returns the receive side of the queue.
func (b *Bus) C() <-chan Command {
	return b.queue
}

// Drain removes and returns every queued command.
func (b *Bus) Drain() []Command {
	var out []Command
	for {
		select {
		case cmd := <-b.queue:
			out = append(out, cmd)
		default:
			return out
		}
	}
}

// Len returns the number of queued commands.
func (b *Bus) Len() int {
	return len(b.queue)
}

// After submits cmd once d has elapsed unless the returned token is
// cancelled first.
func (b *Bus) After(d time.Duration, cmd Command) *Timer {
	t := &Timer{label: cmd.Label()}
	events.Command.Schedule(t.label, d.Milliseconds())
	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		if t.cancelled {
			t.mu.Unlock()
			return
		}
		t.fired = true
		t.mu.Unlock()
		b.Submit(cmd)
	})
	return t
}

// Timer is the token for a delayed submission.
type Timer struct {
	label string
	timer *time.Timer

	mu        sync.Mutex
	cancelled bool
	fired     bool
}

// Cancel stops the pending submission. It reports whether the command
// was still pending. Cancel on a nil Timer is a no-op.
func (t *Timer) Cancel() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancelled || t.fired {
		return false
	}
	t.cancelled = true
	t.timer.Stop()
	events.Command.Cancel(t.label)
	return true
}

// Pending reports whether the command has neither fired nor been
// cancelled.
func (t *Timer) Pending() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.cancelled && !t.fired
}

package command

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type recordingClient struct {
	mu    sync.Mutex
	calls []string
	fail  bool
	done  chan struct{}
}

func (c *recordingClient) record(s string) error {
	c.mu.Lock()
	c.calls = append(c.calls, s)
	c.mu.Unlock()
	if c.done != nil {
		c.done <- struct{}{}
	}
	if c.fail {
		return errors.New("rpc failed")
	}
	return nil
}

func (c *recordingClient) TryResizeUI(w, h int) error {
	return c.record(TryResizeUI{Cols: w, Rows: h}.Label())
}

func (c *recordingClient) TryResizeUIGrid(g, w, h int) error {
	return c.record(TryResizeGrid{Grid: g, Cols: w, Rows: h}.Label())
}

func (c *recordingClient) Command(cmd string) error {
	return c.record(Exec{Cmd: cmd}.Label())
}

func TestSubmitDropsWhenFull(t *testing.T) {
	bus := NewBus(1)
	if !bus.Submit(TryResizeUI{Cols: 1, Rows: 1}) {
		t.Fatalf("expected first submit to succeed")
	}
	if bus.Submit(TryResizeUI{Cols: 2, Rows: 2}) {
		t.Fatalf("expected second submit to be dropped")
	}
	got := bus.Drain()
	if len(got) != 1 || got[0] != (TryResizeUI{Cols: 1, Rows: 1}) {
		t.Fatalf("unexpected queue contents %#v", got)
	}
	if bus.Len() != 0 {
		t.Fatalf("expected empty queue after drain")
	}
}

func TestTimerCancelPreventsSubmit(t *testing.T) {
	bus := NewBus(4)
	timer := bus.After(time.Hour, TryResizeUI{Cols: 80, Rows: 24})
	if !timer.Pending() {
		t.Fatalf("expected timer pending")
	}
	if !timer.Cancel() {
		t.Fatalf("expected cancel to report a pending command")
	}
	if timer.Cancel() {
		t.Fatalf("expected second cancel to be a no-op")
	}
	if bus.Len() != 0 {
		t.Fatalf("expected nothing queued")
	}
	var nilTimer *Timer
	if nilTimer.Cancel() || nilTimer.Pending() {
		t.Fatalf("expected nil timer to be inert")
	}
}

func TestTimerFires(t *testing.T) {
	bus := NewBus(4)
	timer := bus.After(time.Millisecond, TryResizeUI{Cols: 10, Rows: 5})
	select {
	case cmd := <-bus.C():
		if cmd != (TryResizeUI{Cols: 10, Rows: 5}) {
			t.Fatalf("unexpected command %#v", cmd)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timer never fired")
	}
	if timer.Pending() || timer.Cancel() {
		t.Fatalf("expected fired timer to be settled")
	}
}

func TestWorkerRunsCommandsInOrder(t *testing.T) {
	bus := NewBus(8)
	client := &recordingClient{done: make(chan struct{}, 8), fail: true}
	worker := NewWorker(bus, client, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	bus.Submit(TryResizeGrid{Grid: 5, Cols: 40, Rows: 3})
	bus.Submit(Exec{Cmd: ScrollAutocmd})
	bus.Submit(TryResizeUI{Cols: 80, Rows: 24})
	for i := 0; i < 3; i++ {
		select {
		case <-client.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("worker stalled after %d commands", i)
		}
	}

	client.mu.Lock()
	defer client.mu.Unlock()
	expected := []string{"try_resize_grid 5 40x3", "exec " + ScrollAutocmd, "try_resize 80x24"}
	if len(client.calls) != len(expected) {
		t.Fatalf("expected %d calls, got %v", len(expected), client.calls)
	}
	for i := range expected {
		if client.calls[i] != expected[i] {
			t.Fatalf("call %d: expected %q, got %q", i, expected[i], client.calls[i])
		}
	}
}

func TestEchoQuotes(t *testing.T) {
	cmd := Echo(`Failed to parse extension notify: 'bad "x"'`)
	expected := `echom "Failed to parse extension notify: 'bad \"x\"'"`
	if cmd.Cmd != expected {
		t.Fatalf("expected %q, got %q", expected, cmd.Cmd)
	}
}

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(20 * time.Millisecond)
	start := time.Now()
	th.wait()
	th.wait()
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected second wait to block, elapsed %v", elapsed)
	}
	var none *throttle
	none.wait()
}

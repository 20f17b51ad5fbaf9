package backend_test

import (
	"context"
	"testing"
	"time"

	"github.com/atomicstack/nvim-ui-mirror/internal/backend"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
	"github.com/atomicstack/nvim-ui-mirror/internal/testutil"
)

func TestUIOptionsRequestMultigrid(t *testing.T) {
	opts := backend.UIOptions()
	for _, key := range []string{"rgb", "ext_linegrid", "ext_multigrid", "ext_popupmenu", "ext_cmdline", "ext_tabline"} {
		if opts[key] != true {
			t.Fatalf("expected %s enabled, got %v", key, opts[key])
		}
	}
}

func TestKindString(t *testing.T) {
	cases := map[backend.Kind]string{
		backend.KindRedraw:    "redraw",
		backend.KindExtension: "extension",
		backend.KindExit:      "exit",
		backend.Kind(42):      "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestSessionReceivesRedraw(t *testing.T) {
	path := testutil.RequireNvim(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := backend.Start(ctx, backend.Options{
		Path: path,
		Args: testutil.NvimArgs(),
		Env:  testutil.NvimEnv(t),
		Cols: 40,
		Rows: 10,
	})
	if err != nil {
		t.Skipf("skipping: failed to start nvim: %v", err)
	}
	defer s.Close()

	var sawResize, sawFlush bool
	for !sawFlush || !sawResize {
		select {
		case <-ctx.Done():
			t.Fatalf("timeout waiting for redraw (resize=%v flush=%v)", sawResize, sawFlush)
		case evt, ok := <-s.Events():
			if !ok {
				t.Fatalf("events closed before first flush")
			}
			if evt.Kind != backend.KindRedraw {
				continue
			}
			batch := evt.Data.(redraw.Batch)
			for _, e := range batch.Events {
				switch e := e.(type) {
				case redraw.GridResize:
					if e.Grid == 1 && e.Width == 40 && e.Height == 10 {
						sawResize = true
					}
				case redraw.Flush:
					sawFlush = true
				}
			}
		}
	}

	if err := s.Client().Command("set title titlestring=mirror-test"); err != nil {
		t.Fatalf("command failed: %v", err)
	}
	for {
		select {
		case <-ctx.Done():
			t.Fatalf("timeout waiting for set_title")
		case evt := <-s.Events():
			batch, ok := evt.Data.(redraw.Batch)
			if !ok {
				continue
			}
			for _, e := range batch.Events {
				if title, ok := e.(redraw.SetTitle); ok && title.Title == "mirror-test" {
					return
				}
			}
		}
	}
}

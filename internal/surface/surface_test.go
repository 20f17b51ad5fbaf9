package surface

import (
	"testing"

	"github.com/atomicstack/nvim-ui-mirror/internal/window"
)

func TestHeadlessRecordsFramesAndExternals(t *testing.T) {
	h := New()
	f := h.NewFrame().(*Frame)
	f.Move(3, 4)
	f.SetSizeRequest(100, 50)
	f.SetScrollbar(true, window.Adjustment{Value: 20, Upper: 200})
	f.SetClass("scrolled", true)

	if len(h.Frames) != 1 || h.Frames[0] != f {
		t.Fatalf("expected frame recorded")
	}
	if f.X != 3 || f.Y != 4 || f.Width != 100 || f.Height != 50 {
		t.Fatalf("unexpected geometry %+v", f)
	}
	if !f.Scrollbar || f.Adj.Value != 20 || !f.Classes["scrolled"] {
		t.Fatalf("expected scrollbar and class recorded, got %+v", f)
	}

	e := h.NewExternal(f, 100, 50)
	other := h.NewExternal(h.NewFrame(), 10, 10)
	if h.OpenExternals() != 2 {
		t.Fatalf("expected 2 open externals, got %d", h.OpenExternals())
	}
	e.Close()
	if h.OpenExternals() != 1 {
		t.Fatalf("expected 1 open external, got %d", h.OpenExternals())
	}
	other.Close()
	if h.Externals[0].Frame != f {
		t.Fatalf("expected external to keep its frame")
	}
}

func TestHeadlessShell(t *testing.T) {
	h := New()
	h.SetTitle("buffer.go")
	h.LoadStyleSheet("a {}")
	h.LoadStyleSheet("b {}")
	if h.Title != "buffer.go" || h.StyleSheet != "b {}" || h.StyleLoads != 2 {
		t.Fatalf("unexpected shell state %+v", h)
	}
}

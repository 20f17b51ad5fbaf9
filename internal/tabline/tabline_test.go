package tabline

import (
	"testing"

	"github.com/atomicstack/nvim-ui-mirror/internal/font"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
	"github.com/charmbracelet/x/ansi"
	"github.com/neovim/go-client/nvim"
)

func TestUpdateTracksCurrent(t *testing.T) {
	tl := New(font.Default(), 0)
	tl.Update(nvim.Tabpage(2), []redraw.Tab{{Tab: nvim.Tabpage(1), Name: "a"}, {Tab: nvim.Tabpage(2), Name: "b"}})
	if tl.Current() != 1 {
		t.Fatalf("expected current index 1, got %d", tl.Current())
	}
	if !tl.Visible() {
		t.Fatalf("expected tabline visible with two tabs")
	}
	if w := ansi.StringWidth(tl.Render(20)); w != 20 {
		t.Fatalf("expected padded width 20, got %d", w)
	}
	tl.Update(nvim.Tabpage(9), []redraw.Tab{{Tab: nvim.Tabpage(1), Name: "a"}})
	if tl.Current() != -1 || tl.Visible() || tl.Render(20) != "" {
		t.Fatalf("expected single unknown tab to hide the bar")
	}
}

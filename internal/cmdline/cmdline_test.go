package cmdline

import (
	"strings"
	"testing"

	"github.com/atomicstack/nvim-ui-mirror/internal/font"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
)

func show(text string, pos int) redraw.CmdlineShow {
	return redraw.CmdlineShow{
		Content:   []redraw.Chunk{{Text: text}},
		Pos:       pos,
		FirstChar: ":",
		Level:     1,
	}
}

func TestShowAndSpecialChar(t *testing.T) {
	cases := []struct {
		name     string
		shift    bool
		expected string
	}{
		{"overwrite", false, ":ab^d"},
		{"shift", true, ":ab^cd"},
	}
	for _, tc := range cases {
		c := New(font.Default(), 0)
		c.Show(show("abcd", 2))
		c.SpecialChar("^", tc.shift, 1)
		if got := c.Text(); got != tc.expected {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.expected, got)
		}
		c.SetPos(3, 1)
		if got := c.Text(); got != ":abcd" {
			t.Fatalf("%s: expected special char cleared by pos, got %q", tc.name, got)
		}
	}
}

func TestOtherLevelIgnored(t *testing.T) {
	c := New(font.Default(), 0)
	c.Show(show("abc", 0))
	c.SetPos(2, 2)
	if pos, level := c.Cursor(); pos != 0 || level != 1 {
		t.Fatalf("expected level 2 update ignored, got %d/%d", pos, level)
	}
}

func TestPromptAndIndent(t *testing.T) {
	c := New(font.Default(), 0)
	c.Show(redraw.CmdlineShow{Content: []redraw.Chunk{{Text: "x"}}, Prompt: "Name: ", Indent: 2, Level: 1})
	if got := c.Text(); got != "Name:   x" {
		t.Fatalf("unexpected text %q", got)
	}
	c.Hide()
	if c.Visible() {
		t.Fatalf("expected hidden cmdline")
	}
}

func TestBlock(t *testing.T) {
	c := New(font.Default(), 0)
	c.BlockShow([][]redraw.Chunk{{{Text: "function! F()"}}})
	c.BlockAppend([]redraw.Chunk{{Text: "  echo 1"}, {Text: "2"}})
	block := c.Block()
	if len(block) != 2 || block[1] != "  echo 12" {
		t.Fatalf("unexpected block %q", block)
	}
	if out := c.Render(40); !strings.Contains(out, "function! F()") {
		t.Fatalf("expected block rendered, got %q", out)
	}
	c.BlockHide()
	if len(c.Block()) != 0 {
		t.Fatalf("expected block cleared")
	}
}

func TestWildmenu(t *testing.T) {
	c := New(font.Default(), 0)
	c.WildmenuShow([]redraw.PopupmenuItem{{Word: "edit"}, {Word: "echo"}})
	c.WildmenuSelect(1)
	items, sel, visible := c.Wildmenu()
	if len(items) != 2 || sel != 1 || !visible {
		t.Fatalf("unexpected wildmenu %v %d %v", items, sel, visible)
	}
	c.WildmenuSelect(9)
	if _, sel, _ = c.Wildmenu(); sel != -1 {
		t.Fatalf("expected out-of-range select to clear, got %d", sel)
	}
	c.WildmenuHide()
	if _, _, visible = c.Wildmenu(); visible {
		t.Fatalf("expected wildmenu hidden")
	}
}

package redraw

import (
	"errors"
	"testing"

	"github.com/atomicstack/nvim-ui-mirror/internal/geom"
	"github.com/atomicstack/nvim-ui-mirror/internal/highlight"
	"github.com/neovim/go-client/nvim"
)

func update(name string, tuples ...[]interface{}) []interface{} {
	out := []interface{}{name}
	for _, t := range tuples {
		out = append(out, t)
	}
	return out
}

func TestDecodeGridLineCarriesHighlight(t *testing.T) {
	cells := []interface{}{
		[]interface{}{"a", int64(3)},
		[]interface{}{"b"},
		[]interface{}{" ", int64(0), int64(4)},
	}
	events, err := Decode([][]interface{}{
		update("grid_line", []interface{}{int64(2), int64(1), int64(5), cells, false}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	line, ok := events[0].(GridLine)
	if !ok {
		t.Fatalf("expected GridLine, got %T", events[0])
	}
	if line.Grid != 2 || line.Row != 1 || line.ColStart != 5 {
		t.Fatalf("unexpected header %#v", line)
	}
	want := []Cell{{Text: "a", HlID: 3, Repeat: 1}, {Text: "b", HlID: 3, Repeat: 1}, {Text: " ", HlID: 0, Repeat: 4}}
	for i, c := range want {
		if line.Cells[i] != c {
			t.Fatalf("cell %d: expected %#v, got %#v", i, c, line.Cells[i])
		}
	}
}

func TestDecodePreservesOrderAcrossUpdates(t *testing.T) {
	events, err := Decode([][]interface{}{
		update("hl_attr_define", []interface{}{int64(5), map[string]interface{}{"foreground": int64(0xff0000), "bold": true}, map[string]interface{}{}, []interface{}{}}),
		update("grid_resize", []interface{}{int64(1), int64(80), int64(24)}, []interface{}{int64(2), int64(10), int64(5)}),
		update("flush", []interface{}{}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.Name()
	}
	want := []string{"hl_attr_define", "grid_resize", "grid_resize", "flush"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
	def := events[0].(HlAttrDefine)
	if def.ID != 5 || def.Hl.Foreground == nil || *def.Hl.Foreground != highlight.FromRGB(0xff0000) || !def.Hl.Bold {
		t.Fatalf("unexpected highlight %#v", def)
	}
}

func TestDecodeWindowEvents(t *testing.T) {
	events, err := Decode([][]interface{}{
		update("win_pos", []interface{}{int64(4), nvim.Window(1000), int64(0), int64(0), int64(40), int64(10)}),
		update("win_float_pos", []interface{}{int64(5), nvim.Window(1001), "SE", int64(1), 2.5, float64(3), true, int64(50)}),
		update("win_external_pos", []interface{}{int64(6), int64(1002)}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos := events[0].(WindowPos)
	if pos.Win != nvim.Window(1000) || pos.Width != 40 {
		t.Fatalf("unexpected win_pos %#v", pos)
	}
	float := events[1].(WindowFloatPos)
	if float.Anchor != geom.AnchorSE || float.AnchorRow != 2.5 || float.AnchorCol != 3 || !float.Focusable {
		t.Fatalf("unexpected win_float_pos %#v", float)
	}
	ext := events[2].(WindowExternalPos)
	if ext.Win != nvim.Window(1002) {
		t.Fatalf("expected integer handle to convert, got %#v", ext)
	}
}

func TestDecodeSkipsMalformedTuples(t *testing.T) {
	events, err := Decode([][]interface{}{
		update("grid_resize", []interface{}{int64(1), "wide", int64(24)}, []interface{}{int64(2), int64(10), int64(5)}),
		update("win_float_pos", []interface{}{int64(5), int64(1), "XX", int64(1), 0.0, 0.0}),
	})
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected the valid tuple to survive, got %d events", len(events))
	}
	if r := events[0].(GridResize); r.Grid != 2 {
		t.Fatalf("unexpected survivor %#v", r)
	}
}

func TestDecodeUnknownAndIgnored(t *testing.T) {
	events, err := Decode([][]interface{}{
		update("mouse_on", []interface{}{}),
		update("something_new", []interface{}{int64(1)}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := events[0].(Ignored); !ok {
		t.Fatalf("expected Ignored, got %T", events[0])
	}
	if u, ok := events[1].(Unknown); !ok || u.Event != "something_new" {
		t.Fatalf("expected Unknown, got %#v", events[1])
	}
}

func TestDecodeOptionsAndModes(t *testing.T) {
	events, err := Decode([][]interface{}{
		update("option_set",
			[]interface{}{"guifont", "Hack:h11"},
			[]interface{}{"linespace", int64(3)},
			[]interface{}{"arabicshape", true},
		),
		update("mode_info_set", []interface{}{true, []interface{}{
			map[string]interface{}{"name": "normal", "cursor_shape": "block", "attr_id": int64(7)},
			map[string]interface{}{"name": "insert", "cursor_shape": "vertical", "cell_percentage": int64(25)},
		}}),
		update("mode_change", []interface{}{"insert", int64(1)}),
		update("busy_start"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o := events[0].(OptionSet); o.Option != OptionGuiFont || o.Font != "Hack:h11" {
		t.Fatalf("unexpected guifont %#v", o)
	}
	if o := events[1].(OptionSet); o.LineSpace != 3 {
		t.Fatalf("unexpected linespace %#v", o)
	}
	if o := events[2].(OptionSet); o.Option != "arabicshape" {
		t.Fatalf("unexpected option %#v", o)
	}
	modes := events[3].(ModeInfoSet)
	if len(modes.Modes) != 2 || modes.Modes[0].AttrID != 7 || modes.Modes[1].CellPercentage != 25 {
		t.Fatalf("unexpected modes %#v", modes)
	}
	if m := events[4].(ModeChange); m.Index != 1 {
		t.Fatalf("unexpected mode change %#v", m)
	}
	if b := events[5].(SetBusy); !b.Busy {
		t.Fatalf("expected busy")
	}
}

func TestDecodePopupmenuAndCmdline(t *testing.T) {
	events, err := Decode([][]interface{}{
		update("popupmenu_show", []interface{}{
			[]interface{}{[]interface{}{"foo", "v", "", "info"}, []interface{}{"bar", "f", "", ""}},
			int64(-1), int64(3), int64(4), int64(-1),
		}),
		update("cmdline_show", []interface{}{
			[]interface{}{[]interface{}{int64(0), "e "}, []interface{}{map[string]interface{}{}, "foo"}},
			int64(5), ":", "", int64(0), int64(1),
		}),
		update("tabline_update", []interface{}{
			nvim.Tabpage(1),
			[]interface{}{map[string]interface{}{"tab": nvim.Tabpage(1), "name": "a.go"}},
		}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pm := events[0].(PopupmenuShow)
	if pm.Grid != -1 || pm.Selected != -1 || len(pm.Items) != 2 || pm.Items[0].Info != "info" {
		t.Fatalf("unexpected popupmenu %#v", pm)
	}
	cl := events[1].(CmdlineShow)
	if cl.FirstChar != ":" || len(cl.Content) != 2 || cl.Content[1].Text != "foo" {
		t.Fatalf("unexpected cmdline %#v", cl)
	}
	tl := events[2].(TablineUpdate)
	if len(tl.Tabs) != 1 || tl.Tabs[0].Name != "a.go" {
		t.Fatalf("unexpected tabline %#v", tl)
	}
}

func TestDecodeExtension(t *testing.T) {
	evt, err := DecodeExtension([]interface{}{"PopupmenuWidth", int64(40)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w, ok := evt.(PopupmenuWidth); !ok || w.Width != 40 {
		t.Fatalf("unexpected event %#v", evt)
	}
	evt, err = DecodeExtension([]interface{}{"PopupmenuShowMenuOnAllItems", int64(1)})
	if err != nil || !evt.(PopupmenuShowMenuOnAllItems).Show {
		t.Fatalf("expected numeric truthy flag, got %#v (%v)", evt, err)
	}
	if _, err := DecodeExtension([]interface{}{"CursorTooltipShow", "text"}); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	evt, err = DecodeExtension([]interface{}{"Frobnicate"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := evt.(UnknownExt); !ok {
		t.Fatalf("expected UnknownExt, got %T", evt)
	}
}

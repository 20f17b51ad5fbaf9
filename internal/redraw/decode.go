package redraw

import (
	"errors"
	"fmt"

	"github.com/atomicstack/nvim-ui-mirror/internal/geom"
	"github.com/atomicstack/nvim-ui-mirror/internal/highlight"
)

// ErrMalformed wraps every decoding failure.
var ErrMalformed = errors.New("malformed redraw event")

type decodeFunc func(a *args) (Event, error)

var ignored = map[string]struct{}{
	"set_icon":          {},
	"mouse_on":          {},
	"mouse_off":         {},
	"bell":              {},
	"visual_bell":       {},
	"suspend":           {},
	"update_menu":       {},
	"chdir":             {},
	"update_fg":         {},
	"update_bg":         {},
	"update_sp":         {},
	"hl_attr_define_ex": {},
	"win_extmark":       {},
	"msg_showmode":      {},
	"msg_showcmd":       {},
	"msg_ruler":         {},
}

var decoders = map[string]decodeFunc{
	"set_title":            decodeSetTitle,
	"grid_line":            decodeGridLine,
	"grid_cursor_goto":     decodeGridCursorGoto,
	"grid_resize":          decodeGridResize,
	"grid_clear":           decodeGridClear,
	"grid_destroy":         decodeGridDestroy,
	"grid_scroll":          decodeGridScroll,
	"default_colors_set":   decodeDefaultColorsSet,
	"hl_attr_define":       decodeHlAttrDefine,
	"hl_group_set":         decodeHlGroupSet,
	"option_set":           decodeOptionSet,
	"mode_info_set":        decodeModeInfoSet,
	"mode_change":          decodeModeChange,
	"busy_start":           func(*args) (Event, error) { return SetBusy{Busy: true}, nil },
	"busy_stop":            func(*args) (Event, error) { return SetBusy{Busy: false}, nil },
	"flush":                func(*args) (Event, error) { return Flush{}, nil },
	"popupmenu_show":       decodePopupmenuShow,
	"popupmenu_hide":       func(*args) (Event, error) { return PopupmenuHide{}, nil },
	"popupmenu_select":     decodePopupmenuSelect,
	"tabline_update":       decodeTablineUpdate,
	"cmdline_show":         decodeCmdlineShow,
	"cmdline_hide":         func(*args) (Event, error) { return CmdlineHide{}, nil },
	"cmdline_pos":          decodeCmdlinePos,
	"cmdline_special_char": decodeCmdlineSpecialChar,
	"cmdline_block_show":   decodeCmdlineBlockShow,
	"cmdline_block_append": decodeCmdlineBlockAppend,
	"cmdline_block_hide":   func(*args) (Event, error) { return CmdlineBlockHide{}, nil },
	"win_pos":              decodeWindowPos,
	"win_float_pos":        decodeWindowFloatPos,
	"win_external_pos":     decodeWindowExternalPos,
	"win_hide":             decodeWindowHide,
	"win_close":            decodeWindowClose,
	"msg_set_pos":          decodeMsgSetPos,
	"win_viewport":         decodeWindowViewport,
}

// singleShot events appear once per update regardless of how many argument
// tuples the editor attached.
var singleShot = map[string]struct{}{
	"flush":              {},
	"busy_start":         {},
	"busy_stop":          {},
	"popupmenu_hide":     {},
	"cmdline_hide":       {},
	"cmdline_block_hide": {},
}

// Decode converts the arguments of a "redraw" notification into events.
// Each update is [name, tuple...]. Tuples that fail to decode are skipped
// and reported through the returned error; the remaining events are still
// returned in order.
func Decode(updates [][]interface{}) ([]Event, error) {
	events := make([]Event, 0, len(updates))
	var errs []error
	for _, update := range updates {
		if len(update) == 0 {
			errs = append(errs, fmt.Errorf("%w: empty update", ErrMalformed))
			continue
		}
		name, err := toString(update[0])
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: event name: %v", ErrMalformed, err))
			continue
		}
		if _, ok := ignored[name]; ok {
			events = append(events, Ignored{Event: name})
			continue
		}
		decode, ok := decoders[name]
		if !ok {
			events = append(events, Unknown{Event: name})
			continue
		}
		tuples := update[1:]
		if _, ok := singleShot[name]; ok {
			evt, _ := decode(newArgs([]interface{}{}))
			events = append(events, evt)
			continue
		}
		for _, tuple := range tuples {
			evt, err := decode(newArgs(tuple))
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s: %v", ErrMalformed, name, err))
				continue
			}
			events = append(events, evt)
		}
	}
	return events, errors.Join(errs...)
}

func decodeSetTitle(a *args) (Event, error) {
	evt := SetTitle{Title: a.string("title")}
	return evt, a.err
}

func decodeGridLine(a *args) (Event, error) {
	evt := GridLine{
		Grid:     a.int("grid"),
		Row:      a.int("row"),
		ColStart: a.int("col_start"),
	}
	raw := a.array("cells")
	if a.err != nil {
		return nil, a.err
	}
	evt.Cells = make([]Cell, 0, len(raw))
	hlID := 0
	for i, rc := range raw {
		ca := newArgs(rc)
		text := ca.string("text")
		if ca.has() {
			hlID = ca.int("hl_id")
		}
		repeat := 1
		if ca.has() {
			repeat = ca.int("repeat")
		}
		if ca.err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, ca.err)
		}
		evt.Cells = append(evt.Cells, Cell{Text: text, HlID: hlID, Repeat: repeat})
	}
	return evt, nil
}

func decodeGridCursorGoto(a *args) (Event, error) {
	evt := GridCursorGoto{Grid: a.int("grid"), Row: a.int("row"), Col: a.int("col")}
	return evt, a.err
}

func decodeGridResize(a *args) (Event, error) {
	evt := GridResize{Grid: a.int("grid"), Width: a.int("width"), Height: a.int("height")}
	return evt, a.err
}

func decodeGridClear(a *args) (Event, error) {
	evt := GridClear{Grid: a.int("grid")}
	return evt, a.err
}

func decodeGridDestroy(a *args) (Event, error) {
	evt := GridDestroy{Grid: a.int("grid")}
	return evt, a.err
}

func decodeGridScroll(a *args) (Event, error) {
	evt := GridScroll{Grid: a.int("grid")}
	evt.Region.Top = a.int("top")
	evt.Region.Bot = a.int("bot")
	evt.Region.Left = a.int("left")
	evt.Region.Right = a.int("right")
	evt.Rows = a.int("rows")
	evt.Cols = a.int("cols")
	return evt, a.err
}

// colorOr returns the packed colour or fallback when the editor reports
// it as unset (-1).
func colorOr(v int64, fallback highlight.Color) highlight.Color {
	if v < 0 {
		return fallback
	}
	return highlight.FromRGB(v)
}

func decodeDefaultColorsSet(a *args) (Event, error) {
	fg := a.int64("rgb_fg")
	bg := a.int64("rgb_bg")
	sp := a.int64("rgb_sp")
	if a.err != nil {
		return nil, a.err
	}
	return DefaultColorsSet{
		Fg: colorOr(fg, highlight.Black),
		Bg: colorOr(bg, highlight.White),
		Sp: colorOr(sp, highlight.Red),
	}, nil
}

func decodeHlAttrDefine(a *args) (Event, error) {
	id := a.int("id")
	raw := a.raw("rgb_attrs")
	if a.err != nil {
		return nil, a.err
	}
	attrs, err := toMap(raw)
	if err != nil {
		return nil, fmt.Errorf("rgb_attrs: %w", err)
	}
	hl, err := decodeHighlight(attrs)
	if err != nil {
		return nil, err
	}
	return HlAttrDefine{ID: id, Hl: hl}, nil
}

func decodeHighlight(attrs map[string]interface{}) (highlight.Highlight, error) {
	var hl highlight.Highlight
	for key, v := range attrs {
		switch key {
		case "foreground", "background", "special":
			n, err := toInt64(v)
			if err != nil {
				return hl, fmt.Errorf("%s: %w", key, err)
			}
			c := highlight.FromRGB(n)
			switch key {
			case "foreground":
				hl.Foreground = &c
			case "background":
				hl.Background = &c
			default:
				hl.Special = &c
			}
		case "reverse", "italic", "bold", "underline", "undercurl", "strikethrough":
			b, err := toBool(v)
			if err != nil {
				return hl, fmt.Errorf("%s: %w", key, err)
			}
			switch key {
			case "reverse":
				hl.Reverse = b
			case "italic":
				hl.Italic = b
			case "bold":
				hl.Bold = b
			case "underline":
				hl.Underline = b
			case "undercurl":
				hl.Undercurl = b
			default:
				hl.Strikethrough = b
			}
		case "blend":
			n, err := toInt(v)
			if err != nil {
				return hl, fmt.Errorf("blend: %w", err)
			}
			hl.Blend = n
		}
	}
	return hl, nil
}

func decodeHlGroupSet(a *args) (Event, error) {
	evt := HlGroupSet{Group: a.string("name"), HlID: a.int("hl_id")}
	return evt, a.err
}

func decodeOptionSet(a *args) (Event, error) {
	name := a.string("name")
	if a.err != nil {
		return nil, a.err
	}
	evt := OptionSet{Option: name}
	switch name {
	case OptionGuiFont:
		evt.Font = a.string("value")
	case OptionLineSpace:
		evt.LineSpace = a.int("value")
	}
	return evt, a.err
}

func decodeModeInfoSet(a *args) (Event, error) {
	evt := ModeInfoSet{CursorStyleEnabled: a.bool("cursor_style_enabled")}
	raw := a.array("mode_info")
	if a.err != nil {
		return nil, a.err
	}
	for i, rm := range raw {
		m, err := toMap(rm)
		if err != nil {
			return nil, fmt.Errorf("mode %d: %w", i, err)
		}
		evt.Modes = append(evt.Modes, decodeModeInfo(m))
	}
	return evt, nil
}

func decodeModeInfo(m map[string]interface{}) ModeInfo {
	var info ModeInfo
	str := func(key string) string {
		s, _ := toString(m[key])
		return s
	}
	num := func(key string) int {
		n, _ := toInt(m[key])
		return n
	}
	info.Name = str("name")
	info.ShortName = str("short_name")
	info.CursorShape = str("cursor_shape")
	info.CellPercentage = num("cell_percentage")
	info.BlinkWait = num("blinkwait")
	info.BlinkOn = num("blinkon")
	info.BlinkOff = num("blinkoff")
	info.AttrID = num("attr_id")
	return info
}

func decodeModeChange(a *args) (Event, error) {
	evt := ModeChange{Mode: a.string("mode"), Index: a.int("mode_idx")}
	return evt, a.err
}

func decodePopupmenuShow(a *args) (Event, error) {
	raw := a.array("items")
	evt := PopupmenuShow{
		Selected: a.int("selected"),
		Row:      a.int("row"),
		Col:      a.int("col"),
		Grid:     a.int("grid"),
	}
	if a.err != nil {
		return nil, a.err
	}
	for i, ri := range raw {
		ia := newArgs(ri)
		item := PopupmenuItem{
			Word: ia.string("word"),
			Kind: ia.string("kind"),
			Menu: ia.string("menu"),
			Info: ia.string("info"),
		}
		if ia.err != nil {
			return nil, fmt.Errorf("item %d: %w", i, ia.err)
		}
		evt.Items = append(evt.Items, item)
	}
	return evt, nil
}

func decodePopupmenuSelect(a *args) (Event, error) {
	evt := PopupmenuSelect{Selected: a.int("selected")}
	return evt, a.err
}

func decodeTablineUpdate(a *args) (Event, error) {
	evt := TablineUpdate{Current: a.tabpage("curtab")}
	raw := a.array("tabs")
	if a.err != nil {
		return nil, a.err
	}
	for i, rt := range raw {
		m, err := toMap(rt)
		if err != nil {
			return nil, fmt.Errorf("tab %d: %w", i, err)
		}
		tab, err := toTabpage(m["tab"])
		if err != nil {
			return nil, fmt.Errorf("tab %d: %w", i, err)
		}
		name, _ := toString(m["name"])
		evt.Tabs = append(evt.Tabs, Tab{Tab: tab, Name: name})
	}
	return evt, nil
}

func decodeChunks(raw []interface{}) ([]Chunk, error) {
	chunks := make([]Chunk, 0, len(raw))
	for i, rc := range raw {
		ca := newArgs(rc)
		attr := ca.raw("attr")
		text := ca.string("text")
		if ca.err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, ca.err)
		}
		// Older editors send an attribute map instead of an id.
		hlID, _ := toInt(attr)
		chunks = append(chunks, Chunk{HlID: hlID, Text: text})
	}
	return chunks, nil
}

func decodeCmdlineShow(a *args) (Event, error) {
	raw := a.array("content")
	evt := CmdlineShow{
		Pos:       a.int("pos"),
		FirstChar: a.string("firstc"),
		Prompt:    a.string("prompt"),
		Indent:    a.int("indent"),
		Level:     a.int("level"),
	}
	if a.err != nil {
		return nil, a.err
	}
	content, err := decodeChunks(raw)
	if err != nil {
		return nil, err
	}
	evt.Content = content
	return evt, nil
}

func decodeCmdlinePos(a *args) (Event, error) {
	evt := CmdlinePos{Pos: a.int("pos"), Level: a.int("level")}
	return evt, a.err
}

func decodeCmdlineSpecialChar(a *args) (Event, error) {
	evt := CmdlineSpecialChar{Char: a.string("c"), Shift: a.bool("shift"), Level: a.int("level")}
	return evt, a.err
}

func decodeCmdlineBlockShow(a *args) (Event, error) {
	raw := a.array("lines")
	if a.err != nil {
		return nil, a.err
	}
	var evt CmdlineBlockShow
	for i, rl := range raw {
		line, err := toArray(rl)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		chunks, err := decodeChunks(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		evt.Lines = append(evt.Lines, chunks)
	}
	return evt, nil
}

func decodeCmdlineBlockAppend(a *args) (Event, error) {
	raw := a.array("line")
	if a.err != nil {
		return nil, a.err
	}
	chunks, err := decodeChunks(raw)
	if err != nil {
		return nil, err
	}
	return CmdlineBlockAppend{Line: chunks}, nil
}

func decodeWindowPos(a *args) (Event, error) {
	evt := WindowPos{
		Grid:     a.int("grid"),
		Win:      a.window("win"),
		StartRow: a.int("startrow"),
		StartCol: a.int("startcol"),
		Width:    a.int("width"),
		Height:   a.int("height"),
	}
	return evt, a.err
}

func decodeWindowFloatPos(a *args) (Event, error) {
	evt := WindowFloatPos{
		Grid: a.int("grid"),
		Win:  a.window("win"),
	}
	anchor := a.string("anchor")
	evt.AnchorGrid = a.int("anchor_grid")
	evt.AnchorRow = a.float("anchor_row")
	evt.AnchorCol = a.float("anchor_col")
	if a.has() {
		evt.Focusable = a.bool("focusable")
	}
	if a.err != nil {
		return nil, a.err
	}
	parsed, ok := geom.ParseAnchor(anchor)
	if !ok {
		return nil, fmt.Errorf("unknown anchor %q", anchor)
	}
	evt.Anchor = parsed
	return evt, nil
}

func decodeWindowExternalPos(a *args) (Event, error) {
	evt := WindowExternalPos{Grid: a.int("grid"), Win: a.window("win")}
	return evt, a.err
}

func decodeWindowHide(a *args) (Event, error) {
	evt := WindowHide{Grid: a.int("grid")}
	return evt, a.err
}

func decodeWindowClose(a *args) (Event, error) {
	evt := WindowClose{Grid: a.int("grid")}
	return evt, a.err
}

func decodeMsgSetPos(a *args) (Event, error) {
	evt := MsgSetPos{Grid: a.int("grid"), Row: a.int("row"), Scrolled: a.bool("scrolled")}
	if a.has() {
		evt.SepChar = a.string("sep_char")
	}
	return evt, a.err
}

func decodeWindowViewport(a *args) (Event, error) {
	evt := WindowViewport{
		Grid:      a.int("grid"),
		Win:       a.window("win"),
		TopLine:   a.int("topline"),
		BotLine:   a.int("botline"),
		CurLine:   a.int("curline"),
		CurCol:    a.int("curcol"),
		LineCount: a.int("line_count"),
	}
	return evt, a.err
}

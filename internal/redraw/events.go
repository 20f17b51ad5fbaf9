// Package redraw defines the typed UI protocol events the engine consumes.
// Every event is a distinct struct implementing the sealed Event
// interface, so consumers switch over a closed set of cases.
package redraw

import (
	"github.com/atomicstack/nvim-ui-mirror/internal/geom"
	"github.com/atomicstack/nvim-ui-mirror/internal/highlight"
	"github.com/neovim/go-client/nvim"
)

// Event is one redraw sub-event.
type Event interface {
	redrawEvent()
	Name() string
}

// Notification is one message from the editor: either a batch of redraw
// events or an extension event.
type Notification interface {
	notification()
}

// Batch is a redraw notification. Events are applied in order.
type Batch struct {
	Events []Event
}

// Extension carries one decoded extension event, or the error that
// prevented decoding it.
type Extension struct {
	Event ExtEvent
	Err   error
}

func (Batch) notification()     {}
func (Extension) notification() {}

// Cell is one grid_line cell. HlID is already carried forward from the
// previous cell when the protocol omitted it.
type Cell struct {
	Text   string
	HlID   int
	Repeat int
}

// Chunk is a highlighted run of text used by the cmdline events.
type Chunk struct {
	HlID int
	Text string
}

// Region is a grid_scroll region; Bot and Right are exclusive.
type Region struct {
	Top   int
	Bot   int
	Left  int
	Right int
}

// ModeInfo is one mode_info_set entry.
type ModeInfo struct {
	Name           string
	ShortName      string
	CursorShape    string
	CellPercentage int
	BlinkWait      int
	BlinkOn        int
	BlinkOff       int
	AttrID         int
}

// PopupmenuItem is one completion candidate.
type PopupmenuItem struct {
	Word string
	Kind string
	Menu string
	Info string
}

// Tab is one tabline entry.
type Tab struct {
	Tab  nvim.Tabpage
	Name string
}

const (
	OptionGuiFont   = "guifont"
	OptionLineSpace = "linespace"
)

type (
	SetTitle struct {
		Title string
	}
	GridLine struct {
		Grid     int
		Row      int
		ColStart int
		Cells    []Cell
	}
	GridCursorGoto struct {
		Grid int
		Row  int
		Col  int
	}
	GridResize struct {
		Grid   int
		Width  int
		Height int
	}
	GridClear struct {
		Grid int
	}
	GridDestroy struct {
		Grid int
	}
	GridScroll struct {
		Grid   int
		Region Region
		Rows   int
		Cols   int
	}
	DefaultColorsSet struct {
		Fg highlight.Color
		Bg highlight.Color
		Sp highlight.Color
	}
	HlAttrDefine struct {
		ID int
		Hl highlight.Highlight
	}
	HlGroupSet struct {
		Group string
		HlID  int
	}
	// OptionSet carries one option_set entry. Font is set for guifont,
	// LineSpace for linespace; other names are unsupported.
	OptionSet struct {
		Option    string
		Font      string
		LineSpace int
	}
	ModeInfoSet struct {
		CursorStyleEnabled bool
		Modes              []ModeInfo
	}
	ModeChange struct {
		Mode  string
		Index int
	}
	SetBusy struct {
		Busy bool
	}
	Flush struct{}
	// PopupmenuShow with Grid == -1 is the cmdline wildmenu.
	PopupmenuShow struct {
		Items    []PopupmenuItem
		Selected int
		Row      int
		Col      int
		Grid     int
	}
	PopupmenuHide   struct{}
	PopupmenuSelect struct {
		Selected int
	}
	TablineUpdate struct {
		Current nvim.Tabpage
		Tabs    []Tab
	}
	CmdlineShow struct {
		Content   []Chunk
		Pos       int
		FirstChar string
		Prompt    string
		Indent    int
		Level     int
	}
	CmdlineHide struct{}
	CmdlinePos  struct {
		Pos   int
		Level int
	}
	CmdlineSpecialChar struct {
		Char  string
		Shift bool
		Level int
	}
	CmdlineBlockShow struct {
		Lines [][]Chunk
	}
	CmdlineBlockAppend struct {
		Line []Chunk
	}
	CmdlineBlockHide struct{}
	WindowPos        struct {
		Grid     int
		Win      nvim.Window
		StartRow int
		StartCol int
		Width    int
		Height   int
	}
	WindowFloatPos struct {
		Grid       int
		Win        nvim.Window
		Anchor     geom.Anchor
		AnchorGrid int
		AnchorRow  float64
		AnchorCol  float64
		Focusable  bool
	}
	WindowExternalPos struct {
		Grid int
		Win  nvim.Window
	}
	WindowHide struct {
		Grid int
	}
	WindowClose struct {
		Grid int
	}
	MsgSetPos struct {
		Grid     int
		Row      int
		Scrolled bool
		SepChar  string
	}
	WindowViewport struct {
		Grid      int
		Win       nvim.Window
		TopLine   int
		BotLine   int
		CurLine   int
		CurCol    int
		LineCount int
	}
	// Ignored is a known event the engine deliberately does not handle.
	Ignored struct {
		Event string
	}
	// Unknown is an event name the decoder does not recognise.
	Unknown struct {
		Event string
	}
)

func (SetTitle) redrawEvent()           {}
func (GridLine) redrawEvent()           {}
func (GridCursorGoto) redrawEvent()     {}
func (GridResize) redrawEvent()         {}
func (GridClear) redrawEvent()          {}
func (GridDestroy) redrawEvent()        {}
func (GridScroll) redrawEvent()         {}
func (DefaultColorsSet) redrawEvent()   {}
func (HlAttrDefine) redrawEvent()       {}
func (HlGroupSet) redrawEvent()         {}
func (OptionSet) redrawEvent()          {}
func (ModeInfoSet) redrawEvent()        {}
func (ModeChange) redrawEvent()         {}
func (SetBusy) redrawEvent()            {}
func (Flush) redrawEvent()              {}
func (PopupmenuShow) redrawEvent()      {}
func (PopupmenuHide) redrawEvent()      {}
func (PopupmenuSelect) redrawEvent()    {}
func (TablineUpdate) redrawEvent()      {}
func (CmdlineShow) redrawEvent()        {}
func (CmdlineHide) redrawEvent()        {}
func (CmdlinePos) redrawEvent()         {}
func (CmdlineSpecialChar) redrawEvent() {}
func (CmdlineBlockShow) redrawEvent()   {}
func (CmdlineBlockAppend) redrawEvent() {}
func (CmdlineBlockHide) redrawEvent()   {}
func (WindowPos) redrawEvent()          {}
func (WindowFloatPos) redrawEvent()     {}
func (WindowExternalPos) redrawEvent()  {}
func (WindowHide) redrawEvent()         {}
func (WindowClose) redrawEvent()        {}
func (MsgSetPos) redrawEvent()          {}
func (WindowViewport) redrawEvent()     {}
func (Ignored) redrawEvent()            {}
func (Unknown) redrawEvent()            {}

func (SetTitle) Name() string           { return "set_title" }
func (GridLine) Name() string           { return "grid_line" }
func (GridCursorGoto) Name() string     { return "grid_cursor_goto" }
func (GridResize) Name() string         { return "grid_resize" }
func (GridClear) Name() string          { return "grid_clear" }
func (GridDestroy) Name() string        { return "grid_destroy" }
func (GridScroll) Name() string         { return "grid_scroll" }
func (DefaultColorsSet) Name() string   { return "default_colors_set" }
func (HlAttrDefine) Name() string       { return "hl_attr_define" }
func (HlGroupSet) Name() string         { return "hl_group_set" }
func (OptionSet) Name() string          { return "option_set" }
func (ModeInfoSet) Name() string        { return "mode_info_set" }
func (ModeChange) Name() string         { return "mode_change" }
func (SetBusy) Name() string            { return "busy" }
func (Flush) Name() string              { return "flush" }
func (PopupmenuShow) Name() string      { return "popupmenu_show" }
func (PopupmenuHide) Name() string      { return "popupmenu_hide" }
func (PopupmenuSelect) Name() string    { return "popupmenu_select" }
func (TablineUpdate) Name() string      { return "tabline_update" }
func (CmdlineShow) Name() string        { return "cmdline_show" }
func (CmdlineHide) Name() string        { return "cmdline_hide" }
func (CmdlinePos) Name() string         { return "cmdline_pos" }
func (CmdlineSpecialChar) Name() string { return "cmdline_special_char" }
func (CmdlineBlockShow) Name() string   { return "cmdline_block_show" }
func (CmdlineBlockAppend) Name() string { return "cmdline_block_append" }
func (CmdlineBlockHide) Name() string   { return "cmdline_block_hide" }
func (WindowPos) Name() string          { return "win_pos" }
func (WindowFloatPos) Name() string     { return "win_float_pos" }
func (WindowExternalPos) Name() string  { return "win_external_pos" }
func (WindowHide) Name() string         { return "win_hide" }
func (WindowClose) Name() string        { return "win_close" }
func (MsgSetPos) Name() string          { return "msg_set_pos" }
func (WindowViewport) Name() string     { return "win_viewport" }
func (e Ignored) Name() string          { return e.Event }
func (e Unknown) Name() string          { return e.Event }

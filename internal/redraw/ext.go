package redraw

import "fmt"

// ExtEvent is one event on the extension notification channel.
type ExtEvent interface {
	extEvent()
}

type (
	CompletionMenuToggleInfo struct{}
	PopupmenuWidth           struct {
		Width int
	}
	PopupmenuWidthDetails struct {
		Width int
	}
	PopupmenuShowMenuOnAllItems struct {
		Show bool
	}
	CursorTooltipShow struct {
		Content string
		Row     int
		Col     int
	}
	CursorTooltipHide     struct{}
	CursorTooltipSetStyle struct {
		Style string
	}
	CursorTooltipLoadStyle struct {
		Path string
	}
	UnknownExt struct {
		Event string
	}
)

func (CompletionMenuToggleInfo) extEvent()    {}
func (PopupmenuWidth) extEvent()              {}
func (PopupmenuWidthDetails) extEvent()       {}
func (PopupmenuShowMenuOnAllItems) extEvent() {}
func (CursorTooltipShow) extEvent()           {}
func (CursorTooltipHide) extEvent()           {}
func (CursorTooltipSetStyle) extEvent()       {}
func (CursorTooltipLoadStyle) extEvent()      {}
func (UnknownExt) extEvent()                  {}

// DecodeExtension converts the arguments of an extension notification,
// [name, params...], into an ExtEvent. Unknown names decode to UnknownExt.
func DecodeExtension(params []interface{}) (ExtEvent, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("%w: missing extension event name", ErrMalformed)
	}
	name, err := toString(params[0])
	if err != nil {
		return nil, fmt.Errorf("%w: extension event name: %v", ErrMalformed, err)
	}
	a := &args{vals: params[1:]}
	var evt ExtEvent
	switch name {
	case "CompletionMenuToggleInfo":
		evt = CompletionMenuToggleInfo{}
	case "PopupmenuWidth":
		evt = PopupmenuWidth{Width: a.int("width")}
	case "PopupmenuWidthDetails":
		evt = PopupmenuWidthDetails{Width: a.int("width")}
	case "PopupmenuShowMenuOnAllItems":
		evt = PopupmenuShowMenuOnAllItems{Show: a.truthy("show")}
	case "CursorTooltipShow":
		evt = CursorTooltipShow{Content: a.string("content"), Row: a.int("row"), Col: a.int("col")}
	case "CursorTooltipHide":
		evt = CursorTooltipHide{}
	case "CursorTooltipSetStyle":
		evt = CursorTooltipSetStyle{Style: a.string("style")}
	case "CursorTooltipLoadStyle":
		evt = CursorTooltipLoadStyle{Path: a.string("path")}
	default:
		evt = UnknownExt{Event: name}
	}
	if a.err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, name, a.err)
	}
	return evt, nil
}

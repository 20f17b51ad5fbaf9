package events

import "github.com/atomicstack/nvim-ui-mirror/internal/logging"

type PopupmenuTracer struct{}

var Popupmenu = PopupmenuTracer{}

func (PopupmenuTracer) Show(items, selected int, wildmenu bool) {
	logging.Trace("popupmenu.show", map[string]interface{}{"items": items, "selected": selected, "wildmenu": wildmenu})
}

func (PopupmenuTracer) Hide(wildmenu bool) {
	logging.Trace("popupmenu.hide", map[string]interface{}{"wildmenu": wildmenu})
}

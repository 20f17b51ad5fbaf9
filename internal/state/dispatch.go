package state

import (
	"errors"
	"fmt"

	"github.com/atomicstack/nvim-ui-mirror/internal/logging"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
)

// HandleNotification applies one notification. Redraw events are applied
// in order; an event that fails is logged and skipped, and the errors of
// all failed events are returned joined.
func (s *UIState) HandleNotification(n redraw.Notification) error {
	switch n := n.(type) {
	case redraw.Batch:
		var errs []error
		for _, evt := range n.Events {
			if err := s.handleEvent(evt); err != nil {
				err = fmt.Errorf("%s: %w", evt.Name(), err)
				logging.Warnf("%v", err)
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	case redraw.Extension:
		return s.handleExtension(n)
	default:
		return fmt.Errorf("%w: %T", ErrUnhandledEvent, n)
	}
}

func (s *UIState) handleEvent(evt redraw.Event) error {
	switch e := evt.(type) {
	case redraw.SetTitle:
		s.setTitle(e)
	case redraw.GridLine:
		return s.gridLine(e)
	case redraw.GridCursorGoto:
		return s.gridCursorGoto(e)
	case redraw.GridResize:
		s.gridResize(e)
	case redraw.GridClear:
		return s.gridClear(e)
	case redraw.GridDestroy:
		s.gridDestroy(e)
	case redraw.GridScroll:
		return s.gridScroll(e)
	case redraw.DefaultColorsSet:
		s.defaultColorsSet(e)
	case redraw.HlAttrDefine:
		s.hlAttrDefine(e)
	case redraw.HlGroupSet:
		s.hlGroupSet(e)
	case redraw.OptionSet:
		s.optionSet(e)
	case redraw.ModeInfoSet:
		s.modes = e.Modes
	case redraw.ModeChange:
		return s.modeChange(e)
	case redraw.SetBusy:
		s.setBusy(e.Busy)
	case redraw.Flush:
		s.flush()
	case redraw.PopupmenuShow:
		return s.popupmenuShow(e)
	case redraw.PopupmenuHide:
		s.popupmenuHide()
	case redraw.PopupmenuSelect:
		s.popupmenuSelect(e.Selected)
	case redraw.TablineUpdate:
		s.tabline.Update(e.Current, e.Tabs)
	case redraw.CmdlineShow:
		s.cmdline.Show(e)
	case redraw.CmdlineHide:
		s.cmdline.Hide()
	case redraw.CmdlinePos:
		s.cmdline.SetPos(e.Pos, e.Level)
	case redraw.CmdlineSpecialChar:
		s.cmdline.SpecialChar(e.Char, e.Shift, e.Level)
	case redraw.CmdlineBlockShow:
		s.cmdline.BlockShow(e.Lines)
	case redraw.CmdlineBlockAppend:
		s.cmdline.BlockAppend(e.Line)
	case redraw.CmdlineBlockHide:
		s.cmdline.BlockHide()
	case redraw.WindowPos:
		return s.windowPos(e)
	case redraw.WindowFloatPos:
		return s.windowFloatPos(e)
	case redraw.WindowExternalPos:
		return s.windowExternalPos(e)
	case redraw.WindowHide:
		return s.windowHide(e)
	case redraw.WindowClose:
		s.windowClose(e)
	case redraw.MsgSetPos:
		return s.msgSetPos(e)
	case redraw.WindowViewport:
		return s.windowViewport(e)
	case redraw.Ignored:
	case redraw.Unknown:
		logging.Debugf("unknown redraw event %q", e.Event)
	default:
		return fmt.Errorf("%w: %T", ErrUnhandledEvent, evt)
	}
	return nil
}

func (s *UIState) setTitle(e redraw.SetTitle) {
	s.Title = e.Title
	s.shell.SetTitle(e.Title)
}

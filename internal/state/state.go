// Package state holds UIState, the owner of every grid, window and
// auxiliary surface. It applies redraw notifications in order and
// performs the deferred work at each flush.
//
// A UIState is not safe for concurrent use; one goroutine owns it and
// everything it talks to outside the process goes through a command.Bus.
package state

import (
	"errors"
	"time"

	"github.com/atomicstack/nvim-ui-mirror/internal/cmdline"
	"github.com/atomicstack/nvim-ui-mirror/internal/command"
	"github.com/atomicstack/nvim-ui-mirror/internal/font"
	"github.com/atomicstack/nvim-ui-mirror/internal/grid"
	"github.com/atomicstack/nvim-ui-mirror/internal/highlight"
	"github.com/atomicstack/nvim-ui-mirror/internal/popupmenu"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
	"github.com/atomicstack/nvim-ui-mirror/internal/surface"
	"github.com/atomicstack/nvim-ui-mirror/internal/tabline"
	"github.com/atomicstack/nvim-ui-mirror/internal/theme"
	"github.com/atomicstack/nvim-ui-mirror/internal/tooltip"
	"github.com/atomicstack/nvim-ui-mirror/internal/window"
)

var (
	ErrUnknownWindow  = errors.New("unknown window")
	ErrModeIndex      = errors.New("mode index out of range")
	ErrUnhandledEvent = errors.New("unhandled event")
)

// PrimaryGrid is the id of the grid that always exists.
const PrimaryGrid = 1

const defaultResizeDelay = 50 * time.Millisecond

// Shell is the top-level surface of the host application.
type Shell interface {
	SetTitle(title string)
	LoadStyleSheet(css string)
}

// Options configures New.
type Options struct {
	Host     window.Host
	Shell    Shell
	Bus      *command.Bus
	Measurer font.Measurer

	// Canvas, when set, supplies the paint target for each new grid.
	Canvas func(grid int) grid.Canvas

	Font      font.Font
	LineSpace int
	Cols      int
	Rows      int

	// ResizeDelay is how long a surface size change waits before the
	// editor is asked to resize.
	ResizeDelay time.Duration
}

type pendingResize struct {
	font      font.Font
	lineSpace int
}

// UIState is the reconstructed editor UI.
type UIState struct {
	Title string

	host     window.Host
	shell    Shell
	bus      *command.Bus
	measurer font.Measurer
	canvas   func(int) grid.Canvas

	font      font.Font
	lineSpace int

	hl      *highlight.Table
	grids   *gridStore
	windows *windowStore

	docked    *window.Container
	floating  *window.Container
	messages  *window.Container
	msgWindow *window.MsgWindow

	popupmenu *popupmenu.Popupmenu
	cmdline   *cmdline.Cmdline
	tabline   *tabline.Tabline
	tooltip   *tooltip.Tooltip

	modes       []redraw.ModeInfo
	currentMode *redraw.ModeInfo
	currentGrid int

	wildmenuShown bool
	pending       *pendingResize
	hlChanged     bool

	resizeTimer *command.Timer
	resizeDelay time.Duration
}

// New builds a UIState holding the primary grid at the configured size.
func New(opts Options) *UIState {
	if opts.Host == nil {
		headless := surface.New()
		opts.Host = headless
		if opts.Shell == nil {
			opts.Shell = headless
		}
	}
	if opts.Shell == nil {
		opts.Shell = surface.New()
	}
	if opts.Measurer == nil {
		opts.Measurer = font.Terminal{}
	}
	if opts.Bus == nil {
		opts.Bus = command.NewBus(0)
	}
	if opts.Font.Family == "" {
		opts.Font = font.Default()
	}
	if opts.ResizeDelay <= 0 {
		opts.ResizeDelay = defaultResizeDelay
	}

	s := &UIState{
		host:        opts.Host,
		shell:       opts.Shell,
		bus:         opts.Bus,
		measurer:    opts.Measurer,
		canvas:      opts.Canvas,
		font:        opts.Font,
		lineSpace:   opts.LineSpace,
		hl:          highlight.NewTable(),
		grids:       newGridStore(),
		windows:     newWindowStore(),
		docked:      window.NewContainer(theme.WindowsName, window.KindDocked),
		floating:    window.NewContainer(theme.FloatWindowsName, window.KindFloating),
		messages:    window.NewContainer(theme.MessageWindowsName, window.KindMessage),
		popupmenu:   popupmenu.New(opts.Measurer, opts.Font, opts.LineSpace),
		cmdline:     cmdline.New(opts.Font, opts.LineSpace),
		tabline:     tabline.New(opts.Font, opts.LineSpace),
		tooltip:     tooltip.New(opts.Font),
		currentGrid: PrimaryGrid,
		resizeDelay: opts.ResizeDelay,
	}
	s.msgWindow = window.NewMsgWindow(opts.Host, s.messages)

	primary := s.newGrid(PrimaryGrid, opts.Cols, opts.Rows)
	primary.SetActive(true)
	s.updateBounds()
	return s
}

func (s *UIState) newGrid(id, cols, rows int) *grid.Grid {
	g := grid.New(id, s.measurer, s.font, s.lineSpace, cols, rows)
	if s.currentMode != nil {
		g.SetMode(*s.currentMode)
	}
	if s.canvas != nil {
		g.SetCanvas(s.canvas(id))
	}
	s.grids.put(g)
	return g
}

// Grid returns the grid with id.
func (s *UIState) Grid(id int) (*grid.Grid, bool) {
	return s.grids.get(id)
}

// GridIDs returns the ids of all grids in ascending order.
func (s *UIState) GridIDs() []int {
	return s.grids.ids()
}

// Window returns the window hosting grid.
func (s *UIState) Window(grid int) (*window.Window, bool) {
	return s.windows.get(grid)
}

// WindowIDs returns the grid ids of all windows in ascending order.
func (s *UIState) WindowIDs() []int {
	return s.windows.ids()
}

func (s *UIState) CurrentGrid() int {
	return s.currentGrid
}

func (s *UIState) Highlights() *highlight.Table {
	return s.hl
}

func (s *UIState) Popupmenu() *popupmenu.Popupmenu {
	return s.popupmenu
}

func (s *UIState) Cmdline() *cmdline.Cmdline {
	return s.cmdline
}

func (s *UIState) Tabline() *tabline.Tabline {
	return s.tabline
}

func (s *UIState) Tooltip() *tooltip.Tooltip {
	return s.tooltip
}

func (s *UIState) MsgWindow() *window.MsgWindow {
	return s.msgWindow
}

// WildmenuShown reports whether the popup menu events currently drive
// the cmdline wildmenu.
func (s *UIState) WildmenuShown() bool {
	return s.wildmenuShown
}

// Mode returns the current mode, if one was selected.
func (s *UIState) Mode() (redraw.ModeInfo, bool) {
	if s.currentMode == nil {
		return redraw.ModeInfo{}, false
	}
	return *s.currentMode, true
}

// HighlightsDirty reports whether a theme regeneration is due at the
// next flush.
func (s *UIState) HighlightsDirty() bool {
	return s.hlChanged
}

// PendingResize returns the font and line space waiting for the next
// flush.
func (s *UIState) PendingResize() (font.Font, int, bool) {
	if s.pending == nil {
		return font.Font{}, 0, false
	}
	return s.pending.font, s.pending.lineSpace, true
}

// Font returns the font and line space last set by the editor.
func (s *UIState) Font() (font.Font, int) {
	return s.font, s.lineSpace
}

// DelayedResizePending reports whether a surface resize is still
// waiting to be sent.
func (s *UIState) DelayedResizePending() bool {
	return s.resizeTimer.Pending()
}

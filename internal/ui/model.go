package ui

import (
	"reflect"

	"github.com/atomicstack/nvim-ui-mirror/internal/backend"
	"github.com/atomicstack/nvim-ui-mirror/internal/data/dispatcher"
	"github.com/atomicstack/nvim-ui-mirror/internal/state"
	"github.com/atomicstack/nvim-ui-mirror/internal/theme"
	uistate "github.com/atomicstack/nvim-ui-mirror/internal/ui/state"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the inspector.
type Model struct {
	state      *state.UIState
	events     <-chan backend.Event
	dispatcher *dispatcher.Dispatcher

	width     int
	height    int
	fixedSize bool

	keys       keyMap
	body       viewport.Model
	filter     textinput.Model
	filtering  bool
	highlights *uistate.List
	showHl     bool

	frames     int
	errMsg     string
	backendErr error
	exited     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel creates an inspector for s fed from events. width and height
// are the terminal size; when fixedSize is set the editor keeps the size
// it was attached with and terminal resizes only affect the layout.
func NewModel(s *state.UIState, events <-chan backend.Event, width, height int, fixedSize bool) *Model {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "highlight id, colour or attribute"
	filter.CharLimit = 64
	if styles.FilterPrompt != nil {
		filter.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		filter.TextStyle = *styles.Filter
	}
	if styles.FilterPlaceholder != nil {
		filter.PlaceholderStyle = *styles.FilterPlaceholder
	}

	m := &Model{
		state:      s,
		events:     events,
		dispatcher: dispatcher.New(s),
		width:      width,
		height:     height,
		fixedSize:  fixedSize,
		keys:       defaultKeyMap(),
		body:       viewport.New(width, 0),
		filter:     filter,
		highlights: uistate.NewList("highlights", "Highlights", nil),
	}
	m.layout()
	m.refresh()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return waitForBackendEvent(m.events)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// State exposes the UI state the model drives.
func (m *Model) State() *state.UIState {
	return m.state
}

// Frames returns how many flushed frames the model has shown.
func (m *Model) Frames() int {
	return m.frames
}

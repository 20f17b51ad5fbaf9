package backend

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/atomicstack/nvim-ui-mirror/internal/logging"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
	"github.com/neovim/go-client/nvim"
)

// ExtensionMethod is the notification name the editor-side plugin uses
// for GUI extension events.
const ExtensionMethod = "GuiExt"

// Kind represents the type of data emitted by a session.
type Kind int

const (
	KindRedraw Kind = iota
	KindExtension
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindRedraw:
		return "redraw"
	case KindExtension:
		return "extension"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Event conveys one decoded notification, or the error that ended the
// session.
type Event struct {
	Kind Kind
	Data redraw.Notification
	Err  error
}

// Options configures Start.
type Options struct {
	Path string
	Args []string
	Env  []string
	Cols int
	Rows int
}

// UIOptions are the UI extensions requested on attach.
func UIOptions() map[string]interface{} {
	return map[string]interface{}{
		"rgb":            true,
		"ext_linegrid":   true,
		"ext_multigrid":  true,
		"ext_popupmenu":  true,
		"ext_cmdline":    true,
		"ext_tabline":    true,
		"ext_hlstate":    false,
		"ext_termcolors": false,
	}
}

// Session runs an embedded editor and publishes its notifications.
type Session struct {
	client *nvim.Nvim

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	events chan Event
	wg     sync.WaitGroup
}

// Start spawns the editor with --embed, attaches a UI of opts.Cols x
// opts.Rows and starts serving notifications.
func Start(parent context.Context, opts Options) (*Session, error) {
	if opts.Path == "" {
		opts.Path = "nvim"
	}
	ctx, cancel := context.WithCancel(parent)

	args := append([]string{"--embed"}, opts.Args...)
	client, err := nvim.NewChildProcess(
		nvim.ChildProcessCommand(opts.Path),
		nvim.ChildProcessArgs(args...),
		nvim.ChildProcessEnv(opts.Env),
		nvim.ChildProcessContext(ctx),
		nvim.ChildProcessServe(false),
		nvim.ChildProcessLogf(logging.Debugf),
	)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("start %s: %w", opts.Path, err)
	}

	s := newSession(ctx, cancel, client)
	if err := s.register(); err != nil {
		s.shutdown()
		return nil, err
	}

	s.wg.Add(1)
	go s.serve()

	if err := client.AttachUI(opts.Cols, opts.Rows, UIOptions()); err != nil {
		s.shutdown()
		return nil, fmt.Errorf("attach ui: %w", err)
	}
	return s, nil
}

func newSession(ctx context.Context, cancel context.CancelFunc, client *nvim.Nvim) *Session {
	return &Session{
		client: client,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 64),
	}
}

func (s *Session) register() error {
	if err := s.client.RegisterHandler("redraw", s.handleRedraw); err != nil {
		return fmt.Errorf("register redraw handler: %w", err)
	}
	if err := s.client.RegisterHandler(ExtensionMethod, s.handleExtension); err != nil {
		return fmt.Errorf("register %s handler: %w", ExtensionMethod, err)
	}
	return nil
}

func (s *Session) handleRedraw(updates ...[]interface{}) {
	evts, err := redraw.Decode(updates)
	if err != nil {
		// Decode keeps every event it could read; the rest of the batch
		// is still worth applying.
		logging.Warnf("decode redraw: %v", err)
	}
	s.emit(Event{Kind: KindRedraw, Data: redraw.Batch{Events: evts}})
}

func (s *Session) handleExtension(args ...interface{}) {
	evt, err := redraw.DecodeExtension(args)
	s.emit(Event{Kind: KindExtension, Data: redraw.Extension{Event: evt, Err: err}})
}

func (s *Session) serve() {
	defer s.wg.Done()
	err := s.client.Serve()
	if errors.Is(s.ctx.Err(), context.Canceled) {
		err = nil
	}
	s.emit(Event{Kind: KindExit, Err: err})
}

func (s *Session) emit(evt Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case <-s.ctx.Done():
	case s.events <- evt:
	}
}

// Events returns the channel of session events. It is closed once the
// session has been closed.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Client returns the RPC client, for issuing requests to the editor.
func (s *Session) Client() *nvim.Nvim {
	return s.client
}

// Close detaches the UI, stops the editor and waits for the serve loop
// to exit.
func (s *Session) Close() error {
	if err := s.client.DetachUI(); err != nil {
		logging.Debugf("detach ui: %v", err)
	}
	return s.shutdown()
}

func (s *Session) shutdown() error {
	s.cancel()
	err := s.client.Close()
	s.wg.Wait()

	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.events)
	}
	s.mu.Unlock()
	return err
}

package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/nvim-ui-mirror/internal/backend"
	"github.com/atomicstack/nvim-ui-mirror/internal/command"
	"github.com/atomicstack/nvim-ui-mirror/internal/font"
	"github.com/atomicstack/nvim-ui-mirror/internal/logging"
	"github.com/atomicstack/nvim-ui-mirror/internal/logging/events"
	"github.com/atomicstack/nvim-ui-mirror/internal/state"
	"github.com/atomicstack/nvim-ui-mirror/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	NvimPath       string `validate:"required"`
	NvimArgs       []string
	Width          int           `validate:"min=0"`
	Height         int           `validate:"min=0"`
	Font           string        `validate:"guifont"`
	LineSpace      int           `validate:"min=0"`
	ResizeDelay    time.Duration `validate:"min=0"`
	ResizeInterval time.Duration `validate:"min=0"`
}

const (
	fallbackCols = 80
	fallbackRows = 24
)

// uiSize picks the attach size: explicit flags win, then the detected
// terminal size, then 80x24.
func uiSize(cfg Config, termCols, termRows int) (int, int) {
	cols, rows := cfg.Width, cfg.Height
	if cols <= 0 {
		cols = termCols
	}
	if rows <= 0 {
		rows = termRows
	}
	if cols <= 0 {
		cols = fallbackCols
	}
	if rows <= 0 {
		rows = fallbackRows
	}
	return cols, rows
}

// Run starts the embedded editor, wires it to the UI state and runs the
// inspector until the user quits or the editor exits.
func Run(cfg Config, termCols, termRows int) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cols, rows := uiSize(cfg, termCols, termRows)
	session, err := backend.Start(ctx, backend.Options{
		Path: cfg.NvimPath,
		Args: cfg.NvimArgs,
		Cols: cols,
		Rows: rows,
	})
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			logging.Debugf("close session: %v", err)
		}
	}()
	events.App.Attach(cols, rows)

	bus := command.NewBus(0)
	worker := command.NewWorker(bus, session.Client(), cfg.ResizeInterval)
	go worker.Run(ctx)

	uiState := state.New(state.Options{
		Bus:         bus,
		Measurer:    font.Terminal{},
		Font:        font.ParseOrDefault(cfg.Font),
		LineSpace:   cfg.LineSpace,
		Cols:        cols,
		Rows:        rows,
		ResizeDelay: cfg.ResizeDelay,
	})

	fixed := cfg.Width > 0 || cfg.Height > 0
	model := ui.NewModel(uiState, session.Events(), termCols, termRows, fixed)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if err == nil {
		err = model.Err()
	}
	events.App.Exit(err)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

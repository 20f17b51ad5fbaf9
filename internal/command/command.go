// Package command carries requests from the engine to the editor.
// Handlers enqueue Command values on a Bus; a Worker drains the bus on
// its own goroutine and performs the RPCs.
package command

import "fmt"

// Client is the subset of the editor API the worker needs. *nvim.Nvim
// satisfies it.
type Client interface {
	TryResizeUI(width, height int) error
	TryResizeUIGrid(grid, width, height int) error
	Command(cmd string) error
}

// Command is one outbound request.
type Command interface {
	Label() string
	run(c Client) error
}

// TryResizeUI asks the editor to resize the whole UI.
type TryResizeUI struct {
	Cols int
	Rows int
}

func (c TryResizeUI) Label() string {
	return fmt.Sprintf("try_resize %dx%d", c.Cols, c.Rows)
}

func (c TryResizeUI) run(cl Client) error {
	return cl.TryResizeUI(c.Cols, c.Rows)
}

// TryResizeGrid asks the editor to resize one grid.
type TryResizeGrid struct {
	Grid int
	Cols int
	Rows int
}

func (c TryResizeGrid) Label() string {
	return fmt.Sprintf("try_resize_grid %d %dx%d", c.Grid, c.Cols, c.Rows)
}

func (c TryResizeGrid) run(cl Client) error {
	return cl.TryResizeUIGrid(c.Grid, c.Cols, c.Rows)
}

// Exec runs an Ex command.
type Exec struct {
	Cmd string
}

func (c Exec) Label() string {
	return "exec " + c.Cmd
}

func (c Exec) run(cl Client) error {
	return cl.Command(c.Cmd)
}

// ScrollAutocmd fires the User autocmd listeners use to react to grid
// scrolling, which the editor has no native event for.
const ScrollAutocmd = "if exists('#User#NvimUIMirrorScroll') | doautocmd User NvimUIMirrorScroll | endif"

// Echo returns an Exec that shows msg in the editor's message area.
func Echo(msg string) Exec {
	return Exec{Cmd: fmt.Sprintf("echom %q", msg)}
}

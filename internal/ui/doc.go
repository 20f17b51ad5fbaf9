// Package ui implements the terminal inspector: a Bubble Tea program
// that owns the UIState, feeds it the embedded editor's notifications
// and shows what the reconstructed UI looks like.
//
// Layout, top to bottom:
//
//   - header: title, mode, current grid and busy state
//   - grid table: one row per grid with its size, cursor and window
//   - overlays: tabline, cmdline, wildmenu, popup menu and tooltip
//   - body: the current grid's contents in a scrollable viewport, or
//     the highlight listing when toggled with "h"
//   - footer: key hints
//
// Terminal size changes are reported to the UIState as surface size
// changes, one cell per pixel.
package ui

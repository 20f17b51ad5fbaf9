// Package tooltip tracks the cursor tooltip overlay. Only placement is
// modelled; the content is kept as text.
package tooltip

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/nvim-ui-mirror/internal/font"
	"github.com/atomicstack/nvim-ui-mirror/internal/geom"
	"github.com/atomicstack/nvim-ui-mirror/internal/highlight"
)

// ErrStyleNotFound is returned by LoadStyle for a missing file.
var ErrStyleNotFound = errors.New("tooltip style not found")

// Gravity is the side of the anchor the tooltip grows towards.
type Gravity int

const (
	GravityAuto Gravity = iota
	GravityUp
	GravityDown
)

func (g Gravity) String() string {
	switch g {
	case GravityUp:
		return "up"
	case GravityDown:
		return "down"
	default:
		return "auto"
	}
}

type Tooltip struct {
	font    font.Font
	content string
	visible bool
	anchor  geom.Rect
	bounds  geom.Rect
	height  int

	forced  Gravity
	gravity Gravity

	style     string
	stylePath string
	fg, bg    highlight.Color
}

func New(f font.Font) *Tooltip {
	return &Tooltip{font: f, height: 1, fg: highlight.Black, bg: highlight.White}
}

func (t *Tooltip) Show(content string) {
	t.content = content
	t.visible = true
}

func (t *Tooltip) Hide() {
	t.visible = false
}

func (t *Tooltip) IsVisible() bool {
	return t.visible
}

func (t *Tooltip) Content() string {
	return t.content
}

// SetBounds sets the area the tooltip has to fit in and its height.
func (t *Tooltip) SetBounds(r geom.Rect, height int) {
	t.bounds = r
	t.height = height
	t.RefreshPosition()
}

// MoveTo anchors the tooltip to a cell rectangle.
func (t *Tooltip) MoveTo(r geom.Rect) {
	t.anchor = r
	t.RefreshPosition()
}

// ForceGravity pins the growth direction. GravityAuto releases it.
func (t *Tooltip) ForceGravity(g Gravity) {
	t.forced = g
}

// RefreshPosition recomputes the growth direction.
func (t *Tooltip) RefreshPosition() {
	if t.forced != GravityAuto {
		t.gravity = t.forced
		return
	}
	above := t.anchor.Y - t.bounds.Y
	below := t.bounds.Bottom() - t.anchor.Bottom()
	if t.bounds.Height > 0 && below < t.height && above > below {
		t.gravity = GravityUp
		return
	}
	t.gravity = GravityDown
}

// Gravity returns the direction used for the last placement.
func (t *Tooltip) Gravity() Gravity {
	return t.gravity
}

func (t *Tooltip) Forced() Gravity {
	return t.forced
}

// SetStyle selects a named content style.
func (t *Tooltip) SetStyle(style string) {
	t.style = style
}

// LoadStyle loads a style definition from path.
func (t *Tooltip) LoadStyle(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrStyleNotFound)
		}
		return err
	}
	t.stylePath = path
	return nil
}

func (t *Tooltip) Style() (name, path string) {
	return t.style, t.stylePath
}

func (t *Tooltip) SetColors(fg, bg highlight.Color) {
	t.fg, t.bg = fg, bg
}

func (t *Tooltip) Colors() (fg, bg highlight.Color) {
	return t.fg, t.bg
}

func (t *Tooltip) SetFont(f font.Font) {
	t.font = f
}

func (t *Tooltip) Font() font.Font {
	return t.font
}

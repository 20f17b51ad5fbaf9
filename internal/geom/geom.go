// Package geom holds the small geometry vocabulary shared by grids,
// windows and the auxiliary surfaces.
package geom

// Rect is a pixel rectangle.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Bottom returns the y coordinate just below the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Anchor is the corner of a floating window that is pinned to its anchor
// position.
type Anchor int

const (
	AnchorNW Anchor = iota
	AnchorNE
	AnchorSW
	AnchorSE
)

// ParseAnchor maps the protocol spelling ("NW", "NE", "SW", "SE").
func ParseAnchor(s string) (Anchor, bool) {
	switch s {
	case "NW":
		return AnchorNW, true
	case "NE":
		return AnchorNE, true
	case "SW":
		return AnchorSW, true
	case "SE":
		return AnchorSE, true
	}
	return AnchorNW, false
}

func (a Anchor) IsWest() bool {
	return a == AnchorNW || a == AnchorSW
}

func (a Anchor) IsNorth() bool {
	return a == AnchorNW || a == AnchorNE
}

func (a Anchor) String() string {
	switch a {
	case AnchorNE:
		return "NE"
	case AnchorSW:
		return "SW"
	case AnchorSE:
		return "SE"
	default:
		return "NW"
	}
}

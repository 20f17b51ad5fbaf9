package highlight

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB colour with components in [0, 1].
type Color = colorful.Color

var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 1, G: 1, B: 1}
	Red   = Color{R: 1, G: 0, B: 0}
)

// FromRGB converts the protocol's packed 24-bit colour.
func FromRGB(v int64) Color {
	return Color{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}

// ToRGB packs c back into a 24-bit integer.
func ToRGB(c Color) int64 {
	r, g, b := c.Clamped().RGB255()
	return int64(r)<<16 | int64(g)<<8 | int64(b)
}

// Hex returns c as rrggbb without the leading '#'.
func Hex(c Color) string {
	return strings.TrimPrefix(c.Clamped().Hex(), "#")
}

// RGBA formats c as a CSS rgba() value.
func RGBA(c Color, alpha float64) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, alpha)
}

// Package font parses the editor's guifont option and defines the metric
// boundary used to size grid cells. Measuring real glyphs belongs to the
// rendering layer; the engine only needs cell width and height.
package font

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultFamily = "Monospace"
	DefaultHeight = 12.0
)

var ErrEmptyFamily = errors.New("font family missing")

// Font is a parsed guifont value.
type Font struct {
	Family string
	Height float64
	Bold   bool
	Italic bool
}

// Default returns the font used before the editor sets guifont.
func Default() Font {
	return Font{Family: DefaultFamily, Height: DefaultHeight}
}

// Parse reads a guifont value such as "Fira_Code:h13:b". Only the first
// comma separated entry is used.
func Parse(guifont string) (Font, error) {
	first := strings.TrimSpace(strings.SplitN(guifont, ",", 2)[0])
	parts := strings.Split(first, ":")
	family := strings.TrimSpace(strings.ReplaceAll(parts[0], "_", " "))
	if family == "" {
		return Font{}, ErrEmptyFamily
	}
	f := Font{Family: family, Height: DefaultHeight}
	for _, opt := range parts[1:] {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		switch opt[0] {
		case 'h':
			h, err := strconv.ParseFloat(opt[1:], 64)
			if err != nil || h <= 0 {
				return Font{}, fmt.Errorf("invalid font height %q", opt[1:])
			}
			f.Height = h
		case 'b':
			f.Bold = true
		case 'i':
			f.Italic = true
		}
	}
	return f, nil
}

// ParseOrDefault falls back to Default when guifont cannot be parsed.
func ParseOrDefault(guifont string) Font {
	f, err := Parse(guifont)
	if err != nil {
		return Default()
	}
	return f
}

// String renders f back into guifont syntax.
func (f Font) String() string {
	var b strings.Builder
	b.WriteString(strings.ReplaceAll(f.Family, " ", "_"))
	b.WriteString(":h")
	b.WriteString(strconv.FormatFloat(f.Height, 'f', -1, 64))
	if f.Bold {
		b.WriteString(":b")
	}
	if f.Italic {
		b.WriteString(":i")
	}
	return b.String()
}

// Measurer reports the pixel size of one grid cell for a font and line
// space.
type Measurer interface {
	CellSize(f Font, lineSpace int) (width, height float64)
}

// Fixed is a Measurer with a constant glyph box; line space is added to
// the height.
type Fixed struct {
	Width  float64
	Height float64
}

func (m Fixed) CellSize(_ Font, lineSpace int) (float64, float64) {
	return m.Width, m.Height + float64(lineSpace)
}

// Scaled derives the glyph box from the font height using fixed ratios,
// which is close enough for monospace faces when no real shaper exists.
type Scaled struct {
	WidthRatio  float64
	HeightRatio float64
}

func (m Scaled) CellSize(f Font, lineSpace int) (float64, float64) {
	wr, hr := m.WidthRatio, m.HeightRatio
	if wr <= 0 {
		wr = 0.6
	}
	if hr <= 0 {
		hr = 1.2
	}
	return f.Height * wr, f.Height*hr + float64(lineSpace)
}

// Terminal is the measurer for character-cell hosts: one pixel per cell
// and line space is ignored.
type Terminal struct{}

func (Terminal) CellSize(Font, int) (float64, float64) {
	return 1, 1
}

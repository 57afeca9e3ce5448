package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
	"github.com/alexisbeaulieu97/huewheel/internal/radial"
)

// CellWidth is the number of terminal columns used by one wheel pixel.
const CellWidth = 2

const (
	handleGlyph = "◉ "
	markerGlyph = "● "
	emptyCell   = "  "
)

// Wheel draws the hue/saturation disc at a fixed lightness.
type Wheel struct {
	Diameter int
}

// Box is the wheel's bounding box in wheel pixels.
func (w Wheel) Box() radial.Box {
	d := float64(w.Diameter)
	return radial.Box{Width: d, Height: d}
}

// Contains reports whether the terminal cell (col, row), relative to the
// wheel's top-left corner, lies inside the wheel's bounding box.
func (w Wheel) Contains(col, row int) bool {
	return col >= 0 && row >= 0 && col < w.Diameter*CellWidth && row < w.Diameter
}

// Point converts a terminal cell relative to the wheel's corner into wheel
// pixel coordinates at the center of that cell.
func (w Wheel) Point(col, row int) (x, y float64) {
	return (float64(col) + 0.5) / CellWidth, float64(row) + 0.5
}

// Render draws the disc for base with the handle and palette markers.
func (w Wheel) Render(base color.HSL, palette []string) string {
	if w.Diameter <= 0 {
		return ""
	}

	box := w.Box()
	radius := box.Radius()

	glyphs := make(map[[2]int]string)
	for _, m := range radial.Markers(box, base, palette) {
		glyphs[w.cell(m.X, m.Y)] = markerGlyph
	}
	hx, hy := radial.Handle(box, base)
	glyphs[w.cell(hx, hy)] = handleGlyph

	fg := ContrastText(base)
	var b strings.Builder
	for row := 0; row < w.Diameter; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < w.Diameter; col++ {
			glyph, ok := glyphs[[2]int{col, row}]
			if !ok {
				glyph = emptyCell
			}

			dx, dy := box.Offset(float64(col)+0.5, float64(row)+0.5)
			if math.Hypot(dx, dy) > radius {
				b.WriteString(glyph)
				continue
			}

			h, s := radial.FromPoint(dx, dy, radius)
			hex := color.HSLToHex(color.HSL{H: h, S: s, L: base.L})
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Foreground(fg).Render(glyph))
		}
	}
	return b.String()
}

func (w Wheel) cell(x, y float64) [2]int {
	col := color.Clamp(int(math.Floor(x)), 0, w.Diameter-1)
	row := color.Clamp(int(math.Floor(y)), 0, w.Diameter-1)
	return [2]int{col, row}
}

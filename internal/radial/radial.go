// Package radial maps pointer geometry on a circular picker to hue and saturation and back.
// Hue is the pointer angle measured with atan2 in screen coordinates, saturation the
// distance from the center relative to the radius. Lightness never enters the mapping.
package radial

import (
	"math"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
)

// FromPoint converts an offset from the wheel center into hue and saturation.
// Points beyond the radius saturate at 100.
func FromPoint(dx, dy, radius float64) (hue, saturation int) {
	if radius <= 0 {
		return angleToHue(dx, dy), 0
	}

	distance := math.Min(radius, math.Hypot(dx, dy))
	return angleToHue(dx, dy), int(math.Floor(distance/radius*100 + 0.5))
}

func angleToHue(dx, dy float64) int {
	degrees := math.Mod(math.Atan2(dy, dx)*180/math.Pi+360, 360)
	return color.WrapHue(int(math.Floor(degrees + 0.5)))
}

// ToPoint is the inverse of FromPoint for in-range hue and saturation.
func ToPoint(hue, saturation int, radius float64) (dx, dy float64) {
	angle := float64(hue) * math.Pi / 180
	distance := float64(saturation) / 100 * radius
	return distance * math.Cos(angle), distance * math.Sin(angle)
}

// Box is the bounding box of the picker in device units.
type Box struct {
	Width  float64
	Height float64
}

// Radius is half the box width.
func (b Box) Radius() float64 {
	return b.Width / 2
}

// Offset converts a box-relative position into an offset from the box center.
func (b Box) Offset(x, y float64) (dx, dy float64) {
	return x - b.Width/2, y - b.Height/2
}

// Position converts a center offset back into box-relative coordinates.
func (b Box) Position(dx, dy float64) (x, y float64) {
	return dx + b.Width/2, dy + b.Height/2
}

// Pick returns current with hue and saturation replaced by the point at (x, y).
func Pick(box Box, x, y float64, current color.HSL) color.HSL {
	dx, dy := box.Offset(x, y)
	h, s := FromPoint(dx, dy, box.Radius())
	return color.HSL{H: h, S: s, L: current.L}
}

// Handle returns the box-relative position of the selection handle for c.
func Handle(box Box, c color.HSL) (x, y float64) {
	dx, dy := ToPoint(c.H, c.S, box.Radius())
	return box.Position(dx, dy)
}

// Marker is a secondary dot for one palette entry.
type Marker struct {
	Slot int
	Hex  string
	X    float64
	Y    float64
}

// Markers projects palette entries onto the box. Entries equal to the base color's hex
// are skipped so they do not sit on top of the handle, as are unparsable entries.
func Markers(box Box, base color.HSL, palette []string) []Marker {
	baseHex := color.HSLToHex(base)

	markers := make([]Marker, 0, len(palette))
	for i, hex := range palette {
		if color.SameHex(hex, baseHex) {
			continue
		}
		hsl, err := color.HexToHSL(hex)
		if err != nil {
			continue
		}
		x, y := Handle(box, hsl)
		markers = append(markers, Marker{Slot: i, Hex: hex, X: x, Y: y})
	}
	return markers
}

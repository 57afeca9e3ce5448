package radial

import "github.com/alexisbeaulieu97/huewheel/internal/color"

// Drag tracks one pointer gesture on the picker. The only state is whether a gesture is active.
type Drag struct {
	Box      Box
	dragging bool
}

// NewDrag creates an idle drag session over box.
func NewDrag(box Box) *Drag {
	return &Drag{Box: box}
}

// Dragging reports whether a gesture is in progress.
func (d *Drag) Dragging() bool {
	return d.dragging
}

// Begin starts a gesture and applies the first sample.
func (d *Drag) Begin(x, y float64, current color.HSL) color.HSL {
	d.dragging = true
	return Pick(d.Box, x, y, current)
}

// Move applies a sample while dragging. Outside a gesture it reports ok=false and current is returned unchanged.
func (d *Drag) Move(x, y float64, current color.HSL) (next color.HSL, ok bool) {
	if !d.dragging {
		return current, false
	}
	return Pick(d.Box, x, y, current), true
}

// End finishes the gesture. Calling End while idle is harmless.
func (d *Drag) End() {
	d.dragging = false
}

package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
)

// Gauge renders a 0-100 channel value as a gradient bar.
type Gauge struct {
	Label string
	Width int
}

// Saturation renders s as a bar running from gray to the fully saturated hue.
func (g Gauge) Saturation(c color.HSL) string {
	from := color.HSLToHex(color.HSL{H: c.H, S: 0, L: c.L})
	to := color.HSLToHex(color.HSL{H: c.H, S: 100, L: c.L})
	return g.render(c.S, from, to)
}

// Lightness renders l as a bar running from black to white through the color.
func (g Gauge) Lightness(c color.HSL) string {
	from := color.HSLToHex(color.HSL{H: c.H, S: c.S, L: 0})
	to := color.HSLToHex(color.HSL{H: c.H, S: c.S, L: 100})
	return g.render(c.L, from, to)
}

func (g Gauge) render(value int, from, to string) string {
	width := g.Width
	if width <= 0 {
		width = 24
	}

	bar := progress.New(progress.WithGradient(from, to), progress.WithoutPercentage(), progress.WithWidth(width))
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%-11s %3d", g.Label, value))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", bar.ViewAs(float64(color.Clamp(value, 0, 100))/100))
}

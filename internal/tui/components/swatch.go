package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(5)
	valueStyle = lipgloss.NewStyle().Bold(true)
)

// SwatchCard renders one palette entry as a color block followed by its
// HEX, RGB and CMYK values.
func SwatchCard(hex string, highlight bool) string {
	block := Block(hex, 6, 3)

	sw, err := color.Describe(hex)
	if err != nil {
		return lipgloss.JoinHorizontal(lipgloss.Top, block, "  ", valueStyle.Render(hex))
	}

	name := sw.Hex
	if highlight {
		name += " ◀ base"
	}
	lines := []string{
		labelStyle.Render("HEX") + valueStyle.Render(name),
		labelStyle.Render("RGB") + sw.RGB.String(),
		labelStyle.Render("CMYK") + sw.CMYK.String(),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, block, "  ", strings.Join(lines, "\n"))
}

// Block is a solid rectangle of the given color, width columns by height rows.
func Block(hex string, width, height int) string {
	style := lipgloss.NewStyle()
	if _, err := color.HexToRGB(hex); err == nil {
		style = style.Background(lipgloss.Color(hex))
	}

	row := style.Render(strings.Repeat(" ", width))
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// Strip renders colors as a single row of small blocks, as in the saved list.
func Strip(colors []string) string {
	parts := make([]string, 0, len(colors))
	for _, hex := range colors {
		parts = append(parts, Block(hex, 3, 1))
	}
	return strings.Join(parts, " ")
}

// ContrastText returns black or white, whichever reads better on c.
func ContrastText(c color.HSL) lipgloss.Color {
	if c.L > 55 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// FormatHSL renders c as "hsl(h, s%, l%)".
func FormatHSL(c color.HSL) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

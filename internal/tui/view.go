package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
	"github.com/alexisbeaulieu97/huewheel/internal/tui/components"
)

// View renders the current model state
func (m Model) View() string {
	switch m.mode {
	case ModeSaved:
		return m.renderSavedView()
	case ModeHelp:
		return m.renderHelpView()
	default:
		return m.renderEditView()
	}
}

// renderHeader renders the single title line. The wheel is positioned
// relative to it, so it must stay one line tall.
func (m Model) renderHeader() string {
	name := nameStyle.Render(m.name)
	if m.naming {
		name = m.spinner.View() + " naming..."
	}
	return titleStyle.Render("huewheel") + "  " + name
}

// renderEditView renders the wheel next to the controls and the palette.
func (m Model) renderEditView() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	wheelLines := strings.Split(m.wheel.Render(m.state.Base, m.state.Palette), "\n")
	pad := strings.Repeat(" ", wheelOriginX)
	for i := range wheelLines {
		wheelLines[i] = pad + wheelLines[i]
	}
	wheel := strings.Join(wheelLines, "\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, wheel, panelStyle.Render(m.renderControls()))
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Palette"))
	b.WriteString("\n")
	b.WriteString(m.renderPalette())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString(footerStyle.Render("←/→ hue  ↑/↓ saturation  +/- lightness  tab harmony  # hex  r random  s save  p saved  n name  c copy  ? help  q quit"))
	return b.String()
}

func (m Model) renderControls() string {
	base := m.state.Base

	hexLine := components.Block(m.state.BaseHex(), 4, 1) + " " + strings.ToUpper(m.state.HexInput)
	if m.mode == ModeHex {
		hexLine = components.Block(m.state.BaseHex(), 4, 1) + " " + m.hexInput.View()
	}

	lines := []string{
		sectionStyle.UnsetMarginTop().Render("Base color"),
		hexLine,
		mutedStyle.Render(components.FormatHSL(base)),
		"",
		components.Gauge{Label: "Saturation", Width: 20}.Saturation(base),
		components.Gauge{Label: "Lightness", Width: 20}.Lightness(base),
		"",
		sectionStyle.UnsetMarginTop().Render("Harmony"),
	}
	for i, info := range harmony.Rules() {
		line := fmt.Sprintf("%d %s", i+1, info.Label)
		if info.Rule == m.state.Harmony {
			lines = append(lines, selectedItemStyle.Render(line))
			continue
		}
		lines = append(lines, itemStyle.Render(line))
	}
	lines = append(lines, mutedStyle.Render(m.state.Harmony.Description()))
	return strings.Join(lines, "\n")
}

func (m Model) renderPalette() string {
	baseHex := m.state.BaseHex()
	cards := make([]string, 0, len(m.state.Palette))
	for _, hex := range m.state.Palette {
		cards = append(cards, "  "+components.SwatchCard(hex, color.SameHex(hex, baseHex)))
	}
	return strings.Join(cards, "\n")
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusError {
		return "  " + errorStatusStyle.Render(m.status) + "\n"
	}
	return "  " + statusStyle.Render(m.status) + "\n"
}

// renderSavedView renders the saved palettes list
func (m Model) renderSavedView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Saved palettes (%d)", len(m.saved))))
	b.WriteString("\n\n")

	if len(m.saved) == 0 {
		b.WriteString(itemStyle.Render(mutedStyle.Render("No saved palettes yet. Press s in the editor to save one.")))
		b.WriteString("\n")
	}

	for i, p := range m.saved {
		line := components.Strip(p.Colors) + "  " + p.Harmony.Label()
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	b.WriteString(footerStyle.Render("↑/↓ move  enter load  d delete  c copy  esc back  q quit"))
	return b.String()
}

// renderHelpView renders the help overlay
func (m Model) renderHelpView() string {
	title := titleStyle.Render("huewheel help")

	helpContent := `
Wheel:
  click/drag      Pick hue (angle) and saturation (distance)
  ←/→, h/l        Rotate hue
  ↑/↓, k/j        Saturation
  +/-             Lightness

Palette:
  tab, shift+tab  Cycle harmony rule
  1-7             Pick harmony rule
  #, e            Type a hex color (enter to keep, esc to restore)
  r               Random color and rule
  n               Name the palette
  c               Copy colors to the clipboard

Saved palettes:
  s               Save the current palette
  p               Browse saved palettes
  enter           Load the selected palette
  d               Delete the selected palette
`

	helpText := lipgloss.NewStyle().
		Padding(1, 2).
		Render(helpContent)

	footer := footerStyle.Render("Press any key to close")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		helpText,
		footer,
	)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huewheel/internal/editor"
	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
	"github.com/alexisbeaulieu97/huewheel/internal/naming"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PaletteNamedMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.naming = false
		m.name = msg.Name
		if msg.Err != nil {
			m.log.Warn(msg.Err, "palette naming failed, using fallback")
		}
		return m, nil

	case PaletteSavedMsg:
		m.reloadSaved()
		if msg.Err != nil {
			m.log.Error(msg.Err, "saving palette failed")
			if msg.Palette.ID != "" {
				return m, m.setStatus("Saved for this session only: "+msg.Err.Error(), true)
			}
			return m, m.setStatus("Could not save palette: "+msg.Err.Error(), true)
		}
		m.log.WithFields(map[string]any{"id": msg.Palette.ID}).Info("palette saved")
		return m, m.setStatus("Palette saved", false)

	case PaletteRemovedMsg:
		m.reloadSaved()
		if msg.Err != nil {
			m.log.Error(msg.Err, "removing palette failed")
			return m, m.setStatus("Could not delete palette: "+msg.Err.Error(), true)
		}
		if msg.Removed {
			return m, m.setStatus("Palette deleted", false)
		}
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			m.log.Warn(msg.Err, "clipboard unavailable")
			return m, m.setStatus("Clipboard unavailable", true)
		}
		return m, m.setStatus("Copied "+msg.Text, false)

	case ClearStatusMsg:
		m.status = ""
		m.statusError = false
		return m, nil
	}

	if m.mode == ModeHex {
		var cmd tea.Cmd
		m.hexInput, cmd = m.hexInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on current mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeHex:
		return m.handleHexKeys(msg)
	case ModeSaved:
		return m.handleSavedKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleEditKeys(msg)
	}
}

// handleEditKeys handles keys on the main editor screen
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	base := m.state.Base

	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit

	// Hue around the wheel
	case "left", "h":
		base.H -= hueStep
		m.apply(editor.SetBase{Color: base})
	case "right", "l":
		base.H += hueStep
		m.apply(editor.SetBase{Color: base})

	// Saturation
	case "up", "k":
		m.apply(editor.SetSaturation{Value: base.S + valueStep})
	case "down", "j":
		m.apply(editor.SetSaturation{Value: base.S - valueStep})

	// Lightness
	case "+", "=":
		m.apply(editor.SetLightness{Value: base.L + valueStep})
	case "-", "_":
		m.apply(editor.SetLightness{Value: base.L - valueStep})

	// Harmony
	case "tab":
		m.apply(editor.SetHarmony{Rule: m.state.Harmony.Next()})
	case "shift+tab":
		m.apply(editor.SetHarmony{Rule: m.state.Harmony.Prev()})
	case "1", "2", "3", "4", "5", "6", "7":
		rules := harmony.Rules()
		if index := int(key[0] - '1'); index < len(rules) {
			m.apply(editor.SetHarmony{Rule: rules[index].Rule})
		}

	case "r":
		rb, rule := harmony.Random(m.rng)
		m.apply(editor.Randomize{Base: rb, Harmony: rule})

	case "#", "e":
		m.mode = ModeHex
		m.hexOrigin = m.state
		m.hexInput.SetValue(m.state.HexInput)
		m.hexInput.CursorEnd()
		return m, m.hexInput.Focus()

	case "s":
		if m.store == nil {
			return m, m.setStatus("No palette store configured", true)
		}
		return m, saveCmd(m.store, m.state.Snapshot())

	case "n":
		if m.naming {
			return m, nil
		}
		m.naming = true
		namer := m.namer
		if namer == nil {
			namer = naming.LabelNamer{Rule: m.state.Harmony}
		}
		return m, tea.Batch(m.spinner.Tick, nameCmd(namer, m.state.Palette, m.namingTimeout, m.generation))

	case "c":
		return m, copyCmd(m.clipboard, strings.Join(m.state.Palette, ", "))

	case "p":
		m.reloadSaved()
		m.mode = ModeSaved
	case "?":
		m.mode = ModeHelp
	case "esc":
		m.status = ""
		m.statusError = false
	}

	return m, nil
}

// handleHexKeys routes keys to the hex input
func (m Model) handleHexKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.apply(editor.SetHex{Value: m.hexInput.Value()})
		m.finishHexEntry()
		return m, nil
	case tea.KeyEsc:
		m.replace(m.hexOrigin)
		m.finishHexEntry()
		return m, nil
	}

	var cmd tea.Cmd
	m.hexInput, cmd = m.hexInput.Update(msg)
	m.apply(editor.SetHex{Value: m.hexInput.Value()})
	return m, cmd
}

// finishHexEntry leaves hex mode and resyncs the text with the base color.
func (m *Model) finishHexEntry() {
	m.hexInput.Blur()
	m.mode = ModeEdit
	m.state.HexInput = m.state.BaseHex()
}

// handleSavedKeys handles keys in the saved palettes list
func (m Model) handleSavedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "p", "backspace":
		m.mode = ModeEdit
	case "up", "k":
		if len(m.saved) > 0 {
			m.cursor = (m.cursor - 1 + len(m.saved)) % len(m.saved)
		}
	case "down", "j":
		if len(m.saved) > 0 {
			m.cursor = (m.cursor + 1) % len(m.saved)
		}
	case "enter", " ":
		if p, ok := m.selected(); ok {
			m.apply(editor.LoadSaved{Palette: p})
			m.mode = ModeEdit
			return m, m.setStatus(fmt.Sprintf("Loaded %s palette", p.Harmony.Label()), false)
		}
	case "d", "x", "delete":
		if p, ok := m.selected(); ok && m.store != nil {
			return m, removeCmd(m.store, p.ID)
		}
	case "c":
		if p, ok := m.selected(); ok {
			return m, copyCmd(m.clipboard, strings.Join(p.Colors, ", "))
		}
	}
	return m, nil
}

// handleHelpKeys closes the help screen
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	default:
		m.mode = ModeEdit
	}
	return m, nil
}

// handleMouse turns press/motion/release on the wheel into a drag session.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeEdit {
		return m, nil
	}

	col, row := msg.X-wheelOriginX, msg.Y-wheelOriginY
	x, y := m.wheel.Point(col, row)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.wheel.Contains(col, row) {
			return m, nil
		}
		m.apply(editor.SetBase{Color: m.drag.Begin(x, y, m.state.Base)})
	case tea.MouseActionMotion:
		if next, ok := m.drag.Move(x, y, m.state.Base); ok {
			m.apply(editor.SetBase{Color: next})
		}
	case tea.MouseActionRelease:
		m.drag.End()
	}
	return m, nil
}

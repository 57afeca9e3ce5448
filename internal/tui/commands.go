package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huewheel/internal/naming"
	"github.com/alexisbeaulieu97/huewheel/internal/store"
)

// nameCmd resolves a palette name off the UI goroutine.
func nameCmd(namer naming.Namer, colors []string, timeout time.Duration, generation int) tea.Cmd {
	colors = append([]string(nil), colors...)
	return func() tea.Msg {
		name, err := naming.Resolve(context.Background(), namer, colors, timeout)
		return PaletteNamedMsg{Generation: generation, Name: name, Err: err}
	}
}

// saveCmd persists a snapshot of the current palette.
func saveCmd(s *store.Store, snap store.Snapshot) tea.Cmd {
	return func() tea.Msg {
		saved, err := s.Add(snap)
		return PaletteSavedMsg{Palette: saved, Err: err}
	}
}

// removeCmd deletes a saved palette.
func removeCmd(s *store.Store, id string) tea.Cmd {
	return func() tea.Msg {
		removed, err := s.Remove(id)
		return PaletteRemovedMsg{ID: id, Removed: removed, Err: err}
	}
}

// copyCmd writes text to the system clipboard.
func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Text: text, Err: write(text)}
	}
}

// clearStatusAfter dismisses the status line after d.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return ClearStatusMsg{} })
}

package tui

import (
	"github.com/alexisbeaulieu97/huewheel/internal/store"
)

// Mode determines which screen to render and how keys are interpreted.
type Mode int

const (
	ModeEdit Mode = iota
	ModeHex
	ModeSaved
	ModeHelp
)

// PaletteNamedMsg carries the result of an asynchronous naming request.
// Generation identifies the palette the request was made for.
type PaletteNamedMsg struct {
	Generation int
	Name       string
	Err        error
}

// PaletteSavedMsg reports the outcome of saving the current palette.
type PaletteSavedMsg struct {
	Palette store.SavedPalette
	Err     error
}

// PaletteRemovedMsg reports the outcome of deleting a saved palette.
type PaletteRemovedMsg struct {
	ID      string
	Removed bool
	Err     error
}

// CopiedMsg reports the outcome of copying colors to the clipboard.
type CopiedMsg struct {
	Text string
	Err  error
}

// ClearStatusMsg requests status line dismissal.
type ClearStatusMsg struct{}

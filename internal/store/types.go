package store

import (
	"github.com/alexisbeaulieu97/huewheel/internal/color"
	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
)

// FileName is the storage key for persisted palettes inside the data directory.
const FileName = "palettes.json"

// SavedPalette is one persisted palette snapshot.
type SavedPalette struct {
	ID        string       `json:"id"`
	Colors    []string     `json:"colors"`
	Harmony   harmony.Rule `json:"harmony"`
	BaseColor color.HSL    `json:"baseColor"`
}

// Snapshot is the caller-supplied content of a palette about to be saved.
type Snapshot struct {
	Colors    []string
	Harmony   harmony.Rule
	BaseColor color.HSL
}

// SnapshotOf captures a generated palette together with the inputs that produced it.
func SnapshotOf(base color.HSL, rule harmony.Rule, palette harmony.Palette) Snapshot {
	return Snapshot{Colors: palette.Slice(), Harmony: rule, BaseColor: base}
}

func (p SavedPalette) clone() SavedPalette {
	p.Colors = append([]string(nil), p.Colors...)
	return p
}

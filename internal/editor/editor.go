// Package editor holds the palette editing state and its transitions.
// Every transition is a pure function of the previous state and one event.
package editor

import (
	"strings"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
	"github.com/alexisbeaulieu97/huewheel/internal/radial"
	"github.com/alexisbeaulieu97/huewheel/internal/store"
)

// State is what the user is currently editing.
type State struct {
	Base     color.HSL
	Harmony  harmony.Rule
	Palette  []string
	HexInput string
}

// Event is one user action.
type Event interface {
	apply(State) State
}

// New returns the state for base and rule with a freshly generated palette.
func New(base color.HSL, rule harmony.Rule) State {
	if !rule.Valid() {
		rule = harmony.Analogous
	}
	return regenerate(State{Base: base.Normalize(), Harmony: rule})
}

// Apply returns the state after e. A nil event leaves the state unchanged.
func Apply(s State, e Event) State {
	if e == nil {
		return s
	}
	return e.apply(s)
}

// Snapshot captures the state for saving.
func (s State) Snapshot() store.Snapshot {
	return store.Snapshot{
		Colors:    append([]string(nil), s.Palette...),
		Harmony:   s.Harmony,
		BaseColor: s.Base,
	}
}

// BaseHex is the canonical hex of the base color.
func (s State) BaseHex() string {
	return color.HSLToHex(s.Base)
}

func regenerate(s State) State {
	s.Palette = harmony.Generate(s.Base, s.Harmony).Slice()
	s.HexInput = color.HSLToHex(s.Base)
	return s
}

func withBase(s State, base color.HSL) State {
	s.Base = base.Normalize()
	return regenerate(s)
}

// SetSaturation replaces the base saturation.
type SetSaturation struct{ Value int }

func (e SetSaturation) apply(s State) State {
	base := s.Base
	base.S = e.Value
	return withBase(s, base)
}

// SetLightness replaces the base lightness.
type SetLightness struct{ Value int }

func (e SetLightness) apply(s State) State {
	base := s.Base
	base.L = e.Value
	return withBase(s, base)
}

// SetBase replaces the whole base color.
type SetBase struct{ Color color.HSL }

func (e SetBase) apply(s State) State {
	return withBase(s, e.Color)
}

// SetHex records typed hex text. Only a complete six digit value changes the
// base color; anything else stays in the text buffer.
type SetHex struct{ Value string }

func (e SetHex) apply(s State) State {
	s.HexInput = e.Value
	if len(strings.TrimPrefix(strings.TrimSpace(e.Value), "#")) != 6 {
		return s
	}

	hsl, err := color.HexToHSL(strings.TrimSpace(e.Value))
	if err != nil {
		return s
	}
	return withBase(s, hsl)
}

// SetHarmony switches the rule. Unknown rules are ignored.
type SetHarmony struct{ Rule harmony.Rule }

func (e SetHarmony) apply(s State) State {
	if !e.Rule.Valid() {
		return s
	}
	s.Harmony = e.Rule
	return regenerate(s)
}

// PointerPick selects the wheel point (X, Y) inside Box, keeping lightness.
type PointerPick struct {
	Box  radial.Box
	X, Y float64
}

func (e PointerPick) apply(s State) State {
	return withBase(s, radial.Pick(e.Box, e.X, e.Y, s.Base))
}

// LoadSaved restores a saved palette. Its colors are shown exactly as stored.
type LoadSaved struct{ Palette store.SavedPalette }

func (e LoadSaved) apply(s State) State {
	s.Base = e.Palette.BaseColor.Normalize()
	s.Harmony = e.Palette.Harmony
	s.Palette = append([]string(nil), e.Palette.Colors...)
	s.HexInput = color.HSLToHex(s.Base)
	return s
}

// Randomize applies a random base and rule, as produced by harmony.Random.
type Randomize struct {
	Base    color.HSL
	Harmony harmony.Rule
}

func (e Randomize) apply(s State) State {
	if e.Harmony.Valid() {
		s.Harmony = e.Harmony
	}
	return withBase(s, e.Base)
}

package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
	"github.com/alexisbeaulieu97/huewheel/internal/radial"
	"github.com/alexisbeaulieu97/huewheel/internal/store"
)

var initialBase = color.HSL{H: 333, S: 93, L: 64}

func TestNew(t *testing.T) {
	t.Parallel()

	s := New(initialBase, harmony.Analogous)
	assert.Equal(t, initialBase, s.Base)
	assert.Equal(t, harmony.Analogous, s.Harmony)
	assert.Equal(t, []string{"#ac4ef9", "#f94ef0", "#f94e9b", "#f9564e", "#f9ac4e"}, s.Palette)
	assert.Equal(t, "#f94e9b", s.HexInput)
	assert.Equal(t, "#f94e9b", s.BaseHex())
}

func TestNewFallsBackToAnalogous(t *testing.T) {
	t.Parallel()

	s := New(initialBase, harmony.Rule("rainbow"))
	assert.Equal(t, harmony.Analogous, s.Harmony)
	assert.Len(t, s.Palette, harmony.Size)
}

func TestApply(t *testing.T) {
	t.Parallel()

	start := New(initialBase, harmony.Analogous)

	cases := []struct {
		name   string
		event  Event
		assert func(t *testing.T, s State)
	}{
		{
			name:  "nil event",
			event: nil,
			assert: func(t *testing.T, s State) {
				assert.Equal(t, start, s)
			},
		},
		{
			name:  "saturation regenerates the palette",
			event: SetSaturation{Value: 40},
			assert: func(t *testing.T, s State) {
				assert.Equal(t, color.HSL{H: 333, S: 40, L: 64}, s.Base)
				assert.Equal(t, []string{"#a77ec8", "#c87ec4", "#c87ea0", "#c8827e", "#c8a77e"}, s.Palette)
			},
		},
		{
			name:  "saturation is clamped",
			event: SetSaturation{Value: 140},
			assert: func(t *testing.T, s State) {
				assert.Equal(t, 100, s.Base.S)
			},
		},
		{
			name:  "lightness regenerates the palette",
			event: SetLightness{Value: 20},
			assert: func(t *testing.T, s State) {
				assert.Equal(t, color.HSL{H: 333, S: 93, L: 20}, s.Base)
				assert.Equal(t, []string{"#380462", "#62045e", "#62042e", "#620804", "#623804"}, s.Palette)
			},
		},
		{
			name:  "complete hex replaces the base",
			event: SetHex{Value: "#336699"},
			assert: func(t *testing.T, s State) {
				assert.Equal(t, color.HSL{H: 210, S: 50, L: 40}, s.Base)
				assert.Equal(t, []string{"#339966", "#339999", "#336699", "#333399", "#663399"}, s.Palette)
				assert.Equal(t, "#336699", s.HexInput)
			},
		},
		{
			name:  "incomplete hex only updates the buffer",
			event: SetHex{Value: "#3366"},
			assert: func(t *testing.T, s State) {
				assert.Equal(t, start.Base, s.Base)
				assert.Equal(t, start.Palette, s.Palette)
				assert.Equal(t, "#3366", s.HexInput)
			},
		},
		{
			name:  "invalid hex only updates the buffer",
			event: SetHex{Value: "#zzzzzz"},
			assert: func(t *testing.T, s State) {
				assert.Equal(t, start.Base, s.Base)
				assert.Equal(t, "#zzzzzz", s.HexInput)
			},
		},
		{
			name:  "harmony switch keeps the base",
			event: SetHarmony{Rule: harmony.Complementary},
			assert: func(t *testing.T, s State) {
				assert.Equal(t, start.Base, s.Base)
				assert.Equal(t, []string{"#a7064f", "#f10971", "#f94e9b", "#4ef9ac", "#09f189"}, s.Palette)
			},
		},
		{
			name:  "unknown harmony is ignored",
			event: SetHarmony{Rule: "rainbow"},
			assert: func(t *testing.T, s State) {
				assert.Equal(t, start, s)
			},
		},
		{
			name:  "pointer pick keeps lightness",
			event: PointerPick{Box: radial.Box{Width: 200, Height: 200}, X: 200, Y: 100},
			assert: func(t *testing.T, s State) {
				assert.Equal(t, color.HSL{H: 0, S: 100, L: 64}, s.Base)
				assert.Equal(t, "#ff4747", s.HexInput)
			},
		},
		{
			name:  "pointer pick at the center desaturates",
			event: PointerPick{Box: radial.Box{Width: 200, Height: 200}, X: 100, Y: 100},
			assert: func(t *testing.T, s State) {
				assert.Equal(t, 0, s.Base.S)
				assert.Equal(t, 64, s.Base.L)
			},
		},
		{
			name: "randomize sets base and rule",
			event: Randomize{
				Base:    color.HSL{H: 210, S: 50, L: 40},
				Harmony: harmony.Analogous,
			},
			assert: func(t *testing.T, s State) {
				assert.Equal(t, []string{"#339966", "#339999", "#336699", "#333399", "#663399"}, s.Palette)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.assert(t, Apply(start, tc.event))
		})
	}
}

func TestLoadSavedRestoresColorsVerbatim(t *testing.T) {
	t.Parallel()

	saved := store.SavedPalette{
		ID:        "p1",
		Colors:    []string{"#111111", "#222222", "#333333"},
		Harmony:   harmony.Tetradic,
		BaseColor: color.HSL{H: 10, S: 50, L: 20},
	}

	s := Apply(New(initialBase, harmony.Analogous), LoadSaved{Palette: saved})
	assert.Equal(t, saved.BaseColor, s.Base)
	assert.Equal(t, harmony.Tetradic, s.Harmony)
	assert.Equal(t, saved.Colors, s.Palette)
	assert.Equal(t, "#4d221a", s.HexInput)

	saved.Colors[0] = "#ffffff"
	assert.Equal(t, "#111111", s.Palette[0])

	next := Apply(s, SetLightness{Value: 20})
	assert.Equal(t, harmony.Generate(next.Base, harmony.Tetradic).Slice(), next.Palette)
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	s := New(initialBase, harmony.Shades)
	snap := s.Snapshot()
	require.Equal(t, s.Palette, snap.Colors)
	require.Equal(t, harmony.Shades, snap.Harmony)
	require.Equal(t, initialBase, snap.BaseColor)

	snap.Colors[0] = "#000000"
	require.NotEqual(t, "#000000", s.Palette[0])
}

func TestTransitionsDoNotShareState(t *testing.T) {
	t.Parallel()

	start := New(initialBase, harmony.Analogous)
	before := append([]string(nil), start.Palette...)

	_ = Apply(start, SetHarmony{Rule: harmony.Triadic})
	_ = Apply(start, SetSaturation{Value: 10})

	assert.Equal(t, before, start.Palette)
}

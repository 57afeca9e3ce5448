package harmony

import (
	"math/rand/v2"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
)

// Size is the number of swatches in every palette.
const Size = 5

// Palette is an ordered set of hex colors. Slot order is part of each rule's contract.
type Palette [Size]string

// Slice returns the palette as a freshly allocated slice.
func (p Palette) Slice() []string {
	out := make([]string, Size)
	copy(out, p[:])
	return out
}

// Contains reports whether hex appears in the palette, ignoring case.
func (p Palette) Contains(hex string) bool {
	for _, c := range p {
		if color.SameHex(c, hex) {
			return true
		}
	}
	return false
}

// Generate derives the five-color palette for base under rule.
// Unknown rules produce five copies of the base color.
func Generate(base color.HSL, rule Rule) Palette {
	slots := GenerateHSL(base, rule)

	var p Palette
	for i, c := range slots {
		p[i] = color.HSLToHex(c)
	}
	return p
}

// GenerateHSL returns the intermediate HSL slots behind Generate.
// Lightness thresholds are rule specific and kept literal.
func GenerateHSL(base color.HSL, rule Rule) [Size]color.HSL {
	h, s, l := base.H, base.S, base.L

	at := func(dh, lightness int) color.HSL {
		return color.HSL{H: rotate(h, dh), S: s, L: lightness}
	}

	switch rule {
	case Complementary:
		return [Size]color.HSL{
			at(0, max(15, l-30)),
			at(0, max(25, l-15)),
			base,
			at(180, l),
			at(180, max(25, l-15)),
		}
	case Analogous:
		return [Size]color.HSL{
			at(-60, l),
			at(-30, l),
			base,
			at(30, l),
			at(60, l),
		}
	case Triadic:
		return [Size]color.HSL{
			base,
			at(120, l),
			at(240, l),
			at(0, max(20, l-25)),
			at(120, max(20, l-25)),
		}
	case SplitComplementary:
		return [Size]color.HSL{
			base,
			at(150, l),
			at(210, l),
			at(150, max(20, l-25)),
			at(0, max(20, l-35)),
		}
	case Tetradic:
		return [Size]color.HSL{
			base,
			at(90, l),
			at(180, l),
			at(270, l),
			at(0, max(20, l-25)),
		}
	case Monochromatic:
		return [Size]color.HSL{
			{H: h, S: max(0, s-30), L: min(100, l+30)},
			{H: h, S: max(0, s-15), L: min(100, l+15)},
			base,
			{H: h, S: min(100, s+15), L: max(0, l-15)},
			{H: h, S: min(100, s+30), L: max(0, l-30)},
		}
	case Shades:
		return [Size]color.HSL{
			at(0, min(95, l+25)),
			at(0, min(95, l+15)),
			base,
			at(0, max(10, l-15)),
			at(0, max(10, l-25)),
		}
	default:
		return [Size]color.HSL{base, base, base, base, base}
	}
}

// BaseSlot is the palette position that holds the unmodified base color under r.
// Rules that fan out around the base keep it centred; the rotation rules lead with it.
func (r Rule) BaseSlot() int {
	switch r {
	case Complementary, Analogous, Monochromatic, Shades:
		return 2
	default:
		return 0
	}
}

// rotate adds delta degrees and wraps into [0,360). Offsets are within one turn, so one +360 suffices.
func rotate(h, delta int) int {
	return (h + delta + 360) % 360
}

// Random picks a base color and rule the way the "random" action does:
// any hue, saturation in [40,100), lightness in [40,80).
func Random(rng *rand.Rand) (color.HSL, Rule) {
	base := color.HSL{
		H: rng.IntN(360),
		S: 40 + rng.IntN(60),
		L: 40 + rng.IntN(40),
	}
	return base, rules[rng.IntN(len(rules))].Rule
}

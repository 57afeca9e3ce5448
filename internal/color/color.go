package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex reports a hex string that is not exactly six hex digits with an optional leading '#'.
var ErrInvalidHex = errors.New("invalid hex color format")

// HSL is a hue/saturation/lightness triple. Hue is in degrees [0,360), saturation and lightness are percentages.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// RGB holds 8-bit red, green and blue channels.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// CMYK holds cyan, magenta, yellow and key percentages. It is display-only.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// String renders the color as "h, s, l".
func (c HSL) String() string {
	return fmt.Sprintf("%d, %d, %d", c.H, c.S, c.L)
}

// String renders the color as "r, g, b".
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// String renders the color as "c, m, y, k".
func (c CMYK) String() string {
	return fmt.Sprintf("%d, %d, %d, %d", c.C, c.M, c.Y, c.K)
}

// Normalize wraps the hue into [0,360) and clamps saturation and lightness into [0,100].
func (c HSL) Normalize() HSL {
	return HSL{H: WrapHue(c.H), S: Clamp(c.S, 0, 100), L: Clamp(c.L, 0, 100)}
}

// WrapHue maps any integer angle onto [0,360).
func WrapHue(h int) int {
	return ((h % 360) + 360) % 360
}

// Clamp restricts v to [lo,hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// round is round-half-up, which matches math.Round for the non-negative values produced here.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// HSLToRGB converts using the chroma and hue-segment decomposition.
func HSLToRGB(c HSL) RGB {
	c = c.Normalize()

	h := float64(c.H)
	s := float64(c.S) / 100
	l := float64(c.L) / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: channel((r + m) * 255),
		G: channel((g + m) * 255),
		B: channel((b + m) * 255),
	}
}

func channel(v float64) int {
	return Clamp(round(v), 0, 255)
}

// RGBToHex renders the color as a lowercase #rrggbb string.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", Clamp(c.R, 0, 255), Clamp(c.G, 0, 255), Clamp(c.B, 0, 255))
}

// HSLToHex is HSLToRGB followed by RGBToHex.
func HSLToHex(c HSL) string {
	return RGBToHex(HSLToRGB(c))
}

// HexToRGB parses "#rrggbb" or "rrggbb" in either case. Shorthand and any other shape return ErrInvalidHex.
func HexToRGB(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	var channels [3]int
	for i := range channels {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
		}
		channels[i] = int(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// RGBToHSL converts to integer HSL. Achromatic colors always report hue and saturation 0.
func RGBToHSL(c RGB) HSL {
	r := float64(Clamp(c.R, 0, 255)) / 255
	g := float64(Clamp(c.G, 0, 255)) / 255
	b := float64(Clamp(c.B, 0, 255)) / 255

	hi := max(r, g, b)
	lo := min(r, g, b)
	l := (hi + lo) / 2

	if hi == lo {
		return HSL{H: 0, S: 0, L: round(l * 100)}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6

	return HSL{
		H: WrapHue(round(h * 360)),
		S: round(s * 100),
		L: round(l * 100),
	}
}

// HexToHSL is HexToRGB followed by RGBToHSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// RGBToCMYK converts to CMYK percentages. Pure black short-circuits to K=100.
func RGBToCMYK(c RGB) CMYK {
	r := float64(Clamp(c.R, 0, 255)) / 255
	g := float64(Clamp(c.G, 0, 255)) / 255
	b := float64(Clamp(c.B, 0, 255)) / 255

	k := 1 - max(r, g, b)
	if k == 1 {
		return CMYK{C: 0, M: 0, Y: 0, K: 100}
	}

	return CMYK{
		C: round((1 - r - k) / (1 - k) * 100),
		M: round((1 - g - k) / (1 - k) * 100),
		Y: round((1 - b - k) / (1 - k) * 100),
		K: round(k * 100),
	}
}

package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Swatch bundles every display representation of one palette entry.
type Swatch struct {
	Hex  string `json:"hex"`
	RGB  RGB    `json:"rgb"`
	CMYK CMYK   `json:"cmyk"`
	HSL  HSL    `json:"hsl"`
}

// Describe expands a hex color into a Swatch. The Hex field is uppercase for display.
func Describe(hex string) (Swatch, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Swatch{}, err
	}
	return Swatch{
		Hex:  strings.ToUpper(RGBToHex(rgb)),
		RGB:  rgb,
		CMYK: RGBToCMYK(rgb),
		HSL:  RGBToHSL(rgb),
	}, nil
}

// CanonicalHex validates hex and returns it lowercase with a leading '#'.
func CanonicalHex(hex string) (string, error) {
	rgb, err := HexToRGB(strings.TrimSpace(hex))
	if err != nil {
		return "", err
	}
	return RGBToHex(rgb), nil
}

// SameHex reports whether a and b spell the same color, ignoring case and the leading '#'.
func SameHex(a, b string) bool {
	return strings.EqualFold(strings.TrimPrefix(a, "#"), strings.TrimPrefix(b, "#"))
}

// ParseHSL reads "h,s,l" (spaces allowed). Hue is wrapped, saturation and lightness must be within [0,100].
func ParseHSL(value string) (HSL, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return HSL{}, fmt.Errorf("expected h,s,l but got %q", value)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return HSL{}, fmt.Errorf("parse hsl component %d: %w", i+1, err)
		}
		nums[i] = n
	}

	if nums[1] < 0 || nums[1] > 100 {
		return HSL{}, fmt.Errorf("saturation %d out of range [0,100]", nums[1])
	}
	if nums[2] < 0 || nums[2] > 100 {
		return HSL{}, fmt.Errorf("lightness %d out of range [0,100]", nums[2])
	}

	return HSL{H: WrapHue(nums[0]), S: nums[1], L: nums[2]}, nil
}

// Parse accepts either a hex color or an "h,s,l" triple.
func Parse(value string) (HSL, error) {
	trimmed := strings.TrimSpace(value)
	if strings.Contains(trimmed, ",") {
		return ParseHSL(trimmed)
	}
	return HexToHSL(trimmed)
}

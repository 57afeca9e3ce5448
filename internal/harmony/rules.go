package harmony

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRule is returned when a rule tag is not one of the supported harmonies.
var ErrUnknownRule = errors.New("unknown harmony rule")

// Rule identifies a harmony strategy.
type Rule string

const (
	Complementary      Rule = "complementary"
	Analogous          Rule = "analogous"
	Triadic            Rule = "triadic"
	SplitComplementary Rule = "split-complementary"
	Tetradic           Rule = "tetradic"
	Monochromatic      Rule = "monochromatic"
	Shades             Rule = "shades"
)

// Info is the static, human-readable metadata of a rule.
type Info struct {
	Rule        Rule   `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var rules = []Info{
	{Rule: Complementary, Label: "Complementary", Description: "Opposite colors on the color wheel."},
	{Rule: Analogous, Label: "Analogous", Description: "Adjacent colors on the color wheel."},
	{Rule: Triadic, Label: "Triadic", Description: "Three evenly spaced colors."},
	{Rule: SplitComplementary, Label: "Split Complementary", Description: "A base color and the two colors adjacent to its complement."},
	{Rule: Tetradic, Label: "Tetradic", Description: "Four colors forming two complementary pairs."},
	{Rule: Monochromatic, Label: "Monochromatic", Description: "Lightness and saturation variations of one color."},
	{Rule: Shades, Label: "Shades", Description: "Lightness variations of a single hue."},
}

// Rules returns the metadata table in display order.
func Rules() []Info {
	out := make([]Info, len(rules))
	copy(out, rules)
	return out
}

// ParseRule matches a rule tag case-insensitively.
func ParseRule(value string) (Rule, error) {
	candidate := Rule(strings.ToLower(strings.TrimSpace(value)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRule, value)
}

// Valid reports whether r is one of the supported rules.
func (r Rule) Valid() bool {
	_, ok := r.lookup()
	return ok
}

// Label returns the display label, or the raw tag for unknown rules.
func (r Rule) Label() string {
	if info, ok := r.lookup(); ok {
		return info.Label
	}
	return string(r)
}

// Description returns the rule's one-line description.
func (r Rule) Description() string {
	info, _ := r.lookup()
	return info.Description
}

// Next cycles through the rules in display order.
func (r Rule) Next() Rule {
	return r.offset(1)
}

// Prev cycles backwards through the rules in display order.
func (r Rule) Prev() Rule {
	return r.offset(-1)
}

func (r Rule) String() string {
	return string(r)
}

func (r Rule) offset(delta int) Rule {
	for i, info := range rules {
		if info.Rule == r {
			return rules[((i+delta)%len(rules)+len(rules))%len(rules)].Rule
		}
	}
	return rules[0].Rule
}

func (r Rule) lookup() (Info, bool) {
	for _, info := range rules {
		if info.Rule == r {
			return info, true
		}
	}
	return Info{}, false
}

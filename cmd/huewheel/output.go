package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
	"github.com/alexisbeaulieu97/huewheel/internal/tui/components"
)

type paletteJSON struct {
	Name    string         `json:"name,omitempty"`
	Harmony harmony.Rule   `json:"harmony"`
	Base    color.HSL      `json:"base"`
	BaseHex string         `json:"baseHex"`
	Colors  []color.Swatch `json:"colors"`
}

func renderPaletteJSON(w io.Writer, name string, base color.HSL, rule harmony.Rule, colors []string) error {
	payload := paletteJSON{
		Name:    name,
		Harmony: rule,
		Base:    base,
		BaseHex: color.HSLToHex(base),
		Colors:  make([]color.Swatch, 0, len(colors)),
	}
	for _, hex := range colors {
		sw, err := color.Describe(hex)
		if err != nil {
			return err
		}
		sw.Hex = strings.ToLower(sw.Hex)
		payload.Colors = append(payload.Colors, sw)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderPaletteTable(w io.Writer, name string, base color.HSL, rule harmony.Rule, colors []string) error {
	if name != "" {
		fmt.Fprintf(w, "%s\n", name)
	}
	fmt.Fprintf(w, "Harmony: %s  Base: %s (hsl %s)\n\n", rule.Label(), strings.ToUpper(color.HSLToHex(base)), base)

	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "SLOT\tHEX\tRGB\tCMYK")

	useColor := supportsColor(w)
	for i, hex := range colors {
		sw, err := color.Describe(hex)
		if err != nil {
			return err
		}
		label := sw.Hex
		if useColor {
			label = components.Block(hex, 2, 1) + " " + label
		}
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", i+1, label, sw.RGB, sw.CMYK)
	}

	return writer.Flush()
}

// joinHex lists palette entries on one line, uppercase for display.
func joinHex(colors []string) string {
	upper := make([]string, len(colors))
	for i, hex := range colors {
		upper[i] = strings.ToUpper(hex)
	}
	return strings.Join(upper, " ")
}

func supportsColor(writer any) bool {
	return isTerminal(writer)
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

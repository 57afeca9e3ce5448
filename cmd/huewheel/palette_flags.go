package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
	"github.com/alexisbeaulieu97/huewheel/internal/config"
	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
)

// paletteFlags selects a base color and harmony rule on the command line.
type paletteFlags struct {
	base    string
	hsl     string
	harmony string
}

func (p *paletteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.base, "base", "b", "", "Base color as hex, e.g. #f75ba8")
	cmd.Flags().StringVar(&p.hsl, "hsl", "", "Base color as h,s,l, e.g. 333,93,64")
	cmd.Flags().StringVarP(&p.harmony, "harmony", "H", "", "Harmony rule (see 'huewheel harmonies')")
}

// resolve returns the base color and rule, falling back to the configured defaults.
func (p *paletteFlags) resolve(operation string, cfg *config.Config) (color.HSL, harmony.Rule, error) {
	base := cfg.BaseColor()
	rule := cfg.Harmony()

	switch {
	case p.base != "" && p.hsl != "":
		return base, rule, newCommandError(operation, "reading the base color", errors.New("--base and --hsl are mutually exclusive"), "Pass the base color once, either as hex or as h,s,l.")
	case p.base != "":
		hsl, err := color.HexToHSL(strings.TrimSpace(p.base))
		if err != nil {
			return base, rule, newCommandError(operation, "reading the base color", err, "Use six hex digits, e.g. --base '#f75ba8'.")
		}
		base = hsl
	case p.hsl != "":
		hsl, err := color.ParseHSL(p.hsl)
		if err != nil {
			return base, rule, newCommandError(operation, "reading the base color", err, "Use h,s,l with saturation and lightness between 0 and 100, e.g. --hsl 333,93,64.")
		}
		base = hsl
	}

	if p.harmony != "" {
		parsed, err := harmony.ParseRule(p.harmony)
		if err != nil {
			return base, rule, newCommandError(operation, "reading the harmony rule", err, "Run 'huewheel harmonies' to list the supported rules.")
		}
		rule = parsed
	}

	return base, rule, nil
}

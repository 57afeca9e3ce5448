package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
)

type convertOptions struct {
	jsonOutput bool
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <hex|h,s,l>",
		Short: "Show a color as HEX, RGB, HSL and CMYK",
		Example: `  huewheel convert '#336699'
  huewheel convert 210,50,40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runConvert(cmd *cobra.Command, value string, opts *convertOptions) error {
	hsl, err := color.Parse(value)
	if err != nil {
		return newCommandError("convert color", fmt.Sprintf("parsing %q", value), err, "Pass six hex digits like #336699 or h,s,l like 210,50,40.")
	}

	// Hex input is described exactly; h,s,l input goes through its hex form.
	hex := strings.TrimSpace(value)
	if _, hexErr := color.HexToRGB(hex); hexErr != nil {
		hex = color.HSLToHex(hsl)
	}

	sw, err := color.Describe(hex)
	if err != nil {
		return newCommandError("convert color", fmt.Sprintf("describing %q", value), err, "Pass six hex digits like #336699 or h,s,l like 210,50,40.")
	}
	sw.HSL = hsl

	if opts.jsonOutput {
		sw.Hex = strings.ToLower(sw.Hex)
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(sw)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "HEX   %s\n", sw.Hex)
	fmt.Fprintf(out, "RGB   %s\n", sw.RGB)
	fmt.Fprintf(out, "HSL   %s\n", sw.HSL)
	fmt.Fprintf(out, "CMYK  %s\n", sw.CMYK)
	return nil
}

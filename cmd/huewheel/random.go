package main

import (
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
)

type randomOptions struct {
	save       bool
	jsonOutput bool
	seed       uint64
}

func newRandomCmd(flags *rootFlags) *cobra.Command {
	opts := &randomOptions{}

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a random base color and harmony rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.save, "save", false, "Add the generated palette to the saved list")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible pick (0 uses the clock)")

	return cmd
}

func runRandom(cmd *cobra.Command, flags *rootFlags, opts *randomOptions) error {
	app, err := loadApp("generate random palette", flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	base, rule := harmony.Random(rand.New(rand.NewPCG(seed, seed)))
	app.Logger.WithFields(map[string]any{"seed": seed, "harmony": string(rule)}).Debug("random palette picked")

	if opts.save {
		return savePalette(cmd, app, base, rule)
	}

	colors := harmony.Generate(base, rule).Slice()
	if opts.jsonOutput {
		return renderPaletteJSON(cmd.OutOrStdout(), "", base, rule, colors)
	}
	return renderPaletteTable(cmd.OutOrStdout(), "", base, rule, colors)
}

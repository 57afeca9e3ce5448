package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
	"github.com/alexisbeaulieu97/huewheel/internal/naming"
)

type generateOptions struct {
	palette    paletteFlags
	jsonOutput bool
	name       bool
}

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the palette for a base color and harmony rule",
		Example: `  huewheel generate --base '#f75ba8' --harmony triadic
  huewheel generate --hsl 210,50,40 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, opts)
		},
	}

	opts.palette.register(cmd)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.name, "name", false, "Ask the naming service for a palette name")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *rootFlags, opts *generateOptions) error {
	app, err := loadApp("generate palette", flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	base, rule, err := opts.palette.resolve("generate palette", app.Config)
	if err != nil {
		return err
	}
	colors := harmony.Generate(base, rule).Slice()

	var name string
	if opts.name {
		name = resolveName(cmd.Context(), app, rule, colors)
	}

	if opts.jsonOutput {
		return renderPaletteJSON(cmd.OutOrStdout(), name, base, rule, colors)
	}
	return renderPaletteTable(cmd.OutOrStdout(), name, base, rule, colors)
}

func resolveName(ctx context.Context, app *AppContext, rule harmony.Rule, colors []string) string {
	if ctx == nil {
		ctx = context.Background()
	}

	namer := app.Namer()
	if namer == nil {
		namer = naming.LabelNamer{Rule: rule}
	}

	name, err := naming.Resolve(ctx, namer, colors, app.Config.NamingTimeout())
	if err != nil {
		app.Logger.Warn(err, "palette naming failed, using fallback")
	}
	return name
}

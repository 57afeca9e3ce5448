package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
	"github.com/alexisbeaulieu97/huewheel/internal/store"
)

type saveOptions struct {
	palette paletteFlags
}

func newSaveCmd(flags *rootFlags) *cobra.Command {
	opts := &saveOptions{}

	cmd := &cobra.Command{
		Use:     "save",
		Short:   "Generate a palette and add it to the saved list",
		Example: `  huewheel save --base '#336699' --harmony analogous`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(cmd, flags, opts)
		},
	}

	opts.palette.register(cmd)

	return cmd
}

func runSave(cmd *cobra.Command, flags *rootFlags, opts *saveOptions) error {
	app, err := loadApp("save palette", flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	base, rule, err := opts.palette.resolve("save palette", app.Config)
	if err != nil {
		return err
	}

	return savePalette(cmd, app, base, rule)
}

func savePalette(cmd *cobra.Command, app *AppContext, base color.HSL, rule harmony.Rule) error {
	palette := harmony.Generate(base, rule)

	saved, err := app.OpenStore().Add(store.SnapshotOf(base, rule, palette))
	if err != nil {
		return newCommandError("save palette", "writing the saved palettes", err, "Check that you have write access to "+app.Config.DataDir+".")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Saved palette %s\n", saved.ID)
	fmt.Fprintf(out, "  %s  %s\n", rule.Label(), joinHex(saved.Colors))
	return nil
}

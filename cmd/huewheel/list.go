package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved palettes, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	app, err := loadApp("list palettes", flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	palettes := app.OpenStore().List()

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(palettes)
	}

	out := cmd.OutOrStdout()
	if len(palettes) == 0 {
		fmt.Fprintln(out, "No saved palettes yet.")
		fmt.Fprintln(out, "\nSave one with 'huewheel save' or press s in the editor.")
		return nil
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tHARMONY\tBASE\tCOLORS")
	for _, p := range palettes {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", p.ID, p.Harmony.Label(), p.BaseColor, joinHex(p.Colors))
	}
	return writer.Flush()
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type removeOptions struct {
	force bool
}

func newRemoveCmd(flags *rootFlags) *cobra.Command {
	opts := &removeOptions{}

	cmd := &cobra.Command{
		Use:   "remove <palette-id>",
		Short: "Remove a saved palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, flags, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Remove without confirmation")

	return cmd
}

func runRemove(cmd *cobra.Command, flags *rootFlags, paletteID string, opts *removeOptions) error {
	paletteID = strings.TrimSpace(paletteID)
	if paletteID == "" {
		return newCommandError("remove palette", "validating palette ID", errors.New("palette ID cannot be empty"), "Provide the palette ID you wish to remove.")
	}

	app, err := loadApp("remove palette", flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	st := app.OpenStore()
	palette, ok := st.Get(paletteID)
	if !ok {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No saved palette with ID '%s'; nothing removed.\n", paletteID)
		return nil
	}

	if !opts.force {
		confirmed, err := confirmRemoval(cmd, paletteID, palette.Harmony.Label())
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if _, err := st.Remove(paletteID); err != nil {
		return newCommandError("remove palette", fmt.Sprintf("removing palette %q", paletteID), err, "Check disk space and file permissions, then retry.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed palette '%s'\n", paletteID)
	return nil
}

func confirmRemoval(cmd *cobra.Command, paletteID, label string) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("remove palette", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Remove %s palette '%s'? [y/N]: ", label, paletteID)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

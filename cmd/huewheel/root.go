package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	dataDir    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "huewheel",
		Short:         "huewheel builds color palettes from harmony rules on a color wheel",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the interactive editor
			if len(args) == 0 {
				return runUI(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the configuration file (default ~/.huewheel/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "Directory holding saved palettes (overrides the configuration)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newUICmd(flags))
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newHarmoniesCmd())
	cmd.AddCommand(newSaveCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newRemoveCmd(flags))
	cmd.AddCommand(newRandomCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

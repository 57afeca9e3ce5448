package main

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huewheel/internal/tui"
)

func newUICmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive palette editor",
		Long:  `Open the interactive editor: pick a base color on the wheel, switch harmony rules, and save palettes.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, flags)
		},
	}

	return cmd
}

func runUI(cmd *cobra.Command, flags *rootFlags) error {
	bootstrap, err := loadApp("open the editor", flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	// The editor owns the terminal, so logs go to a file under the data directory.
	logPath := bootstrap.Config.LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return newCommandError("open the editor", "creating the data directory", err, "Check that you have write access to "+bootstrap.Config.DataDir+".")
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return newCommandError("open the editor", "opening the log file", err, "Check that you have write access to "+logPath+".")
	}
	defer logFile.Close()

	app, err := loadApp("open the editor", flags, logFile)
	if err != nil {
		return err
	}
	app.Logger.Info("editor started")

	model := tui.NewModel(tui.Options{
		Store:         app.OpenStore(),
		Namer:         app.Namer(),
		NamingTimeout: app.Config.NamingTimeout(),
		Diameter:      app.Config.Wheel.Diameter,
		Base:          app.Config.BaseColor(),
		Harmony:       app.Config.Harmony(),
		Logger:        app.Logger,
	})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		app.Logger.Error(err, "editor exited with error")
		return newCommandError("open the editor", "running the terminal UI", err, "Run huewheel from an interactive terminal.")
	}

	app.Logger.Info("editor closed")
	return nil
}

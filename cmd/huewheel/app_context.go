package main

import (
	"io"
	"net/http"
	"strings"

	"github.com/alexisbeaulieu97/huewheel/internal/config"
	"github.com/alexisbeaulieu97/huewheel/internal/logger"
	"github.com/alexisbeaulieu97/huewheel/internal/naming"
	"github.com/alexisbeaulieu97/huewheel/internal/store"
)

// AppContext bundles the configuration and services a command needs.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
}

// loadApp resolves configuration for a command. Logs go to logOut.
func loadApp(operation string, flags *rootFlags, logOut io.Writer) (*AppContext, error) {
	path := flags.configPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, newCommandError(operation, "determining configuration path", err, "Ensure your HOME directory is set correctly or pass --config.")
		}
		path = defaultPath
	}

	cfg, err := config.Load(path, nil)
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, "Fix the configuration errors shown above and try again.")
	}
	if dir := strings.TrimSpace(flags.dataDir); dir != "" {
		cfg.DataDir = config.ExpandHome(dir)
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: logOut, Component: "cli"})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of debug, info, warn or error for log_level.")
	}

	log.WithFields(map[string]any{"config": path, "data_dir": cfg.DataDir}).Debug("configuration loaded")
	return &AppContext{Config: cfg, Logger: log}, nil
}

// OpenStore opens the saved palette list under the data directory.
func (a *AppContext) OpenStore() *store.Store {
	return store.Open(a.Config.PalettesPath(), a.Logger.WithComponent("store"))
}

// Namer returns the configured naming service. Without an endpoint the
// palette is named after its harmony rule.
func (a *AppContext) Namer() naming.Namer {
	if a.Config.Naming.Endpoint == "" {
		return nil
	}
	return &naming.HTTPNamer{
		Endpoint: a.Config.Naming.Endpoint,
		Client:   &http.Client{Timeout: a.Config.NamingTimeout()},
	}
}

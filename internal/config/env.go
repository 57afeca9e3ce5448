package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the file configuration.
const (
	EnvDataDir        = "HUEWHEEL_DATA_DIR"
	EnvLogLevel       = "HUEWHEEL_LOG_LEVEL"
	EnvNamingEndpoint = "HUEWHEEL_NAMING_ENDPOINT"
)

// LoadDotEnv reads KEY=value pairs from the given files into the process
// environment. Missing files are skipped and variables already set win.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ApplyEnv overlays environment overrides onto cfg.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(EnvDataDir); ok && strings.TrimSpace(v) != "" {
		cfg.DataDir = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvNamingEndpoint); ok && strings.TrimSpace(v) != "" {
		cfg.Naming.Endpoint = strings.TrimSpace(v)
	}
}

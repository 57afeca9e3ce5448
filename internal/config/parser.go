package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/huewheel/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the configuration at path on top of the defaults, applies
// environment overrides and validates the result. A missing file is not an
// error: the defaults are used instead.
func Load(path string, lookup func(string) (string, bool)) (*Config, error) {
	dataDir, err := DefaultDataDir()
	if err != nil {
		dataDir = ".huewheel"
	}
	cfg := Default(dataDir)

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, apperrors.NewParseError(path, 0, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, apperrors.NewParseError(path, extractLine(err), err)
			}
		}
	}

	ApplyEnv(&cfg, lookup)
	cfg.DataDir = ExpandHome(cfg.DataDir)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseConfig parses a configuration file that must exist.
func ParseConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return Load(path, func(string) (string, bool) { return "", false })
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

package config

import (
	"path/filepath"
	"time"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
	"github.com/alexisbeaulieu97/huewheel/internal/store"
)

// Config represents the huewheel configuration document.
type Config struct {
	DataDir        string `yaml:"data_dir" validate:"required"`
	LogLevel       string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	DefaultBase    string `yaml:"default_base,omitempty" validate:"omitempty,hexcolor6"`
	DefaultHarmony string `yaml:"default_harmony,omitempty" validate:"omitempty,harmony_rule"`
	Wheel          Wheel  `yaml:"wheel,omitempty"`
	Naming         Naming `yaml:"naming,omitempty"`
}

// Wheel controls how the color wheel is drawn in the terminal.
type Wheel struct {
	// Diameter is measured in logical pixels; each one takes two terminal columns.
	Diameter int `yaml:"diameter,omitempty" validate:"min=7,max=61"`
}

// Naming configures the palette naming service.
type Naming struct {
	Endpoint  string `yaml:"endpoint,omitempty" validate:"omitempty,url"`
	TimeoutMS int    `yaml:"timeout_ms,omitempty" validate:"min=100,max=60000"`
}

const (
	DefaultLogLevel  = "info"
	DefaultDiameter  = 21
	DefaultTimeoutMS = 3000
)

// InitialBase is the starting color when no default_base is configured.
var InitialBase = color.HSL{H: 333, S: 93, L: 64}

// Default returns the configuration used when no file is present.
func Default(dataDir string) Config {
	return Config{
		DataDir:        dataDir,
		LogLevel:       DefaultLogLevel,
		DefaultHarmony: string(harmony.Analogous),
		Wheel:          Wheel{Diameter: DefaultDiameter},
		Naming:         Naming{TimeoutMS: DefaultTimeoutMS},
	}
}

// BaseColor resolves the configured starting color.
func (c Config) BaseColor() color.HSL {
	if c.DefaultBase == "" {
		return InitialBase
	}
	hsl, err := color.HexToHSL(c.DefaultBase)
	if err != nil {
		return InitialBase
	}
	return hsl
}

// Harmony resolves the configured starting rule.
func (c Config) Harmony() harmony.Rule {
	rule, err := harmony.ParseRule(c.DefaultHarmony)
	if err != nil {
		return harmony.Analogous
	}
	return rule
}

// NamingTimeout is the deadline applied to a single naming request.
func (c Config) NamingTimeout() time.Duration {
	return time.Duration(c.Naming.TimeoutMS) * time.Millisecond
}

// PalettesPath is the location of the saved palette list.
func (c Config) PalettesPath() string {
	return filepath.Join(c.DataDir, store.FileName)
}

// LogPath is where the interactive UI writes its log while it owns the terminal.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "huewheel.log")
}

package appconfig

import (
	"os"
	"path/filepath"

	"pkt.systems/tabstate/internal/discover"
	"pkt.systems/tabstate/internal/logx"
	"pkt.systems/tabstate/internal/output"
)

// Config is the top-level application configuration.
type Config struct {
	ConfigVersion int           `mapstructure:"config_version" yaml:"config_version"`
	Inputs        []string      `mapstructure:"inputs" yaml:"inputs"`
	Workers       int           `mapstructure:"workers" yaml:"workers"`
	Output        OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging       LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// CurrentConfigVersion marks the supported config version.
const CurrentConfigVersion = 1

// StdoutPath selects standard output as the output destination.
const StdoutPath = "stdout"

// OutputConfig controls where and how records are written.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	Path   string `mapstructure:"path" yaml:"path"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Inputs:        []string{discover.DefaultPattern},
		Workers:       0,
		Output: OutputConfig{
			Format: string(output.FormatJSONL),
			Path:   StdoutPath,
		},
		Logging: LoggingConfig{
			Level: string(logx.LevelQuiet),
		},
	}
}

// DefaultConfigPath returns the standard config path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tabstate", "config.yaml"), nil
}

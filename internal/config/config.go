// Package config provides configuration management for dtopr using Viper.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/dtopr/internal/paths"
)

// Picker styles for category selection.
const (
	PickerNumbered = "numbered"
	PickerFuzzy    = "fuzzy"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version     int    `mapstructure:"version" yaml:"version"`
	InstallDir  string `mapstructure:"install_dir" yaml:"install_dir"`
	ClearScreen bool   `mapstructure:"clear_screen" yaml:"clear_screen"`
	Picker      string `mapstructure:"picker" yaml:"picker"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:     1,
		InstallDir:  paths.SystemApplicationsDir,
		ClearScreen: true,
		Picker:      PickerNumbered,
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("DTOPR")
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault("version", d.Version)
	viper.SetDefault("install_dir", d.InstallDir)
	viper.SetDefault("clear_screen", d.ClearScreen)
	viper.SetDefault("picker", d.Picker)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when nothing is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load, defaults apply
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// Current returns the configuration as currently resolved by Viper,
// including flag and environment overrides.
func Current() *Config {
	return &Config{
		Version:     viper.GetInt("version"),
		InstallDir:  viper.GetString("install_dir"),
		ClearScreen: viper.GetBool("clear_screen"),
		Picker:      viper.GetString("picker"),
	}
}

// Keys lists the settable configuration keys.
func Keys() []string {
	return []string{"version", "install_dir", "clear_screen", "picker"}
}

// Package config resolves devtools settings from flags, DEVTOOLS_* environment
// variables and an optional config.yaml, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "DEVTOOLS"

// Log levels accepted by LogConfig.Level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Config is the resolved application configuration.
type Config struct {
	// Catalog is an optional YAML file replacing the compiled-in catalog.
	Catalog    string
	Accessible bool
	Log        LogConfig
}

// LogConfig controls the debug log. An empty File disables logging.
type LogConfig struct {
	File  string
	Level string
}

// Validate checks the log settings.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required, validation.In(LevelDebug, LevelInfo, LevelWarn, LevelError)),
	)
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
	}
	return nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Log: LogConfig{Level: LevelInfo}}
}

// New returns a viper instance with defaults and environment binding set up.
// ACCESSIBLE is honored without the prefix, matching the no-color convention.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("accessible", d.Accessible)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	_ = v.BindEnv("accessible", EnvPrefix+"_ACCESSIBLE", "ACCESSIBLE")
	return v
}

// BindFlags maps command-line flags onto config keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range map[string]string{
		"catalog":   "catalog",
		"log.file":  "log-file",
		"log.level": "log-level",
	} {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding --%s: %w", name, err)
			}
		}
	}
	return nil
}

// Load reads the optional config file and returns the validated settings.
// A missing file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if err := readConfigFile(v); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Catalog:    v.GetString("catalog"),
		Accessible: v.GetBool("accessible"),
		Log: LogConfig{
			File:  v.GetString("log.file"),
			Level: strings.ToLower(v.GetString("log.level")),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func readConfigFile(v *viper.Viper) error {
	dir := configDir()
	if dir == "" {
		return nil
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// configDir returns $XDG_CONFIG_HOME/devtools, falling back to
// ~/.config/devtools.
func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "devtools")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "devtools")
}

// Package config resolves nower settings from defaults, an optional config
// file, NOWER_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/stefanpenner/nower/pkg/planner"
	"github.com/stefanpenner/nower/pkg/store"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "NOWER"

type Config struct {
	File     string `mapstructure:"file"`
	Strategy string `mapstructure:"strategy"`
	Lookup   string `mapstructure:"lookup"`
	LogLevel string `mapstructure:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		File:     store.DefaultPath(),
		Strategy: string(planner.StrategyFirstMatch),
		Lookup:   string(planner.LookupTopLevel),
		LogLevel: "warn",
	}
}

// configDirs lists the directories searched for config.{yaml,toml,json}.
// Only nower's own config directories are searched.
func configDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "nower"))
	}
	home, _ := os.UserHomeDir()
	dirs = append(dirs, filepath.Join(home, ".config", "nower"))
	return dirs
}

// Load reads settings into a Config. v may already carry bound flags; an
// explicit configFile must exist, while the searched locations are optional.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	defaults := DefaultConfig()
	v.SetDefault("file", defaults.File)
	v.SetDefault("strategy", defaults.Strategy)
	v.SetDefault("lookup", defaults.Lookup)
	v.SetDefault("log_level", defaults.LogLevel)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		for _, dir := range configDirs() {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = expandHome(cfg.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("config: file is required")
	}
	if _, err := planner.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := planner.ParseLookup(c.Lookup); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Planner returns a planner configured with the strategy and lookup scope.
// Validate must have succeeded.
func (c *Config) Planner() *planner.Planner {
	p := planner.New()
	p.Strategy, _ = planner.ParseStrategy(c.Strategy)
	p.Lookup, _ = planner.ParseLookup(c.Lookup)
	return p
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for abortr.
type Config struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	ToolTimeout string `mapstructure:"tool_timeout" yaml:"tool_timeout"`
	Port        int    `mapstructure:"port" yaml:"port"`
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("abortr")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("tool_timeout", "")
	v.SetDefault("port", 0)

	// Setup ENV binding with ABORTR_ prefix
	v.SetEnvPrefix("ABORTR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better parsing
	if err := v.BindEnv("log_level", "ABORTR_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("binding log_level env: %w", err)
	}
	if err := v.BindEnv("log_file", "ABORTR_LOG_FILE"); err != nil {
		return nil, fmt.Errorf("binding log_file env: %w", err)
	}
	if err := v.BindEnv("tool_timeout", "ABORTR_TOOL_TIMEOUT"); err != nil {
		return nil, fmt.Errorf("binding tool_timeout env: %w", err)
	}
	if err := v.BindEnv("port", "ABORTR_PORT"); err != nil {
		return nil, fmt.Errorf("binding port env: %w", err)
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Timeout parses the configured per-call tool timeout. An empty value
// means no timeout.
func (c *Config) Timeout() (time.Duration, error) {
	if c.ToolTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.ToolTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid tool_timeout %q: %w", c.ToolTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid tool_timeout %q: must not be negative", c.ToolTimeout)
	}
	return d, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/abortr/abortr.yml or $XDG_CONFIG_HOME/abortr/abortr.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "abortr", "abortr.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "abortr", "abortr.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./abortr.yml in the current working directory.
func ProjectPath() string {
	return "abortr.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return writeFile(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return writeFile(ProjectPath(), cfg)
}

func writeFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

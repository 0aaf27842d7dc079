// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for ideaeval.
type Config struct {
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string `mapstructure:"log_file" yaml:"log_file"`
	ExportDir     string `mapstructure:"export_dir" yaml:"export_dir"`
	ExportFormat  string `mapstructure:"export_format" yaml:"export_format"`
	MarkdownStyle string `mapstructure:"markdown_style" yaml:"markdown_style"`
}

// Default returns the configuration written by `ideaeval setup`.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		LogFile:       "",
		ExportDir:     ".",
		ExportFormat:  "md",
		MarkdownStyle: "dark",
	}
}

// envKeys maps config keys to their environment variables.
var envKeys = map[string]string{
	"log_level":      "IDEAEVAL_LOG_LEVEL",
	"log_file":       "IDEAEVAL_LOG_FILE",
	"export_dir":     "IDEAEVAL_EXPORT_DIR",
	"export_format":  "IDEAEVAL_EXPORT_FORMAT",
	"markdown_style": "IDEAEVAL_MARKDOWN_STYLE",
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("ideaeval")

	def := Default()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("export_dir", def.ExportDir)
	v.SetDefault("export_format", def.ExportFormat)
	v.SetDefault("markdown_style", def.MarkdownStyle)

	v.SetEnvPrefix("IDEAEVAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Global config first, project config merged on top
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

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

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/ideaeval/ideaeval.yml or $XDG_CONFIG_HOME/ideaeval/ideaeval.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ideaeval", "ideaeval.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ideaeval", "ideaeval.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "ideaeval.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
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

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFileName = ".idelisp.yaml"

// Config models the optional YAML settings file.
type Config struct {
	Prompt           string   `yaml:"prompt"`
	HistoryFile      string   `yaml:"history_file"`
	MaxDepth         int      `yaml:"max_depth"`
	CallerFrameMerge bool     `yaml:"caller_frame_merge"`
	LogLevel         string   `yaml:"log_level"`
	Prelude          []string `yaml:"prelude"`
}

func DefaultConfig() *Config {
	return &Config{
		Prompt:      ">> ",
		HistoryFile: defaultPath(".idelisp_history"),
		MaxDepth:    DefaultMaxDepth,
		LogLevel:    "info",
	}
}

func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, name)
}

// LoadConfig reads path over the defaults. With an empty path the file in the
// home directory is used if it exists.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultPath(configFileName)
		if path == "" {
			return cfg, nil
		}
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	if err := cfg.decode(file); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	// prelude entries are relative to the config file
	dir := filepath.Dir(path)
	for i, p := range cfg.Prelude {
		if !filepath.IsAbs(p) {
			cfg.Prelude[i] = filepath.Join(dir, p)
		}
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}

// Options translates the evaluation settings into interpreter options.
func (c *Config) Options() []Option {
	return []Option{
		WithMaxDepth(c.MaxDepth),
		WithCallerFrameMerge(c.CallerFrameMerge),
	}
}

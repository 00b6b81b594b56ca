package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPageSize   = 100
	DefaultDebounceMS = 250
)

// AppConfig represents the application configuration
type AppConfig struct {
	Data    DataConfig    `yaml:"data"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// DataConfig points at the offer catalogue. An empty source means the built-in catalogue.
type DataConfig struct {
	Source string `yaml:"source"`
}

type DisplayConfig struct {
	PageSize   int `yaml:"page_size"`
	DebounceMS int `yaml:"debounce_ms"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Debounce returns the search debounce delay
func (d DisplayConfig) Debounce() time.Duration {
	return time.Duration(d.DebounceMS) * time.Millisecond
}

// Default returns the configuration used when no file is found
func Default() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			PageSize:   DefaultPageSize,
			DebounceMS: DefaultDebounceMS,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration from path, or from the first candidate location
// when path is empty. A missing file yields the defaults. Environment variables
// LOG_LEVEL, OFFERBOARD_DATA and OFFERBOARD_PAGE_SIZE override file values.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path == "" {
		path = findConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	normalize(cfg)
	return cfg, nil
}

func findConfigPath() string {
	paths := []string{
		"offerboard.yaml",
		"config.yaml",
	}
	if home, err := os.UserConfigDir(); err == nil {
		paths = append(paths, home+"/offerboard/config.yaml")
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return "offerboard.yaml"
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if v := os.Getenv("OFFERBOARD_DATA"); v != "" {
		cfg.Data.Source = v
	}

	if s := os.Getenv("OFFERBOARD_PAGE_SIZE"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return fmt.Errorf("OFFERBOARD_PAGE_SIZE must be a positive integer, got %q", s)
		}
		cfg.Display.PageSize = v
	}

	return nil
}

func normalize(cfg *AppConfig) {
	if cfg.Display.PageSize < 1 {
		cfg.Display.PageSize = DefaultPageSize
	}
	if cfg.Display.DebounceMS < 0 {
		cfg.Display.DebounceMS = DefaultDebounceMS
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

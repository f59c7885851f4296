package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAngle        = "60"
	DefaultTableStart   = 0
	DefaultTableEnd     = 10
	DefaultPlotWidth    = 72
	DefaultPlotHeight   = 12
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 700
	DefaultFPS          = 60
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the calculator configuration read from YAML.
type Config struct {
	Angle  string       `yaml:"angle"`
	Table  TableConfig  `yaml:"table"`
	Plot   PlotConfig   `yaml:"plot"`
	Window WindowConfig `yaml:"window"`
}

type TableConfig struct {
	Show  bool `yaml:"show"`
	Start int  `yaml:"start"`
	End   int  `yaml:"end"`
}

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Angle: DefaultAngle,
		Table: TableConfig{
			Start: DefaultTableStart,
			End:   DefaultTableEnd,
		},
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			FPS:    DefaultFPS,
		},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault returns the defaults when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Validate rejects non-positive plot and window sizes and frame rates.
func (c *Config) Validate() error {
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("%w: plot size %dx%d", ErrInvalidConfig, c.Plot.Width, c.Plot.Height)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.Window.FPS)
	}
	return nil
}

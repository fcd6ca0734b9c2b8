package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/waveviz/internal/wave"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth   = 1280
	DefaultHeight  = 720
	DefaultFPS     = 60
	DefaultTitle   = "waveviz"
	DefaultYMin    = -4.0
	DefaultYMax    = 4.0
	DefaultTheme   = "matplotlib"
	DefaultDataDir = ".waveviz"

	// Pitch that wavelength 1 maps to when sonifying.
	DefaultBaseFreq = 110.0
	DefaultVolume   = 0.2
)

var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Grid    GridConfig   `yaml:"grid"`
	Initial wave.Params  `yaml:"initial"`
	Plot    PlotConfig   `yaml:"plot"`
	Window  WindowConfig `yaml:"window"`
	Audio   AudioConfig  `yaml:"audio"`
	Theme   string       `yaml:"theme"`
	DataDir string       `yaml:"data_dir"`
}

type GridConfig struct {
	Samples int     `yaml:"samples"`
	Start   float64 `yaml:"start"`
	Stop    float64 `yaml:"stop"`
}

type PlotConfig struct {
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

type AudioConfig struct {
	Enabled  bool    `yaml:"enabled"`
	BaseFreq float64 `yaml:"base_freq"`
	Volume   float64 `yaml:"volume"`
}

func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Samples: wave.DefaultSamples,
			Start:   wave.DefaultStart,
			Stop:    wave.DefaultStop,
		},
		Initial: wave.DefaultParams(),
		Plot:    PlotConfig{YMin: DefaultYMin, YMax: DefaultYMax},
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
			Title:  DefaultTitle,
		},
		Audio:   AudioConfig{BaseFreq: DefaultBaseFreq, Volume: DefaultVolume},
		Theme:   DefaultTheme,
		DataDir: DefaultDataDir,
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := c.BuildGrid(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Initial.Validate(); err != nil {
		return fmt.Errorf("%w: initial %w", ErrInvalid, err)
	}
	if !(c.Plot.YMax > c.Plot.YMin) {
		return fmt.Errorf("%w: y_max %.2f must exceed y_min %.2f", ErrInvalid, c.Plot.YMax, c.Plot.YMin)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %.2f outside [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

func (c *Config) BuildGrid() (wave.Grid, error) {
	return wave.Linspace(c.Grid.Start, c.Grid.Stop, c.Grid.Samples)
}

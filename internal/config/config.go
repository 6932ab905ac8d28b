// Package config holds the settings shared by the hexlife binaries. Values
// come from defaults, an optional YAML file and command-line flags, with flags
// taking precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hex-life/pkg/sims/hexlife"
)

// Config represents the full set of runtime parameters.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Display DisplayConfig `yaml:"display"`
	Run     RunConfig     `yaml:"run"`

	// Path is the YAML file the config was loaded from, if any.
	Path string `yaml:"-"`
}

// GridConfig sizes and seeds the universe.
type GridConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
}

// DisplayConfig controls presentation and pacing.
type DisplayConfig struct {
	Radius float64 `yaml:"radius"` // hex outer radius in pixels
	TPS    int     `yaml:"tps"`
}

// RunConfig controls headless runs.
type RunConfig struct {
	Generations int `yaml:"generations"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	d := hexlife.DefaultConfig()
	return &Config{
		Grid:    GridConfig{Width: d.Width, Height: d.Height, Seed: d.Seed},
		Display: DisplayConfig{Radius: 20, TPS: 60},
		Run:     RunConfig{Generations: 100},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Path, "config", c.Path, "YAML config file")
	fs.IntVar(&c.Grid.Width, "width", c.Grid.Width, "grid width in hexes")
	fs.IntVar(&c.Grid.Height, "height", c.Grid.Height, "grid height in hexes")
	fs.Int64Var(&c.Grid.Seed, "seed", c.Grid.Seed, "seed for the initial grid")
	fs.Float64Var(&c.Display.Radius, "radius", c.Display.Radius, "hex radius in pixels")
	fs.IntVar(&c.Display.TPS, "tps", c.Display.TPS, "ticks per second")
	fs.IntVar(&c.Run.Generations, "generations", c.Run.Generations, "generations to run headless")
}

// Load reads configuration from a YAML file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse binds a fresh Config to fs and parses args. When -config names a file
// it is loaded first and any flag given explicitly on the command line is
// applied on top of it.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := Default()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		fromFile, err := Load(cfg.Path)
		if err != nil {
			return nil, err
		}
		overlay := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
		fromFile.Bind(overlay)
		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if ov := overlay.Lookup(f.Name); ov != nil && setErr == nil {
				setErr = overlay.Set(f.Name, f.Value.String())
			}
		})
		if setErr != nil {
			return nil, fmt.Errorf("failed to apply flag overrides: %w", setErr)
		}
		cfg = fromFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every setting that is out of range.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Width < 1 {
		errs = append(errs, fmt.Errorf("width must be >= 1, got %d", c.Grid.Width))
	}
	if c.Grid.Height < 1 {
		errs = append(errs, fmt.Errorf("height must be >= 1, got %d", c.Grid.Height))
	}
	if c.Display.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius must be positive, got %g", c.Display.Radius))
	}
	if c.Display.TPS < 0 {
		errs = append(errs, fmt.Errorf("tps must be >= 0, got %d", c.Display.TPS))
	}
	if c.Run.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations must be >= 0, got %d", c.Run.Generations))
	}
	return errors.Join(errs...)
}

// Sim converts the grid section into a universe configuration.
func (c *Config) Sim() hexlife.Config {
	return hexlife.Config{Width: c.Grid.Width, Height: c.Grid.Height, Seed: c.Grid.Seed}
}

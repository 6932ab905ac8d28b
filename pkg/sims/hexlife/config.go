package hexlife

import "strconv"

// Config holds the parameters for a universe.
type Config struct {
	Width  int
	Height int
	Seed   int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 20, Height: 20, Seed: 42}
}

// FromMap populates a Config from a string map. Unknown keys and unparsable
// values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// NewWithConfig returns a universe sized by cfg and randomized from cfg.Seed.
func NewWithConfig(cfg Config) *Universe {
	u := alloc(cfg.Width, cfg.Height)
	u.Reset(cfg.Seed)
	return u
}

package turmite

import "strconv"

// Config controls the turmite world.
type Config struct {
	Width  int
	Height int
	Ants   int
	Speed  int
}

// DefaultConfig returns the standard configuration: four ants on a 100x100
// grid advancing twenty ticks per frame.
func DefaultConfig() Config {
	return Config{Width: 100, Height: 100, Ants: 4, Speed: 20}
}

// FromMap populates a Config from a string map. Invalid entries keep their
// defaults.
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
	if v, ok := cfg["ants"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Ants = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Speed = parsed
		}
	}
	return c
}

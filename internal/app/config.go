package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"turmite/internal/core"
	"turmite/internal/export"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Width  int
	Height int
	// Ants of zero keeps the sim's default agent count.
	Ants  int
	Speed int
	Zoom  int
	Seed  int64
	TPS   int

	Generate string
	Cycles   int
	Format   string

	Serve string
	FPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:    "turmite",
		Width:  100,
		Height: 100,
		Speed:  20,
		Zoom:   1,
		Seed:   1337,
		TPS:    60,
		Format: export.FormatPNG,
		FPS:    15,
	}
}

// Bind attaches the configuration to the provided FlagSet. Short aliases
// share storage with their long names.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (turmite, trails)")
	fs.IntVar(&c.Width, "width", c.Width, "width of canvas")
	fs.IntVar(&c.Width, "x", c.Width, "alias for -width")
	fs.IntVar(&c.Height, "height", c.Height, "height of canvas")
	fs.IntVar(&c.Height, "y", c.Height, "alias for -height")
	fs.IntVar(&c.Ants, "ants", c.Ants, "number of ants (0 keeps the sim default)")
	fs.IntVar(&c.Speed, "speed", c.Speed, "iterations per update")
	fs.IntVar(&c.Speed, "s", c.Speed, "alias for -speed")
	fs.IntVar(&c.Zoom, "zoom", c.Zoom, "initial zoom, also used for generated frames")
	fs.IntVar(&c.Zoom, "z", c.Zoom, "alias for -zoom")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for agent placement")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window updates per second")
	fs.StringVar(&c.Generate, "generate", c.Generate, "render frames into this existing directory instead of opening a window")
	fs.StringVar(&c.Generate, "g", c.Generate, "alias for -generate")
	fs.IntVar(&c.Cycles, "cycles", c.Cycles, "number of frames, only with -generate")
	fs.IntVar(&c.Cycles, "c", c.Cycles, "alias for -cycles")
	fs.StringVar(&c.Format, "format", c.Format, "frame format for -generate (png, avi)")
	fs.StringVar(&c.Serve, "serve", c.Serve, "stream frames over websocket on this address, e.g. :8080")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second for -serve and avi output")
}

// Validate reports the first invalid setting. It runs before any sim is
// constructed.
func (c *Config) Validate() error {
	if _, ok := core.Sims()[c.Sim]; !ok {
		return fmt.Errorf("%w: unknown sim %q (have %v)", ErrInvalidConfig, c.Sim, core.Names())
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Ants < 0 {
		return fmt.Errorf("%w: ants must not be negative, got %d", ErrInvalidConfig, c.Ants)
	}
	if c.Speed < 0 {
		return fmt.Errorf("%w: speed must not be negative, got %d", ErrInvalidConfig, c.Speed)
	}
	if c.Zoom < 1 {
		return fmt.Errorf("%w: zoom must be at least 1, got %d", ErrInvalidConfig, c.Zoom)
	}
	if c.Cycles < 0 {
		return fmt.Errorf("%w: cycles must not be negative, got %d", ErrInvalidConfig, c.Cycles)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.Generate != "" && c.Serve != "" {
		return fmt.Errorf("%w: -generate and -serve are mutually exclusive", ErrInvalidConfig)
	}
	if c.Generate != "" {
		if c.Format != export.FormatPNG && c.Format != export.FormatAVI {
			return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
		}
		if err := export.CheckDir(c.Generate); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// SimOptions converts the config into the key/value map sim factories read.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"speed": strconv.Itoa(c.Speed),
		"seed":  strconv.FormatInt(c.Seed, 10),
	}
	if c.Ants > 0 {
		opts["ants"] = strconv.Itoa(c.Ants)
	}
	return opts
}

// NewSim validates nothing; callers run Validate first.
func (c *Config) NewSim() core.Sim {
	return core.Sims()[c.Sim](c.SimOptions())
}

package trails

import (
	"fmt"
	"image/color"

	"turmite/internal/core"
	"turmite/internal/render"
	"turmite/pkg/ant"
	pcore "turmite/pkg/core"
)

// Sim runs colored ants on one shared grid. Every ant erases any mark it
// steps on, its own or another's.
type Sim struct {
	cfg   Config
	seed  int64
	world *ant.World[color.RGBA]
	cells []color.RGBA
}

// New creates a trails sim and places its ants using cfg.Seed.
func New(cfg Config) *Sim {
	s := &Sim{cfg: cfg}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "trails" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size {
	w, h := s.world.Size()
	return core.Size{W: w, H: h}
}

// Reset blanks the grid and scatters the ants. A zero seed falls back to the
// configured one.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.seed = seed
	ants := Scatter(pcore.NewRNG(seed), s.cfg.Width, s.cfg.Height, s.cfg.Ants)
	s.world = ant.NewWorld[color.RGBA](s.cfg.Width, s.cfg.Height, ant.Trails{}, ants)
	s.world.SetSpeed(s.cfg.Speed)
}

// Scatter draws n ants with independent positions, headings and trail
// colors. Colors never equal the background.
func Scatter(rng *pcore.RNG, w, h, n int) []ant.Agent[color.RGBA] {
	blank := ant.Trails{}.Blank()
	ants := make([]ant.Agent[color.RGBA], n)
	for i := range ants {
		a := ant.Agent[color.RGBA]{
			Pos:     ant.Point{X: rng.IntN(w), Y: rng.IntN(h)},
			Heading: ant.Heading(rng.IntN(4)),
			Trail:   rng.Opaque(),
		}
		for a.Trail == blank {
			a.Trail = rng.Opaque()
		}
		ants[i] = a
	}
	return ants
}

// Step runs one tick.
func (s *Sim) Step() { s.world.Tick() }

// Advance runs Speed ticks.
func (s *Sim) Advance() { s.world.Advance() }

// Speed reports ticks per Advance.
func (s *Sim) Speed() int { return s.world.Speed() }

// Ticks reports completed ticks since the last Reset.
func (s *Sim) Ticks() uint64 { return s.world.Ticks() }

// World exposes the underlying world.
func (s *Sim) World() *ant.World[color.RGBA] { return s.world }

// Render copies cell colors straight into buf; stored states are already
// display colors.
func (s *Sim) Render(buf []byte) {
	s.cells = s.world.Snapshot(s.cells)
	render.FillColors(buf, s.cells)
}

// Census counts cells per color, keyed as #rrggbbaa.
func (s *Sim) Census() map[string]int {
	out := make(map[string]int)
	for c, n := range s.world.Census() {
		out[fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)] = n
	}
	return out
}

// AgentViews reports every ant for overlays.
func (s *Sim) AgentViews() []core.Agent {
	ants := s.world.Agents()
	out := make([]core.Agent, len(ants))
	for i, a := range ants {
		out[i] = core.Agent{X: a.Pos.X, Y: a.Pos.Y, Heading: int(a.Heading)}
	}
	return out
}

// Parameters reports the active configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		core.IntParam("w", "Width", s.cfg.Width),
		core.IntParam("h", "Height", s.cfg.Height),
		core.IntParam("ants", "Ants", s.cfg.Ants),
		core.IntParam("speed", "Speed", s.world.Speed()),
		core.Int64Param("seed", "Seed", s.seed),
	}}
}

// ParameterControls lists the runtime-adjustable parameters.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{Key: "speed", Label: "Speed", Step: 5, Min: 0, Max: 10000}}
}

// SetIntParameter updates speed. Other keys are rejected.
func (s *Sim) SetIntParameter(key string, value int) bool {
	if key != "speed" {
		return false
	}
	if value < 0 {
		value = 0
	}
	s.cfg.Speed = value
	s.world.SetSpeed(value)
	return true
}

func init() {
	core.Register("trails", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}

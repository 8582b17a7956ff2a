package turmite

import (
	"strconv"

	"turmite/internal/core"
	"turmite/internal/render"
	"turmite/pkg/ant"
)

// Sim runs sixteen-state turmites that all start on the centre cell.
type Sim struct {
	cfg   Config
	world *ant.World[uint8]
	cells []uint8
}

// New creates a turmite sim from cfg.
func New(cfg Config) *Sim {
	s := &Sim{cfg: cfg}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "turmite" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size {
	w, h := s.world.Size()
	return core.Size{W: w, H: h}
}

// Reset clears the grid and places the ants again. Placement is fixed, so the
// seed is unused.
func (s *Sim) Reset(int64) {
	ants := ant.Centered[uint8](s.cfg.Width, s.cfg.Height, s.cfg.Ants, 0)
	s.world = ant.NewWorld[uint8](s.cfg.Width, s.cfg.Height, ant.Turmite16{}, ants)
	s.world.SetSpeed(s.cfg.Speed)
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
func (s *Sim) World() *ant.World[uint8] { return s.world }

// Render maps cell states through the display palette.
func (s *Sim) Render(buf []byte) {
	s.cells = s.world.Snapshot(s.cells)
	render.FillPalette(buf, s.cells, palette[:])
}

// Census counts cells per state, keyed by the decimal state value.
func (s *Sim) Census() map[string]int {
	out := make(map[string]int)
	for state, n := range s.world.Census() {
		out[strconv.Itoa(int(state))] = n
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
	core.Register("turmite", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}

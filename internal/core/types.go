package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract every ant world exposes to the drivers (window,
// exporter, stream). Drivers never mutate simulation state except through
// Reset, Step, Advance and the parameter setters.
type Sim interface {
	Name() string
	Size() Size
	// Reset rebuilds the initial grid and agents. Seeded sims must produce
	// identical state for identical seeds.
	Reset(seed int64)
	// Step runs a single tick.
	Step()
	// Advance runs Speed ticks.
	Advance()
	Speed() int
	Ticks() uint64
	// Render writes the current grid as RGBA bytes, row-major, into buf,
	// which must hold 4*W*H bytes.
	Render(buf []byte)
}

// Agent is a display-side view of one ant.
type Agent struct {
	X, Y    int
	Heading int
}

// AgentsProvider is implemented by sims that can report their agents.
type AgentsProvider interface {
	AgentViews() []Agent
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	out := make([]string, 0, len(sims))
	for name := range sims {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

package ant

// World owns one grid and an ordered set of agents. Each tick steps every
// agent once, in creation order, and each step sees the grid writes of the
// agents before it. A World is not safe for concurrent use.
type World[S comparable] struct {
	grid  *Grid[S]
	rule  Rule[S]
	ants  []Agent[S]
	speed int
	ticks uint64
}

// NewWorld builds a w*h world filled with the rule's blank state. Agent
// positions are wrapped into the grid; the slice is copied.
func NewWorld[S comparable](w, h int, rule Rule[S], ants []Agent[S]) *World[S] {
	wd := &World[S]{
		grid:  NewGrid(w, h, rule.Blank()),
		rule:  rule,
		speed: 1,
	}
	for _, a := range ants {
		wd.AddAgent(a)
	}
	return wd
}

// AddAgent appends a to the update order.
func (w *World[S]) AddAgent(a Agent[S]) {
	a.Pos = w.grid.Wrap(a.Pos)
	a.Heading %= 4
	w.ants = append(w.ants, a)
}

// Size returns the grid dimensions.
func (w *World[S]) Size() (int, int) { return w.grid.W, w.grid.H }

// Cell returns the state at the wrapped position of p.
func (w *World[S]) Cell(p Point) S { return w.grid.Get(p) }

// Speed reports how many ticks Advance runs.
func (w *World[S]) Speed() int { return w.speed }

// SetSpeed sets the ticks per Advance. Negative values are treated as zero.
func (w *World[S]) SetSpeed(n int) {
	if n < 0 {
		n = 0
	}
	w.speed = n
}

// Ticks reports the number of completed ticks.
func (w *World[S]) Ticks() uint64 { return w.ticks }

// Tick steps every agent exactly once.
func (w *World[S]) Tick() {
	for i := range w.ants {
		w.step(&w.ants[i])
	}
	w.ticks++
}

// Run performs n ticks.
func (w *World[S]) Run(n int) {
	for i := 0; i < n; i++ {
		w.Tick()
	}
}

// Advance performs Speed ticks.
func (w *World[S]) Advance() { w.Run(w.speed) }

func (w *World[S]) step(a *Agent[S]) {
	cell := w.grid.Get(a.Pos)
	next, h := w.rule.Apply(cell, *a)
	w.grid.Set(a.Pos, next)
	a.Heading = h % 4
	a.Pos = w.grid.Wrap(a.Pos.Add(h.Unit()))
}

// Agents returns a copy of the agents in update order.
func (w *World[S]) Agents() []Agent[S] {
	out := make([]Agent[S], len(w.ants))
	copy(out, w.ants)
	return out
}

// Snapshot copies the grid cells, row-major, into dst.
func (w *World[S]) Snapshot(dst []S) []S { return w.grid.Snapshot(dst) }

// Census counts the cells holding each distinct state.
func (w *World[S]) Census() map[S]int {
	out := make(map[S]int)
	for _, s := range w.grid.data {
		out[s]++
	}
	return out
}

// Centered returns n agents stacked on the middle cell of a w*h grid with
// headings cycling north, east, south, west.
func Centered[S comparable](w, h, n int, trail S) []Agent[S] {
	ants := make([]Agent[S], n)
	for i := range ants {
		ants[i] = Agent[S]{
			Pos:     Point{X: w / 2, Y: h / 2},
			Heading: Heading(i % 4),
			Trail:   trail,
		}
	}
	return ants
}

package ant

// Point is a cell coordinate. Values outside the grid are legal until they
// pass through Grid.Wrap.
type Point struct {
	X, Y int
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Grid stores a toroidal 2D grid of cell states in row-major order.
// Every cell always holds a value; the grid never changes size.
type Grid[S comparable] struct {
	W, H int
	data []S
}

// NewGrid allocates a w*h grid with every cell set to fill.
func NewGrid[S comparable](w, h int, fill S) *Grid[S] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid[S]{W: w, H: h, data: make([]S, w*h)}
	g.Fill(fill)
	return g
}

// Index returns the linear slice index for an in-range point.
func (g *Grid[S]) Index(p Point) int { return p.Y*g.W + p.X }

// Wrap applies toroidal wrapping to p. True modulo is used, so the result is
// in range even when p is several grid widths away.
func (g *Grid[S]) Wrap(p Point) Point {
	p.X = (p.X%g.W + g.W) % g.W
	p.Y = (p.Y%g.H + g.H) % g.H
	return p
}

// Get returns the state stored at the wrapped position of p.
func (g *Grid[S]) Get(p Point) S {
	return g.data[g.Index(g.Wrap(p))]
}

// Set overwrites the state at the wrapped position of p.
func (g *Grid[S]) Set(p Point, s S) {
	g.data[g.Index(g.Wrap(p))] = s
}

// Fill sets every cell to s.
func (g *Grid[S]) Fill(s S) {
	for i := range g.data {
		g.data[i] = s
	}
}

// Snapshot copies the cells in row-major order into dst, growing it if
// needed, and returns the filled slice.
func (g *Grid[S]) Snapshot(dst []S) []S {
	if cap(dst) < len(g.data) {
		dst = make([]S, len(g.data))
	}
	dst = dst[:len(g.data)]
	copy(dst, g.data)
	return dst
}

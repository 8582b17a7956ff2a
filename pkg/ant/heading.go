package ant

// Heading is one of the four cardinal directions. Arithmetic on headings is
// always mod 4.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// units is indexed by heading; y grows downwards.
var units = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// CW returns the heading after a clockwise quarter turn.
func (h Heading) CW() Heading { return (h + 1) % 4 }

// CCW returns the heading after a counter-clockwise quarter turn.
func (h Heading) CCW() Heading { return (h + 3) % 4 }

// Unit returns the one-cell movement vector for h.
func (h Heading) Unit() Point { return units[h%4] }

func (h Heading) String() string {
	switch h % 4 {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}

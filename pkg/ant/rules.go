package ant

import "image/color"

// Agent is a single ant. Trail identifies the agent's marks for rules that
// need it and is constant for the agent's lifetime.
type Agent[S comparable] struct {
	Pos     Point
	Heading Heading
	Trail   S
}

// Rule decides, from the cell under an agent, the state written back and the
// agent's new heading. Implementations must be pure.
type Rule[S comparable] interface {
	// Blank is the state every cell starts in.
	Blank() S
	Apply(cell S, a Agent[S]) (S, Heading)
}

// States is the number of cell states a Turmite16 cycles through.
const States = 16

// turn16 maps a cell state to true for a clockwise turn.
var turn16 = [States]bool{
	false, true, false, true, false, false, true, true,
	false, true, false, true, false, false, true, true,
}

// Turmite16 is a sixteen-state turmite. Each visit increments the cell state
// mod 16 and turns according to a fixed table indexed by the old state.
type Turmite16 struct{}

// Blank implements Rule.
func (Turmite16) Blank() uint8 { return 0 }

// Apply implements Rule.
func (Turmite16) Apply(cell uint8, a Agent[uint8]) (uint8, Heading) {
	cell %= States
	h := a.Heading.CCW()
	if turn16[cell] {
		h = a.Heading.CW()
	}
	return (cell + 1) % States, h
}

// background is the color of an unmarked Trails cell.
var background = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Trails is a shared-grid rule: an agent on a background cell paints its own
// color and turns clockwise; on any marked cell it erases the mark and turns
// counter-clockwise, regardless of who left it.
type Trails struct{}

// Blank implements Rule.
func (Trails) Blank() color.RGBA { return background }

// Apply implements Rule.
func (Trails) Apply(cell color.RGBA, a Agent[color.RGBA]) (color.RGBA, Heading) {
	if cell == background {
		return a.Trail, a.Heading.CW()
	}
	return background, a.Heading.CCW()
}

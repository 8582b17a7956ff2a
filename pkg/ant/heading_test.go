package ant

import "testing"

func TestHeadingTurnsStayInRange(t *testing.T) {
	for start := North; start <= West; start++ {
		h := start
		for i := 0; i < 4; i++ {
			h = h.CW()
			if h > West {
				t.Fatalf("CW produced %d", h)
			}
		}
		if h != start {
			t.Fatalf("four clockwise turns from %v ended at %v", start, h)
		}
		if start.CW().CCW() != start {
			t.Fatalf("CW then CCW from %v did not return", start)
		}
	}
}

func TestHeadingUnits(t *testing.T) {
	want := map[Heading]Point{North: {0, -1}, East: {1, 0}, South: {0, 1}, West: {-1, 0}}
	for h, p := range want {
		if h.Unit() != p {
			t.Fatalf("%v.Unit() = %v, expected %v", h, h.Unit(), p)
		}
	}
}

func TestTurmite16Table(t *testing.T) {
	// Clockwise states, the rest turn counter-clockwise.
	cw := map[uint8]bool{1: true, 3: true, 6: true, 7: true, 9: true, 11: true, 14: true, 15: true}
	for s := uint8(0); s < States; s++ {
		next, h := Turmite16{}.Apply(s, Agent[uint8]{Heading: North})
		if next != (s+1)%States {
			t.Fatalf("state %d advanced to %d", s, next)
		}
		want := West
		if cw[s] {
			want = East
		}
		if h != want {
			t.Fatalf("state %d turned to %v, expected %v", s, h, want)
		}
	}
}

package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
		if x, y := a.Opaque(), b.Opaque(); x != y {
			t.Fatalf("color draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestRNGBounds(t *testing.T) {
	r := NewRNG(1)
	if r.IntN(0) != 0 || r.IntN(-4) != 0 {
		t.Fatal("IntN must return 0 for non-positive n")
	}
	for i := 0; i < 200; i++ {
		if v := r.IntN(3); v < 0 || v >= 3 {
			t.Fatalf("IntN(3) returned %d", v)
		}
		if c := r.Opaque(); c.A != 255 {
			t.Fatalf("Opaque returned alpha %d", c.A)
		}
	}
}

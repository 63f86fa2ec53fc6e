package snake

import "testing"

func TestNewRandSeeded(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 100; i++ {
		x, y := a.Intn(1000), b.Intn(1000)
		if x != y {
			t.Fatalf("draw %d: %d != %d with the same seed", i, x, y)
		}
		if x < 0 || x >= 1000 {
			t.Fatalf("draw %d: %d out of range", i, x)
		}
	}
}

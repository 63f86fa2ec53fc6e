package snake

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the uniform choice source the game draws directions and food
// cells from. Intn returns a value in [0, n).
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed is replaced by the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(uint64(seed)))
}

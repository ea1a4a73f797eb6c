package game

import (
	"math/rand"
	"time"
)

// Random is the source of randomness for placement and automated targeting.
// *rand.Rand satisfies it; tests supply scripted sequences.
type Random interface {
	Intn(n int) int
}

// NewRandom returns a seeded generator. Seed 0 means seed from the clock.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

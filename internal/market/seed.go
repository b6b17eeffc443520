package market

import (
	"math/rand"
	"time"
)

// NewStream returns a pseudo-random stream whose entire output sequence is
// a pure function of the calendar date. Each caller gets a fresh stream, so
// parallel generation never shares RNG state and repeated queries for the
// same date reproduce identical prices without persisting them.
func NewStream(date time.Time) *rand.Rand {
	seed := int64(date.Year()*10000 + int(date.Month())*100 + date.Day())
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [-amp, amp).
func uniform(rng *rand.Rand, amp float64) float64 {
	return -amp + rng.Float64()*2*amp
}

package sim

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used for headings, message selection and prop
// placement. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
}

// NewRand returns a seeded source. A zero seed is replaced by the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// pick returns a random element of options.
func pick(r Rand, options []string) string {
	i := int(r.Float64() * float64(len(options)))
	if i >= len(options) {
		i = len(options) - 1
	}
	return options[i]
}

// jitter returns a value in [-spread/2, spread/2).
func jitter(r Rand, spread float64) float64 {
	return (r.Float64() - 0.5) * spread
}

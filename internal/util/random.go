package util

import "math/rand/v2"

// Rand is the random source used for decorative choices. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand returns the process-wide source.
func DefaultRand() Rand {
	return globalRand{}
}

// SeededRand returns a deterministic source, mostly for tests.
func SeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Choice picks one element of values with r. It returns "" for an empty list.
func Choice(r Rand, values []string) string {
	if len(values) == 0 {
		return ""
	}
	if r == nil {
		r = DefaultRand()
	}
	return values[r.IntN(len(values))]
}

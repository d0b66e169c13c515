// Package rng builds the random sources the allocators draw from.
//
// Every allocation takes an explicit *rand.Rand so a run can be replayed
// from its seed. Nothing in classkit reads the package-level math/rand
// generator.
package rng

import (
	"math/rand"
	"time"
)

// New returns a generator seeded with seed. A zero seed is replaced with
// the current time so interactive runs differ from one another.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// OrNew returns r, or a clock-seeded generator when r is nil.
func OrNew(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return New(0)
}

// Shuffle returns a uniformly permuted copy of xs (Fisher-Yates).
// The input slice is left untouched.
func Shuffle[T any](r *rand.Rand, xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

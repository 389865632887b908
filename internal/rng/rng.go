// Package rng provides bounded random integer sampling backed by the
// operating system's cryptographically secure source. A statistical PRNG
// would make successive seeds reproducible from an observed value, which
// defeats the point of a randomize step, so crypto/rand is mandatory here.
package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Int32Max is the upper bound of the seed domain: 2^31 - 1.
const Int32Max = int64(1<<31 - 1)

// ClampSeed forces v into the valid seed domain [0, Int32Max].
func ClampSeed(v int64) int64 {
	if v < 0 {
		return 0
	}
	if v > Int32Max {
		return Int32Max
	}
	return v
}

// UniformInt returns a uniformly distributed integer in [0, max], inclusive.
// The bound is clamped into [0, Int32Max] before sampling, so a request
// above the seed domain behaves exactly like a request for Int32Max.
// Inclusive means a request for M can return M itself.
func UniformInt(max int64) int64 {
	max = ClampSeed(max)

	// rand.Int samples [0, n). The bound is computed in 64-bit arithmetic,
	// so max+1 never overflows even at max == Int32Max.
	n, err := rand.Int(rand.Reader, big.NewInt(max+1))
	if err != nil {
		// crypto/rand reads from the system source; if that is broken
		// there is nothing sensible to degrade to.
		panic(fmt.Sprintf("rng: system random source unavailable: %v", err))
	}
	return n.Int64()
}

// SPDX-License-Identifier: MIT

package svd

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// effectiveSeed applies the seed==0 ⇒ defaultRNGSeed policy.
func effectiveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}
	return seed
}

// rngFromSeed returns a deterministic *rand.Rand for the given seed.
// The generator is owned by a single invocation and never shared.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(effectiveSeed(seed)))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// DominantBatch seeds item i with DeriveSeed(parent, uint64(i)), so a single
// batch item can be reproduced with Dominant(ctx, op, WithSeed(DeriveSeed(parent, i))).
// A parent of 0 is first mapped to the default seed, as everywhere else.
//
// Notes:
//   - SplitMix64 finalizer constants (Vigna 2014): small input changes give
//     large, well-distributed output changes.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(effectiveSeed(parent)) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// fillUniform overwrites v with independent draws from U[-1, 1).
func fillUniform(v []float64, rng *rand.Rand) {
	for i := range v {
		v[i] = 2*rng.Float64() - 1
	}
}

package ga

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// effectiveSeed applies the seed==0 policy.
func effectiveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// rngFromSeed returns the run-scoped RNG. It is not goroutine-safe; one run
// owns one RNG.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(effectiveSeed(seed)))
}

// deriveSeed mixes a parent seed and a stream id (trial index) into an
// independent seed with a SplitMix64 finalizer. A zero result is remapped so
// that the derived seed is never mistaken for "use the default".
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(effectiveSeed(parent)) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		return defaultRNGSeed
	}

	return int64(x)
}

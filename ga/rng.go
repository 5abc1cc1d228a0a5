package ga

import "math/rand"

// defaultSeed is used whenever a caller passes seed==0, keeping "no seed
// given" reproducible instead of time-based (spec 4.A/§6 "seed: fixed").
const defaultSeed int64 = 1

// newRNG returns a deterministic *rand.Rand for seed, substituting
// defaultSeed for the zero value.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64-style
// avalanche finalizer, so sibling streams derived from the same parent are
// decorrelated.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent stream from base identified by stream,
// consuming one value from base first so repeated calls with the same
// stream id from the same point never collide.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := base.Int63()
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

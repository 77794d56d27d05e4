package heuristic

import (
	"golang.org/x/exp/rand"
)

// NewRand returns a PCG-backed generator. A *rand.Rand must not be shared between goroutines.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer, so that nearby
// stream ids give uncorrelated seeds.
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// NewStream returns the generator of stream id under seed. The same (seed, stream) pair always
// yields the same sequence, independent of which goroutine uses it.
func NewStream(seed, stream uint64) *rand.Rand {
	return NewRand(DeriveSeed(seed, stream))
}

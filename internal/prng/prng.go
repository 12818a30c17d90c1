// Package prng splits one top level seed into independent random streams.
package prng

import (
	"math/rand"
)

const golden = 0x9e3779b97f4a7c15

// Derive returns the seed of sub-stream `stream` of `parent`. It is a
// splitmix64 finalizer over parent + stream*golden, so neighbouring streams
// share no visible structure & the result never depends on call order.
func Derive(parent, stream uint64) uint64 {
	h := parent + stream*golden
	h = (h ^ (h >> 30)) * 0xbf58476d1ce4e5b9
	h = (h ^ (h >> 27)) * 0x94d049bb133111eb
	return h ^ (h >> 31)
}

// New returns a generator for the given seed.
func New(s uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(s)))
}

// Stream is sugar for New(Derive(parent, stream)).
func Stream(parent, stream uint64) *rand.Rand {
	return New(Derive(parent, stream))
}

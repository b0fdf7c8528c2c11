// Package xrand provides the independent-RNG-cloning helper the
// Latin-square recursion needs for its two cooperating goroutines: no two
// concurrently-running samplers may share generator state, so each branch
// gets its own independently seeded stream.
package xrand

import "math/rand"

// Split draws a fresh int64 seed from parent and returns a brand new
// *rand.Rand built from it. The two resulting generators (the caller's
// parent, advanced by exactly one Int63 draw, and the returned child) share
// no further state and can be driven concurrently from separate
// goroutines.
func Split(parent *rand.Rand) *rand.Rand {
	seed := parent.Int63()
	return rand.New(rand.NewSource(seed))
}

package bct

import "math/rand"

// DefaultMaxRetries is the retry wrapper's hard cap on attempts.
const DefaultMaxRetries = 100_000

// DefaultMaxColumnRepeats is the number of times the column sweep may
// repeat the same column after a Gale–Ryser failure before it gives up and
// transposes the whole problem.
const DefaultMaxColumnRepeats = 1000

// DefaultInnerRejectionCap bounds the almost-surely-terminating inner
// Bernoulli-acceptance loop, purely as a safety net.
const DefaultInnerRejectionCap = 1_000_000

// Diagnostics receives optional diagnostic text emitted when a verbosity
// parameter is non-zero. Its format is not part of the contract.
type Diagnostics interface {
	Debugf(format string, args ...interface{})
}

type noopDiagnostics struct{}

func (noopDiagnostics) Debugf(string, ...interface{}) {}

// Options configures a sampling call. The zero value is usable except for
// RNG, which must be supplied by the caller (reproducibility under a fixed
// seed is a hard requirement, so there is no silent fallback to a global
// generator the way distuv's Rand() methods fall back to math/rand's
// package-level source).
type Options struct {
	// RNG is the source of randomness. Required.
	RNG *rand.Rand

	// MaxRetries caps the retry wrapper's attempts. Zero means
	// DefaultMaxRetries.
	MaxRetries int

	// MaxColumnRepeats caps how many times the unconstrained sampler may
	// repeat a column before transposing. Zero means
	// DefaultMaxColumnRepeats.
	MaxColumnRepeats int

	// InnerRejectionCap bounds the inner Bernoulli-acceptance loop. Zero
	// means DefaultInnerRejectionCap.
	InnerRejectionCap int

	// CheckSymmetry, when true, asserts Feasible(r,c) == Feasible(c,r)
	// before sampling — sampling (r,c) and transposing is distributionally
	// equivalent to sampling (c,r), so a mismatch here means the
	// majorization test itself has regressed.
	CheckSymmetry bool

	// Diag receives diagnostic text. Nil means silent.
	Diag Diagnostics
}

func (o Options) withDefaults() Options {
	if o.MaxRetries <= 0 {
		o.MaxRetries = DefaultMaxRetries
	}
	if o.MaxColumnRepeats <= 0 {
		o.MaxColumnRepeats = DefaultMaxColumnRepeats
	}
	if o.InnerRejectionCap <= 0 {
		o.InnerRejectionCap = DefaultInnerRejectionCap
	}
	if o.Diag == nil {
		o.Diag = noopDiagnostics{}
	}
	return o
}

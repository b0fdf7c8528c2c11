package latinsquare

import (
	"math/rand"

	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/bct"
)

// DefaultMaxRetries is the top-level validate-and-restart cap: when a draw
// fails the every-row-and-column-is-a-permutation check, discard it and
// restart, up to this many times.
const DefaultMaxRetries = 100_000

type noopDiagnostics struct{}

func (noopDiagnostics) Debugf(string, ...interface{}) {}

// Options configures a Latin square draw. RNG is required; every other
// field has a usable zero value.
type Options struct {
	// RNG is the source of randomness, split (internal/xrand.Split) into an
	// independent stream for each concurrent recursion branch.
	RNG *rand.Rand

	// MaxRetries caps the top-level restart-on-invalid loop. Zero means
	// DefaultMaxRetries.
	MaxRetries int

	// BCTOptions tunes the BCT samples drawn at each recursion level
	// (MaxColumnRepeats, InnerRejectionCap, the inner retry cap). Its RNG
	// field is overwritten per call, and a nil Diag is filled from Diag
	// below; set the others to override the defaults.
	BCTOptions bct.Options

	// Reduced requests the reduced-form normalization (first row and first
	// column become the identity permutation) before returning.
	Reduced bool

	// OneIndexed shifts every entry by +1, returning values over
	// {1,...,n} instead of {0,...,n-1}. Applied after Reduced.
	OneIndexed bool

	// Diag receives diagnostic text. Nil means silent.
	Diag bct.Diagnostics
}

func (o Options) withDefaults() Options {
	if o.MaxRetries <= 0 {
		o.MaxRetries = DefaultMaxRetries
	}
	if o.Diag == nil {
		o.Diag = noopDiagnostics{}
	}
	if o.BCTOptions.Diag == nil {
		o.BCTOptions.Diag = o.Diag
	}
	return o
}

func withRNG(o bct.Options, rng *rand.Rand) bct.Options {
	o.RNG = rng
	return o
}

package bct

import "errors"

// ErrInfeasible is returned when the Gale–Ryser oracle rejects the
// requested marginals up front, before any randomness is consumed.
var ErrInfeasible = errors.New("bct: infeasible marginals")

// ErrInvalid is returned when a single sampling attempt fails — a
// propagator branch oversaturated, or end-of-sample validation found a
// residual or sum mismatch. It is recoverable: the retry wrapper simply
// tries again with a fresh draw from the same RNG stream.
var ErrInvalid = errors.New("bct: sample invalid")

// ErrRetriesExhausted is returned when Options.MaxRetries attempts have
// all failed.
var ErrRetriesExhausted = errors.New("bct: retry cap exhausted")

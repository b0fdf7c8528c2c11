// Package bct samples binary contingency tables — 0/1 matrices with
// prescribed row and column sums, optionally subject to a mask of forced
// zeros — exactly uniformly at random using Probabilistic
// Divide-and-Conquer: sequential forcing via a deterministic-fill
// propagator, an exact rejection-probability evaluator, and a
// restart/transpose control loop that preserves the uniform distribution.
//
// Feasible is the Gale–Ryser oracle. Sample draws an unconstrained table.
// SampleWithZeros draws a table subject to a caller-supplied zero mask.
// Both are wrapped in an unconditional retry loop capped at
// Options.MaxRetries attempts.
package bct

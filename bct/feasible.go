package bct

import "github.com/StephenDeSalvo/desalvo-standard-library-sub003/marginal"

// Feasible is the Gale–Ryser oracle: it reports whether any binary table
// exists with row sums r and column sums c. If Feasible returns false,
// Sample and SampleWithZeros return ErrInfeasible on every attempt, without
// consuming randomness.
func Feasible(r, c []int) bool {
	return marginal.Feasible(r, c)
}

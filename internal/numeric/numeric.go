// Package numeric implements the exact probability arithmetic the
// rejection-probability evaluator needs: a log-space binomial pmf built
// directly on math.Lgamma (no special-function wrapper package, matching
// the bare math.Lgamma call in gonum's stat/combin.LogGeneralizedBinomial),
// the Poisson-binomial pmf via the forward generating-function recurrence,
// and the per-column success-probability update rule.
package numeric

import "math"

// Tolerance is the threshold below which a probability is treated as zero:
// any probability below 1e-15 forbids the corresponding bit.
const Tolerance = 1e-15

// EpsQ is the threshold past which a column is considered saturated (its
// free-row count is zero) and excluded from the row Poisson-binomial
// product, per the "q < 1 - eps" rule.
const EpsQ = 1e-14

// LogBinomialPMF computes log( B(free, q)(c) ) using the convention where
// the exponent on log(1-q) carries coefficient c and the exponent on
// log(q) carries coefficient (free-c) — treating q as the probability of a
// 0 rather than a 1, the mirror image of the usual binomial pmf. This must
// not be "corrected": it is internally consistent once q is produced by
// UpdateQ, and gives the exact rejection weights after normalization by the
// max across the two branches.
func LogBinomialPMF(free, c int, q float64) float64 {
	if c < 0 || c > free || free < 0 {
		return math.Inf(-1)
	}
	lgFree1, _ := math.Lgamma(float64(free) + 1)
	lgC1, _ := math.Lgamma(float64(c) + 1)
	lgFC1, _ := math.Lgamma(float64(free-c) + 1)
	term := lgFree1 - lgC1 - lgFC1
	if c > 0 {
		term += float64(c) * math.Log(1-q)
	}
	if free-c > 0 {
		term += float64(free-c) * math.Log(q)
	}
	return term
}

// BinomialPMF is exp(LogBinomialPMF(...)).
func BinomialPMF(free, c int, q float64) float64 {
	return math.Exp(LogBinomialPMF(free, c, q))
}

// PoissonBinomialPMF returns P(X = r) where X is the sum of independent
// Bernoulli(q_i) variables, computed by the forward recurrence on the
// generating-function coefficients in O(k*(r+1)) time. Returns 0 for
// r < 0 or r > len(q).
func PoissonBinomialPMF(q []float64, r int) float64 {
	k := len(q)
	if r < 0 || r > k {
		return 0
	}
	pmf := make([]float64, k+1)
	pmf[0] = 1
	filled := 0
	for _, qi := range q {
		top := filled + 1
		if top > r {
			top = r
		}
		for j := top; j >= 1; j-- {
			pmf[j] = pmf[j]*(1-qi) + pmf[j-1]*qi
		}
		pmf[0] *= 1 - qi
		filled++
	}
	return pmf[r]
}

// UpdateQ recomputes the per-column success-probability heuristic from the
// current residual marginals: q[j] = c[j] / (m - z) where z is the number of
// rows with residual sum 0, and q[j] = 1 when c[j] = 0.
func UpdateQ(r, c []int) []float64 {
	m := len(r)
	z := 0
	for _, ri := range r {
		if ri == 0 {
			z++
		}
	}
	q := make([]float64, len(c))
	free := m - z
	for j, cj := range c {
		if cj == 0 {
			q[j] = 1
			continue
		}
		if free <= 0 {
			q[j] = 1
			continue
		}
		q[j] = float64(cj) / float64(free)
	}
	return q
}

// ActiveColumns returns the indices of columns still "in play": those with
// q < 1 - epsQ, the set over which the row Poisson-binomial factor is taken.
func ActiveColumns(q []float64) []int {
	idx := make([]int, 0, len(q))
	for j, qj := range q {
		if qj < 1-EpsQ {
			idx = append(idx, j)
		}
	}
	return idx
}

// Package reject implements the exact rejection-probability evaluator: the
// product of column binomial factors and row Poisson-binomial factors that
// scores a tentative cell assignment against the true conditional
// distribution of the remaining table.
package reject

import (
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/grid"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/numeric"
)

// Weight computes the acceptance weight for a propagation step that moved
// the evolving mask from "before" to "after" (mask.Clone semantics: both
// are full m-by-n masks, "after" a superset of decided cells of "before"),
// leaving residual marginals r, c, scored against the column
// success-probability vector q computed before the tentative decision (the
// same q is shared across both the k=0 and k=1 branches being compared).
//
// Only rows and columns "touched" by this step — those containing at least
// one cell newly marked decided — contribute a factor; untouched rows and
// columns have not changed their conditional distribution and so
// contribute 1.
func Weight(before, after grid.Mask, r, c []int, q []float64) float64 {
	m, n := before.Dims()
	touchedRow := make([]bool, m)
	touchedCol := make([]bool, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if after[i][j] && !before[i][j] {
				touchedRow[i] = true
				touchedCol[j] = true
			}
		}
	}

	w := 1.0
	for j := 0; j < n; j++ {
		if !touchedCol[j] {
			continue
		}
		free := after.FreeInCol(j)
		w *= numeric.BinomialPMF(free, c[j], q[j])
		if w < numeric.Tolerance {
			return 0
		}
	}
	active := numeric.ActiveColumns(q)
	for i := 0; i < m; i++ {
		if !touchedRow[i] {
			continue
		}
		qsub := make([]float64, 0, len(active))
		for _, j := range active {
			if after[i][j] {
				continue
			}
			qsub = append(qsub, q[j])
		}
		w *= numeric.PoissonBinomialPMF(qsub, r[i])
		if w < numeric.Tolerance {
			return 0
		}
	}
	return w
}

package bct

import (
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/floatutil"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/grid"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/numeric"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/propagate"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/reject"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/marginal"
)

// Sample draws a uniformly random binary contingency table with row sums r
// and column sums c, using a column-sweep Probabilistic
// Divide-and-Conquer procedure. It is wrapped in an unconditional retry
// loop.
func Sample(r, c []int, opts Options) (Table, error) {
	opts = opts.withDefaults()
	if opts.CheckSymmetry && marginal.Feasible(r, c) != marginal.Feasible(c, r) {
		panic("bct: symmetry check failed: Feasible(r,c) != Feasible(c,r)")
	}
	if !marginal.Feasible(r, c) {
		return nil, ErrInfeasible
	}
	return retry(opts, func() (Table, error) { return sampleOnce(r, c, opts) })
}

func sampleOnce(r0, c0 []int, opts Options) (Table, error) {
	m, n := len(r0), len(c0)
	if m == 0 || n == 0 {
		return grid.NewTable(m, n), nil
	}

	s := newSweepState(r0, c0)
	if n >= 2 {
		if err := s.runSweep(opts); err != nil {
			return nil, err
		}
	}

	res, err := propagate.Fill(s.r, s.c, s.mask)
	if err != nil {
		return nil, ErrInvalid
	}
	s.a.Add(res.B)
	s.r, s.c, s.mask = res.R, res.C, res.Mask

	if !s.mask.All() {
		return nil, ErrInvalid
	}
	for _, v := range s.r {
		if v != 0 {
			return nil, ErrInvalid
		}
	}
	for _, v := range s.c {
		if v != 0 {
			return nil, ErrInvalid
		}
	}

	out := s.reconstruct(r0, c0)
	for i, want := range r0 {
		if out.RowSum(i) != want {
			return nil, ErrInvalid
		}
	}
	for j, want := range c0 {
		if out.ColSum(j) != want {
			return nil, ErrInvalid
		}
	}
	return out, nil
}

// sweepState carries the residual marginals, the evolving mask, the
// partial table, and the bookkeeping needed to map back to the caller's
// original row/column ordering after sorting and the transpose rescue path.
type sweepState struct {
	r, c       []int
	mask       grid.Mask
	a          grid.Table
	transposed bool

	// rowOrigin[i] (colOrigin[j]) is the index, into r0 if !transposed or
	// c0 if transposed (respectively c0/r0 for columns), that working row
	// i (column j) corresponds to.
	rowOrigin, colOrigin []int
}

func newSweepState(r0, c0 []int) *sweepState {
	m, n := len(r0), len(c0)
	return &sweepState{
		r:         grid.CloneInts(r0),
		c:         grid.CloneInts(c0),
		mask:      grid.NewMask(m, n),
		a:         grid.NewTable(m, n),
		rowOrigin: identity(m),
		colOrigin: identity(n),
	}
}

func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func (s *sweepState) clone() *sweepState {
	return &sweepState{
		r:          grid.CloneInts(s.r),
		c:          grid.CloneInts(s.c),
		mask:       s.mask.Clone(),
		a:          s.a.Clone(),
		transposed: s.transposed,
		rowOrigin:  grid.CloneInts(s.rowOrigin),
		colOrigin:  grid.CloneInts(s.colOrigin),
	}
}

// sortAscending re-sorts the current residual marginals ascending, carrying
// the partial table, mask, and origin bookkeeping along with the
// permutation.
func (s *sweepState) sortAscending() {
	rp := floatutil.Ordering(s.r)
	s.r = floatutil.Permute(s.r, rp)
	s.rowOrigin = floatutil.Permute(s.rowOrigin, rp)
	s.a = s.a.PermuteRows(rp)
	s.mask = s.mask.PermuteRows(rp)

	cp := floatutil.Ordering(s.c)
	s.c = floatutil.Permute(s.c, cp)
	s.colOrigin = floatutil.Permute(s.colOrigin, cp)
	s.a = s.a.PermuteCols(cp)
	s.mask = s.mask.PermuteCols(cp)
}

// transpose swaps the row/column roles of the whole problem. The sampling
// problem is symmetric under transpose, so this is pure bookkeeping: it
// must be undone before the result is handed back to the caller.
func (s *sweepState) transpose() {
	s.r, s.c = s.c, s.r
	s.rowOrigin, s.colOrigin = s.colOrigin, s.rowOrigin
	s.a = s.a.T()
	s.mask = s.mask.T()
	s.transposed = !s.transposed
}

// runSweep is the column-by-column decision loop with Gale–Ryser rollback
// and the transpose rescue after MaxColumnRepeats consecutive failures on
// the same column.
func (s *sweepState) runSweep(opts Options) error {
	repeatCount := 0
	repeatCol := -1
	var snap *sweepState
	j := 0
	for j < len(s.c)-1 {
		if j > 0 {
			if !marginal.Feasible(s.r, s.c) {
				*s = *snap
				if j != repeatCol {
					repeatCol, repeatCount = j, 0
				}
				repeatCount++
				if repeatCount >= opts.MaxColumnRepeats {
					opts.Diag.Debugf("bct: column %d repeated %d times, transposing", j, repeatCount)
					s.transpose()
					repeatCount = 0
					j = 0
					continue
				}
				j--
				continue
			}
		}
		s.sortAscending()
		snap = s.clone()
		if err := s.processColumn(j, opts); err != nil {
			return err
		}
		j++
	}
	return nil
}

// processColumn decides, for each row i with a still-unsatisfied row sum
// and an unsatisfied column j, the cell's value by the two-branch
// lookahead-and-reject procedure.
func (s *sweepState) processColumn(j int, opts Options) error {
	m := len(s.r)
	for i := 0; i < m-1; i++ {
		if s.r[i] <= 0 || s.c[j] <= 0 {
			continue
		}
		if s.mask[i][j] {
			continue
		}
		q := numeric.UpdateQ(s.r, s.c)
		if err := s.decideCell(i, j, q, opts); err != nil {
			return err
		}
	}
	return nil
}

// decideCell propagates both tentative values of cell (i,j), scores each
// branch's acceptance weight under the exact conditional distribution, and
// commits one of them.
func (s *sweepState) decideCell(i, j int, q []float64, opts Options) error {
	before := s.mask
	res0, err0 := propagate.FillAt(s.r, s.c, s.mask, i, j, 0)
	res1, err1 := propagate.FillAt(s.r, s.c, s.mask, i, j, 1)

	switch {
	case err0 != nil && err1 != nil:
		return ErrInvalid
	case err0 != nil:
		s.commit(res1)
		return nil
	case err1 != nil:
		s.commit(res0)
		return nil
	}

	w0 := reject.Weight(before, res0.Mask, res0.R, res0.C, q)
	w1 := reject.Weight(before, res1.Mask, res1.R, res1.C, q)

	switch {
	case w0 < numeric.Tolerance && w1 < numeric.Tolerance:
		// Both branches below tolerance: mark the sample invalid and let
		// the retry wrapper resample, rather than silently forcing the
		// cell to 0 — distributionally equivalent, and an error value is
		// easier to reason about than a silent bias.
		return ErrInvalid
	case w0 < numeric.Tolerance:
		s.commit(res1)
	case w1 < numeric.Tolerance:
		s.commit(res0)
	default:
		k, err := acceptReject(opts, q[j], w0, w1)
		if err != nil {
			return err
		}
		if k == 0 {
			s.commit(res0)
		} else {
			s.commit(res1)
		}
	}
	return nil
}

func (s *sweepState) commit(res propagate.Result) {
	s.a.Add(res.B)
	s.r = res.R
	s.c = res.C
	s.mask = res.Mask
}

// acceptReject is the biased-coin-plus-rejection inner loop: normalize by
// max(w0,w1), draw a Bernoulli(q/(1+q)) proposal, accept with probability
// w_b, resample on rejection.
func acceptReject(opts Options, qj, w0, w1 float64) (int, error) {
	wmax := w0
	if w1 > wmax {
		wmax = w1
	}
	w0n, w1n := w0/wmax, w1/wmax
	p := qj / (1 + qj)

	for attempt := 0; attempt < opts.InnerRejectionCap; attempt++ {
		b := 0
		if opts.RNG.Float64() < p {
			b = 1
		}
		wb := w0n
		if b == 1 {
			wb = w1n
		}
		if opts.RNG.Float64() < wb {
			return b, nil
		}
	}
	opts.Diag.Debugf("bct: inner rejection loop capped at %d attempts", opts.InnerRejectionCap)
	return 0, ErrInvalid
}

// reconstruct maps the accumulated (possibly transposed, possibly sorted)
// table back into the caller's original row/column ordering.
func (s *sweepState) reconstruct(r0, c0 []int) Table {
	a := s.a
	rowOrigin, colOrigin := s.rowOrigin, s.colOrigin
	if s.transposed {
		a = a.T()
		rowOrigin, colOrigin = colOrigin, rowOrigin
	}
	out := grid.NewTable(len(r0), len(c0))
	for i := range a {
		for j := range a[i] {
			out[rowOrigin[i]][colOrigin[j]] = a[i][j]
		}
	}
	return out
}

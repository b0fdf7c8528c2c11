package bct

import (
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/grid"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/numeric"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/propagate"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/reject"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/marginal"
)

// SampleWithZeros draws a uniformly random binary contingency table with row
// sums r and column sums c, subject to forced being true on every cell
// required to be 0. It uses a most-constrained-cell selection procedure
// rather than a column sweep, since a forbidden-cell mask breaks the
// column-by-column independence the sweep relies on.
func SampleWithZeros(r, c []int, forced Mask, opts Options) (Table, error) {
	opts = opts.withDefaults()
	if !marginal.Feasible(r, c) {
		return nil, ErrInfeasible
	}
	return retry(opts, func() (Table, error) { return sampleWithZerosOnce(r, c, forced, opts) })
}

func sampleWithZerosOnce(r0, c0 []int, forced Mask, opts Options) (Table, error) {
	m, n := len(r0), len(c0)
	if m == 0 || n == 0 {
		return grid.NewTable(m, n), nil
	}

	mask := forced.Clone()
	rr := grid.CloneInts(r0)
	cc := grid.CloneInts(c0)

	res, err := propagate.Fill(rr, cc, mask)
	if err != nil {
		return nil, ErrInvalid
	}
	a, rr, cc, mask := res.B, res.R, res.C, res.Mask

	for !mask.All() {
		i, j, ok := pickCell(rr, cc, mask)
		if !ok {
			return nil, ErrInvalid
		}

		q := numeric.UpdateQ(rr, cc)
		before := mask
		res0, err0 := propagate.FillAt(rr, cc, mask, i, j, 0)
		res1, err1 := propagate.FillAt(rr, cc, mask, i, j, 1)

		var commit propagate.Result
		switch {
		case err0 != nil && err1 != nil:
			return nil, ErrInvalid
		case err0 != nil:
			commit = res1
		case err1 != nil:
			commit = res0
		default:
			w0 := reject.Weight(before, res0.Mask, res0.R, res0.C, q)
			w1 := reject.Weight(before, res1.Mask, res1.R, res1.C, q)
			switch {
			case w0 < numeric.Tolerance && w1 < numeric.Tolerance:
				return nil, ErrInvalid
			case w0 < numeric.Tolerance:
				commit = res1
			case w1 < numeric.Tolerance:
				commit = res0
			default:
				k, err := acceptReject(opts, q[j], w0, w1)
				if err != nil {
					return nil, err
				}
				if k == 0 {
					commit = res0
				} else {
					commit = res1
				}
			}
		}

		a.Add(commit.B)
		rr, cc, mask = commit.R, commit.C, commit.Mask
	}

	for _, v := range rr {
		if v != 0 {
			return nil, ErrInvalid
		}
	}
	for _, v := range cc {
		if v != 0 {
			return nil, ErrInvalid
		}
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if forced[i][j] && a[i][j] != 0 {
				return nil, ErrInvalid
			}
		}
	}
	for i, want := range r0 {
		if a.RowSum(i) != want {
			return nil, ErrInvalid
		}
	}
	for j, want := range c0 {
		if a.ColSum(j) != want {
			return nil, ErrInvalid
		}
	}
	return a, nil
}

// pickCell is the most-constrained-free-cell heuristic: the undecided cell
// maximizing min(r[i], c[j]), ties broken by smallest row index, then
// smallest column index.
func pickCell(r, c []int, mask Mask) (i, j int, ok bool) {
	m, n := mask.Dims()
	best := 0
	for bi := 0; bi < m; bi++ {
		for bj := 0; bj < n; bj++ {
			if mask[bi][bj] {
				continue
			}
			score := r[bi]
			if c[bj] < score {
				score = c[bj]
			}
			if !ok || score > best {
				i, j, ok, best = bi, bj, true, score
			}
		}
	}
	return i, j, ok
}

// Package propagate implements the deterministic-fill fixpoint: forcing
// cells to 0 or 1 from saturated rows and columns, run to a full pass with
// no change. Both BCT sampler variants drive this to (near) fixpoint; the
// tentative (i,j,k) lookahead variant used by the column sweep and the
// cell-selection sampler is built on top of the same fixpoint.
package propagate

import (
	"errors"

	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/grid"
)

// ErrOversaturated is returned when a row or column's residual sum exceeds
// the number of cells still free to satisfy it — the decision set made so
// far cannot be completed.
var ErrOversaturated = errors.New("propagate: row or column oversaturated")

// Result is the conditional-state tuple: the residual marginals, the
// evolving mask, and the cells newly forced to 1 by this call (cells
// forced to 0 are recorded only in Mask — B holds 1s only).
type Result struct {
	R, C []int
	B    grid.Table
	Mask grid.Mask
}

// Fill runs the row-pass/column-pass forcing rules to a fixpoint starting
// from (r, c, mask). It does not mutate its arguments.
func Fill(r, c []int, mask grid.Mask) (Result, error) {
	m, n := len(r), len(c)
	rr := grid.CloneInts(r)
	cc := grid.CloneInts(c)
	mm := mask.Clone()
	b := grid.NewTable(m, n)

	for changed := true; changed; {
		changed = false

		for i := 0; i < m; i++ {
			free := mm.FreeInRow(i)
			if rr[i] < 0 || rr[i] > free {
				return Result{}, ErrOversaturated
			}
			if free == 0 {
				continue
			}
			switch {
			case rr[i] == 0:
				for j := 0; j < n; j++ {
					if !mm[i][j] {
						mm[i][j] = true
						changed = true
					}
				}
			case rr[i] == free:
				for j := 0; j < n; j++ {
					if !mm[i][j] {
						b[i][j] = 1
						mm[i][j] = true
						rr[i]--
						cc[j]--
						changed = true
					}
				}
			}
		}

		for j := 0; j < n; j++ {
			free := mm.FreeInCol(j)
			if cc[j] < 0 || cc[j] > free {
				return Result{}, ErrOversaturated
			}
			if free == 0 {
				continue
			}
			switch {
			case cc[j] == 0:
				for i := 0; i < m; i++ {
					if !mm[i][j] {
						mm[i][j] = true
						changed = true
					}
				}
			case cc[j] == free:
				for i := 0; i < m; i++ {
					if !mm[i][j] {
						b[i][j] = 1
						mm[i][j] = true
						rr[i]--
						cc[j]--
						changed = true
					}
				}
			}
		}
	}

	return Result{R: rr, C: cc, B: b, Mask: mm}, nil
}

// FillAt is the lookahead variant: it tentatively decides cell (i,j) to
// value k (0 or 1), marks only (i,j) as decided (cells decided earlier are
// expected to be marked already in the caller's evolving mask), then
// propagates to fixpoint.
//
// k must be 0 or 1. The returned B includes (i,j) itself when k == 1.
func FillAt(r, c []int, mask grid.Mask, i, j, k int) (Result, error) {
	mm := mask.Clone()
	rr := grid.CloneInts(r)
	cc := grid.CloneInts(c)

	tentative := grid.NewTable(len(r), len(c))
	mm[i][j] = true
	if k == 1 {
		if rr[i] <= 0 || cc[j] <= 0 {
			return Result{}, ErrOversaturated
		}
		rr[i]--
		cc[j]--
		tentative[i][j] = 1
	}

	res, err := Fill(rr, cc, mm)
	if err != nil {
		return Result{}, err
	}
	res.B.Add(tentative)
	return res, nil
}

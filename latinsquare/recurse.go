package latinsquare

import (
	"sync"

	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/bct"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/grid"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/xrand"
)

// rowDegrees counts, for each row, the number of true cells in mask.
func rowDegrees(mask grid.Mask) []int {
	n := len(mask)
	deg := make([]int, n)
	for i, row := range mask {
		for _, v := range row {
			if v {
				deg[i]++
			}
		}
	}
	return deg
}

// colDegrees counts, for each column, the number of true cells in mask.
func colDegrees(mask grid.Mask) []int {
	m, n := mask.Dims()
	deg := make([]int, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if mask[i][j] {
				deg[j]++
			}
		}
	}
	return deg
}

func maxInt(v []int) int {
	best := 0
	for _, x := range v {
		if x > best {
			best = x
		}
	}
	return best
}

// halveDegrees returns the per-row and per-column marginals for the BCT
// that splits mask's cells in half, halving the degree marginals at each
// recursion level.
func halveDegrees(mask grid.Mask) (r, c []int) {
	rd := rowDegrees(mask)
	cd := colDegrees(mask)
	r = make([]int, len(rd))
	for i, d := range rd {
		r[i] = d / 2
	}
	c = make([]int, len(cd))
	for j, d := range cd {
		c[j] = d / 2
	}
	return r, c
}

// splitMask partitions region (a subset of cells, true where member) into
// the cells where b places a 1 and the cells where b places a 0.
func splitMask(region grid.Mask, b grid.Table) (ones, zeros grid.Mask) {
	n := len(region)
	ones = grid.NewMask(n, n)
	zeros = grid.NewMask(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !region[i][j] {
				continue
			}
			if b[i][j] == 1 {
				ones[i][j] = true
			} else {
				zeros[i][j] = true
			}
		}
	}
	return ones, zeros
}

// recurseLevel is the bit-recursion proper: z and o are disjoint regions
// that together make up the region carved out by the bits already fixed
// above this level (at the top level, the full n-by-n grid, split by the
// lowest bit). Each side's BCT is confined to its own region: every cell
// outside that region is forced to zero. It returns the weighted sum of every bit
// from this level down, in a local frame where this level's bit has weight
// 1 (the caller multiplies by 2 per level up).
func recurseLevel(z, o grid.Mask, opts Options) (grid.Table, error) {
	n := len(z)

	zDeg := maxInt(rowDegrees(z))
	if c := maxInt(colDegrees(z)); c > zDeg {
		zDeg = c
	}
	oDeg := maxInt(rowDegrees(o))
	if c := maxInt(colDegrees(o)); c > oDeg {
		oDeg = c
	}

	if zDeg <= 1 && oDeg <= 1 {
		return grid.NewTable(n, n), nil
	}

	rz, cz := halveDegrees(z)
	ro, co := halveDegrees(o)

	notZ := grid.NewMask(n, n)
	notO := grid.NewMask(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			notZ[i][j] = !z[i][j]
			notO[i][j] = !o[i][j]
		}
	}

	var b0, b1 grid.Table
	var err0, err1 error

	switch {
	case oDeg <= 1:
		b0, err0 = bct.SampleWithZeros(rz, cz, notZ, withRNG(opts.BCTOptions, opts.RNG))
		b1 = grid.NewTable(n, n)
	case zDeg <= 1:
		b1, err1 = bct.SampleWithZeros(ro, co, notO, withRNG(opts.BCTOptions, opts.RNG))
		b0 = grid.NewTable(n, n)
	default:
		// The two sibling BCT draws run concurrently and must not share
		// RNG state; each gets an independently split stream.
		rng0 := xrand.Split(opts.RNG)
		rng1 := xrand.Split(opts.RNG)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			b0, err0 = bct.SampleWithZeros(rz, cz, notZ, withRNG(opts.BCTOptions, rng0))
		}()
		go func() {
			defer wg.Done()
			b1, err1 = bct.SampleWithZeros(ro, co, notO, withRNG(opts.BCTOptions, rng1))
		}()
		wg.Wait()
	}
	if err0 != nil {
		return nil, err0
	}
	if err1 != nil {
		return nil, err1
	}

	a0 := grid.NewTable(n, n)
	if zDeg > 1 {
		zInner, oInner := splitMask(z, b0)
		var err error
		a0, err = recurseLevel(zInner, oInner, opts)
		if err != nil {
			return nil, err
		}
	}

	a1 := grid.NewTable(n, n)
	if oDeg > 1 {
		zInner, oInner := splitMask(o, b1)
		var err error
		a1, err = recurseLevel(zInner, oInner, opts)
		if err != nil {
			return nil, err
		}
	}

	out := grid.NewTable(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = b0[i][j] + b1[i][j] + 2*(a0[i][j]+a1[i][j])
		}
	}
	return out, nil
}

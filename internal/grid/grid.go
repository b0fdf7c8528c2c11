// Package grid holds the dense integer/boolean table shapes shared by the
// propagator, the rejection evaluator, and the public bct package, plus the
// small copy/clone helpers that keep a sampler's call frame the sole owner
// of its residual marginals, mask, and partial table.
package grid

// Mask is a dense m-by-n matrix of booleans. Mask[i][j] == true means cell
// (i,j) is excluded from ever being 1 (forced zero) or, in the evolving
// mask maintained during sampling, has simply been decided.
type Mask [][]bool

// NewMask returns an m-by-n mask with every cell false (undecided).
func NewMask(m, n int) Mask {
	w := make(Mask, m)
	for i := range w {
		w[i] = make([]bool, n)
	}
	return w
}

// Clone returns a deep copy of w.
func (w Mask) Clone() Mask {
	cp := make(Mask, len(w))
	for i, row := range w {
		cp[i] = append([]bool(nil), row...)
	}
	return cp
}

// Dims returns the row and column count of w.
func (w Mask) Dims() (m, n int) {
	m = len(w)
	if m > 0 {
		n = len(w[0])
	}
	return m, n
}

// All reports whether every cell of w is true.
func (w Mask) All() bool {
	for _, row := range w {
		for _, v := range row {
			if !v {
				return false
			}
		}
	}
	return true
}

// FreeInRow returns the number of undecided cells in row i.
func (w Mask) FreeInRow(i int) int {
	n := 0
	for _, v := range w[i] {
		if !v {
			n++
		}
	}
	return n
}

// FreeInCol returns the number of undecided cells in column j.
func (w Mask) FreeInCol(j int) int {
	n := 0
	for _, row := range w {
		if !row[j] {
			n++
		}
	}
	return n
}

// Table is a dense m-by-n matrix over {0,1}, the binary contingency table
// itself. It is also reused, entrywise, to hold the "newly forced" cell set
// produced by the propagator.
type Table [][]int

// NewTable returns an m-by-n table with every cell 0.
func NewTable(m, n int) Table {
	t := make(Table, m)
	for i := range t {
		t[i] = make([]int, n)
	}
	return t
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	cp := make(Table, len(t))
	for i, row := range t {
		cp[i] = append([]int(nil), row...)
	}
	return cp
}

// Rows returns the number of rows in t.
func (t Table) Rows() int { m, _ := t.Dims(); return m }

// Cols returns the number of columns in t.
func (t Table) Cols() int { _, n := t.Dims(); return n }

// Dims returns the row and column count of t.
func (t Table) Dims() (m, n int) {
	m = len(t)
	if m > 0 {
		n = len(t[0])
	}
	return m, n
}

// Add adds b into t entrywise, in place.
func (t Table) Add(b Table) {
	for i := range t {
		for j := range t[i] {
			t[i][j] += b[i][j]
		}
	}
}

// RowSum returns the sum of row i.
func (t Table) RowSum(i int) int {
	s := 0
	for _, v := range t[i] {
		s += v
	}
	return s
}

// ColSum returns the sum of column j.
func (t Table) ColSum(j int) int {
	s := 0
	for _, row := range t {
		s += row[j]
	}
	return s
}

// T returns the transpose of t as a fresh copy.
func (t Table) T() Table {
	m, n := t.Dims()
	out := NewTable(n, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			out[j][i] = t[i][j]
		}
	}
	return out
}

// T returns the transpose of w as a fresh copy.
func (w Mask) T() Mask {
	m, n := w.Dims()
	out := NewMask(n, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			out[j][i] = w[i][j]
		}
	}
	return out
}

// PermuteRows returns a new mask with dst[i] = w[perm[i]] (row permutation;
// columns untouched).
func (w Mask) PermuteRows(perm []int) Mask {
	out := make(Mask, len(perm))
	for i, p := range perm {
		out[i] = append([]bool(nil), w[p]...)
	}
	return out
}

// PermuteCols returns a new mask with column j of the result equal to
// column perm[j] of w.
func (w Mask) PermuteCols(perm []int) Mask {
	m, _ := w.Dims()
	out := NewMask(m, len(perm))
	for i := 0; i < m; i++ {
		for j, p := range perm {
			out[i][j] = w[i][p]
		}
	}
	return out
}

// CloneInts returns a copy of v.
func CloneInts(v []int) []int {
	return append([]int(nil), v...)
}

// PermuteRows returns a new table with dst[i] = t[perm[i]] (row
// permutation; columns untouched).
func (t Table) PermuteRows(perm []int) Table {
	out := make(Table, len(perm))
	for i, p := range perm {
		out[i] = append([]int(nil), t[p]...)
	}
	return out
}

// PermuteCols returns a new table with column j of the result equal to
// column perm[j] of t.
func (t Table) PermuteCols(perm []int) Table {
	m, _ := t.Dims()
	out := NewTable(m, len(perm))
	for i := 0; i < m; i++ {
		for j, p := range perm {
			out[i][j] = t[i][p]
		}
	}
	return out
}

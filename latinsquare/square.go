package latinsquare

// Square is an n-by-n table over {0,...,n-1} (or {1,...,n} when
// Options.OneIndexed is set). A valid Square's rows and columns are each
// permutations of the value set.
type Square [][]int

func isPermutation(vals []int, n int) bool {
	seen := make([]bool, n)
	for _, v := range vals {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func validSquare(sq Square, n int) bool {
	for i := 0; i < n; i++ {
		if !isPermutation(sq[i], n) {
			return false
		}
	}
	for j := 0; j < n; j++ {
		col := make([]int, n)
		for i := 0; i < n; i++ {
			col[i] = sq[i][j]
		}
		if !isPermutation(col, n) {
			return false
		}
	}
	return true
}

// Reduce puts sq into reduced form: the first row and first column each
// become the identity permutation 0,1,...,n-1. sq must already be over
// {0,...,n-1}; call Reduce before applying a one-indexed offset, not after.
func Reduce(sq Square) Square {
	n := len(sq)
	if n == 0 {
		return sq
	}

	colOrder := make([]int, n)
	for j := 0; j < n; j++ {
		colOrder[sq[0][j]] = j
	}
	step1 := make(Square, n)
	for i := 0; i < n; i++ {
		row := make([]int, n)
		for v := 0; v < n; v++ {
			row[v] = sq[i][colOrder[v]]
		}
		step1[i] = row
	}

	rowOrder := make([]int, n)
	for i := 0; i < n; i++ {
		rowOrder[step1[i][0]] = i
	}
	out := make(Square, n)
	for v := 0; v < n; v++ {
		out[v] = step1[rowOrder[v]]
	}
	return out
}

func addOne(sq Square) Square {
	out := make(Square, len(sq))
	for i, row := range sq {
		r := make([]int, len(row))
		for j, v := range row {
			r[j] = v + 1
		}
		out[i] = r
	}
	return out
}

func finalize(sq Square, opts Options) Square {
	if opts.Reduced {
		sq = Reduce(sq)
	}
	if opts.OneIndexed {
		sq = addOne(sq)
	}
	return sq
}

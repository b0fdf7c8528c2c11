// Package marginal implements the Gale–Ryser feasibility oracle for binary
// contingency tables: conjugate partitions and majorization.
package marginal

import "sort"

const (
	badNegInput  = "marginal: negative marginal value"
	badSumInput  = "marginal: row sum does not equal column sum"
)

// Vector is a finite sequence of non-negative row or column sums.
type Vector []int

// Sum returns the total of v.
func (v Vector) Sum() int {
	var s int
	for _, x := range v {
		s += x
	}
	return s
}

// Conjugate returns the conjugate partition of c for an m-row table:
// conjugate[k] = count of j with c[j] > k, for k = 0,...,m-1.
//
// c need not be sorted; the result depends only on the multiset of values.
func Conjugate(c []int, m int) []int {
	star := make([]int, m)
	for k := range star {
		n := 0
		for _, v := range c {
			if v > k {
				n++
			}
		}
		star[k] = n
	}
	return star
}

// Majorizes reports whether a majorizes b: both sorted non-increasingly
// (zero-padded to equal length), every prefix sum of a is at least the
// corresponding prefix sum of b, and the totals agree.
//
// a and b need not already be sorted or of equal length; Majorizes copies,
// pads, and sorts internally.
func Majorizes(a, b []int) bool {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	sa := padSortDesc(a, n)
	sb := padSortDesc(b, n)

	var sumA, sumB int
	for i := 0; i < n; i++ {
		sumA += sa[i]
		sumB += sb[i]
		if sumA < sumB {
			return false
		}
	}
	return sumA == sumB
}

func padSortDesc(v []int, n int) []int {
	out := make([]int, n)
	copy(out, v)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Feasible is the Gale–Ryser oracle: a binary table with row sums r and
// column sums c exists iff r is majorized by the conjugate of c (the two
// ways of stating this — via conjugate(c) or via conjugate(r) — are
// equivalent restatements of the same theorem and are both checked here
// as a cross-check).
//
// Feasible panics if r or c contains a negative value. If their sums
// disagree it returns false (no table can exist regardless of shape).
func Feasible(r, c []int) bool {
	for _, v := range r {
		if v < 0 {
			panic(badNegInput)
		}
	}
	for _, v := range c {
		if v < 0 {
			panic(badNegInput)
		}
	}
	if Vector(r).Sum() != Vector(c).Sum() {
		return false
	}
	m := len(r)
	n := len(c)
	cStar := Conjugate(c, m)
	rStar := Conjugate(r, n)
	return Majorizes(cStar, r) && Majorizes(rStar, c)
}

// Package floatutil carries the small slice-ordering helper the samplers
// need: the permutation that sorts a marginal vector ascending, ties broken
// by original index.
package floatutil

import "sort"

type ordering struct {
	v    []int
	inds []int
}

func (o ordering) Len() int { return len(o.v) }

func (o ordering) Less(i, j int) bool {
	if o.v[i] != o.v[j] {
		return o.v[i] < o.v[j]
	}
	return o.inds[i] < o.inds[j]
}

func (o ordering) Swap(i, j int) {
	o.v[i], o.v[j] = o.v[j], o.v[i]
	o.inds[i], o.inds[j] = o.inds[j], o.inds[i]
}

// Ordering returns the permutation pi such that v[pi[k]] is the k-th
// smallest element of v, with ties broken by the original index. v itself
// is left untouched; a copy is sorted internally.
func Ordering(v []int) []int {
	cp := make([]int, len(v))
	copy(cp, v)
	inds := make([]int, len(v))
	for i := range inds {
		inds[i] = i
	}
	sort.Sort(ordering{v: cp, inds: inds})
	return inds
}

// Permute returns a new slice with dst[i] = src[perm[i]].
func Permute(src []int, perm []int) []int {
	dst := make([]int, len(perm))
	for i, p := range perm {
		dst[i] = src[p]
	}
	return dst
}

// Inverse returns the inverse permutation of perm.
func Inverse(perm []int) []int {
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}
	return inv
}

package latinsquare

import "math/rand"

// smallSquare handles n in {1,2,3} directly: the bit recursion's base
// marginals (floor(n/2)) degenerate for these orders, so they are
// enumerated instead.
func smallSquare(n int, rng *rand.Rand) Square {
	switch n {
	case 1:
		return Square{{0}}
	case 2:
		if rng.Float64() < 0.5 {
			return Square{{0, 1}, {1, 0}}
		}
		return Square{{1, 0}, {0, 1}}
	default: // n == 3
		return shiftedCyclic3(rng)
	}
}

// shiftedCyclic3 builds the n=3 cyclic square sq[i][j] = (i+j) mod 3, then
// applies a uniform column permutation and a fair row swap. The 6 column
// permutations times the 2 row-swap outcomes cover all 12 Latin squares of
// order 3 with equal probability.
func shiftedCyclic3(rng *rand.Rand) Square {
	base := [3][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}
	perm := rng.Perm(3)

	sq := make(Square, 3)
	for i := 0; i < 3; i++ {
		row := make([]int, 3)
		for j, p := range perm {
			row[j] = base[i][p]
		}
		sq[i] = row
	}
	if rng.Float64() < 0.5 {
		sq[0], sq[2] = sq[2], sq[0]
	}
	return sq
}

package bct

import (
	"math/rand"
	"testing"
)

func checkMarginals(t *testing.T, got Table, r, c []int) {
	t.Helper()
	for i, want := range r {
		if s := got.RowSum(i); s != want {
			t.Errorf("row %d sum = %d, want %d", i, s, want)
		}
	}
	for j, want := range c {
		if s := got.ColSum(j); s != want {
			t.Errorf("col %d sum = %d, want %d", j, s, want)
		}
	}
	for _, row := range got {
		for _, v := range row {
			if v != 0 && v != 1 {
				t.Fatalf("entry %d is not binary", v)
			}
		}
	}
}

func TestFeasibleAgreesWithSampleability(t *testing.T) {
	if !Feasible([]int{3, 3, 3}, []int{3, 3, 3}) {
		t.Error("Feasible([3,3,3],[3,3,3]) = false, want true")
	}
	if Feasible([]int{4, 0, 0}, []int{1, 1, 1}) {
		t.Error("Feasible([4,0,0],[1,1,1]) = true, want false")
	}

	r, c := []int{4, 0, 0}, []int{1, 1, 1}
	rng := rand.New(rand.NewSource(1))
	if _, err := Sample(r, c, Options{RNG: rng}); err != ErrInfeasible {
		t.Errorf("Sample() on infeasible marginals err = %v, want ErrInfeasible", err)
	}
}

func TestSampleMarginalCorrectness(t *testing.T) {
	cases := []struct {
		r, c []int
	}{
		{[]int{1, 1, 1}, []int{1, 1, 1}},
		{[]int{2, 2, 2, 2}, []int{2, 2, 2, 2}},
		{[]int{5, 0, 0, 0, 0}, []int{1, 1, 1, 1, 1}},
		{[]int{3, 3, 3}, []int{3, 3, 3}},
		{[]int{2, 1, 1}, []int{2, 1, 1}},
	}
	for ci, tc := range cases {
		rng := rand.New(rand.NewSource(int64(100 + ci)))
		for trial := 0; trial < 20; trial++ {
			got, err := Sample(tc.r, tc.c, Options{RNG: rng})
			if err != nil {
				t.Fatalf("case %d trial %d: Sample() error = %v", ci, trial, err)
			}
			checkMarginals(t, got, tc.r, tc.c)
		}
	}
}

func TestSampleDeterministicUnderFixedSeed(t *testing.T) {
	r := []int{2, 2, 2, 2}
	c := []int{2, 2, 2, 2}

	run := func() Table {
		rng := rand.New(rand.NewSource(42))
		got, err := Sample(r, c, Options{RNG: rng})
		if err != nil {
			t.Fatalf("Sample() error = %v", err)
		}
		return got
	}

	first := run()
	second := run()
	for i := range first {
		for j := range first[i] {
			if first[i][j] != second[i][j] {
				t.Fatalf("Sample() not deterministic under fixed seed: %v vs %v", first, second)
			}
		}
	}
}

func TestSampleAllOnesRowForcedFirst(t *testing.T) {
	// r=[5,0,0,0,0], c=[1,1,1,1,1]: row 0 must be all 1s, every other row
	// all 0, on every call.
	r := []int{5, 0, 0, 0, 0}
	c := []int{1, 1, 1, 1, 1}
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got, err := Sample(r, c, Options{RNG: rng})
		if err != nil {
			t.Fatalf("seed %d: Sample() error = %v", seed, err)
		}
		for j := 0; j < 5; j++ {
			if got[0][j] != 1 {
				t.Errorf("seed %d: row 0 col %d = %d, want 1", seed, j, got[0][j])
			}
		}
		for i := 1; i < 5; i++ {
			for j := 0; j < 5; j++ {
				if got[i][j] != 0 {
					t.Errorf("seed %d: row %d col %d = %d, want 0", seed, i, j, got[i][j])
				}
			}
		}
	}
}

func TestSampleWithZerosMaskCompliance(t *testing.T) {
	r := []int{1, 1}
	c := []int{1, 1}
	forced := NewMask(2, 2)
	forced[0][0] = true
	forced[1][1] = true

	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got, err := SampleWithZeros(r, c, forced, Options{RNG: rng})
		if err != nil {
			t.Fatalf("seed %d: SampleWithZeros() error = %v", seed, err)
		}
		want := [][]int{{0, 1}, {1, 0}}
		for i := range want {
			for j := range want[i] {
				if got[i][j] != want[i][j] {
					t.Errorf("seed %d: got[%d][%d] = %d, want %d", seed, i, j, got[i][j], want[i][j])
				}
			}
		}
	}
}

// TestSampleCheckSymmetryNoPanicOnFeasibleMarginals exercises the
// CheckSymmetry branch in Sample across a range of row/column shapes.
// Feasible(r,c) == Feasible(c,r) is an invariant of marginal.Feasible
// itself (both directions reduce to the same pair of majorization checks),
// so no legitimate marginal pair can trip the panic; this confirms the
// branch runs cleanly rather than being dead code.
func TestSampleCheckSymmetryNoPanicOnFeasibleMarginals(t *testing.T) {
	cases := []struct {
		r, c []int
	}{
		{[]int{1, 1, 1}, []int{1, 1, 1}},
		{[]int{2, 2, 2, 2}, []int{2, 2, 2, 2}},
		{[]int{5, 0, 0, 0, 0}, []int{1, 1, 1, 1, 1}},
		{[]int{3, 2, 1}, []int{2, 2, 2}},
	}
	for ci, tc := range cases {
		rng := rand.New(rand.NewSource(int64(ci)))
		if _, err := Sample(tc.r, tc.c, Options{RNG: rng, CheckSymmetry: true}); err != nil {
			t.Fatalf("case %d: Sample() with CheckSymmetry error = %v", ci, err)
		}
	}
}

func TestSampleWithZerosGeneralMaskCompliance(t *testing.T) {
	r := []int{2, 2, 2}
	c := []int{2, 2, 2}
	forced := NewMask(3, 3)
	forced[0][0] = true
	forced[1][1] = true

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		got, err := SampleWithZeros(r, c, forced, Options{RNG: rng})
		if err != nil {
			t.Fatalf("trial %d: SampleWithZeros() error = %v", trial, err)
		}
		checkMarginals(t, got, r, c)
		if got[0][0] != 0 || got[1][1] != 0 {
			t.Fatalf("trial %d: forced-zero cell is nonzero: %v", trial, got)
		}
	}
}

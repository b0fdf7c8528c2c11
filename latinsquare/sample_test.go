package latinsquare

import (
	"math/rand"
	"testing"
)

func checkLatinSquare(t *testing.T, sq Square, n int) {
	t.Helper()
	if len(sq) != n {
		t.Fatalf("square has %d rows, want %d", len(sq), n)
	}
	for i, row := range sq {
		if len(row) != n {
			t.Fatalf("row %d has %d cols, want %d", i, len(row), n)
		}
		seen := make([]bool, n)
		for _, v := range row {
			if v < 0 || v >= n || seen[v] {
				t.Fatalf("row %d is not a permutation of 0..%d: %v", i, n-1, row)
			}
			seen[v] = true
		}
	}
	for j := 0; j < n; j++ {
		seen := make([]bool, n)
		for i := 0; i < n; i++ {
			v := sq[i][j]
			if v < 0 || v >= n || seen[v] {
				t.Fatalf("col %d is not a permutation of 0..%d", j, n-1)
			}
			seen[v] = true
		}
	}
}

func TestSampleInvalidOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := Sample(0, Options{RNG: rng}); err != ErrInvalidOrder {
		t.Errorf("Sample(0) error = %v, want ErrInvalidOrder", err)
	}
	if _, err := Sample(-1, Options{RNG: rng}); err != ErrInvalidOrder {
		t.Errorf("Sample(-1) error = %v, want ErrInvalidOrder", err)
	}
}

func TestSampleN1(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sq, err := Sample(1, Options{RNG: rng})
	if err != nil {
		t.Fatalf("Sample(1) error = %v", err)
	}
	want := Square{{0}}
	if sq[0][0] != want[0][0] {
		t.Errorf("Sample(1) = %v, want %v", sq, want)
	}
}

func TestSampleN2BothOutcomes(t *testing.T) {
	seenA, seenB := false, false
	for seed := int64(0); seed < 50 && !(seenA && seenB); seed++ {
		rng := rand.New(rand.NewSource(seed))
		sq, err := Sample(2, Options{RNG: rng})
		if err != nil {
			t.Fatalf("Sample(2) error = %v", err)
		}
		checkLatinSquare(t, sq, 2)
		if sq[0][0] == 0 {
			seenA = true
		} else {
			seenB = true
		}
	}
	if !seenA || !seenB {
		t.Error("Sample(2) did not produce both possible squares across seeds")
	}
}

func TestSampleSmallOrders(t *testing.T) {
	for n := 1; n <= 3; n++ {
		for seed := int64(0); seed < 20; seed++ {
			rng := rand.New(rand.NewSource(seed))
			sq, err := Sample(n, Options{RNG: rng})
			if err != nil {
				t.Fatalf("n=%d seed=%d: Sample() error = %v", n, seed, err)
			}
			checkLatinSquare(t, sq, n)
		}
	}
}

func TestSampleLargerOrders(t *testing.T) {
	for _, n := range []int{4, 5, 6} {
		for seed := int64(0); seed < 5; seed++ {
			rng := rand.New(rand.NewSource(seed*31 + int64(n)))
			sq, err := Sample(n, Options{RNG: rng})
			if err != nil {
				t.Fatalf("n=%d seed=%d: Sample() error = %v", n, seed, err)
			}
			checkLatinSquare(t, sq, n)
		}
	}
}

func TestSampleOneIndexed(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	sq, err := Sample(4, Options{RNG: rng, OneIndexed: true})
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	for _, row := range sq {
		for _, v := range row {
			if v < 1 || v > 4 {
				t.Fatalf("one-indexed entry %d out of range [1,4]", v)
			}
		}
	}
}

func TestReduceNormalizesFirstRowAndColumn(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	sq, err := Sample(5, Options{RNG: rng})
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	red := Reduce(sq)
	checkLatinSquare(t, red, 5)
	for j, v := range red[0] {
		if v != j {
			t.Errorf("reduced first row = %v, want identity", red[0])
			break
		}
	}
	for i := range red {
		if red[i][0] != i {
			t.Errorf("reduced first column = %v, want identity", firstColumn(red))
			break
		}
	}
}

func firstColumn(sq Square) []int {
	out := make([]int, len(sq))
	for i, row := range sq {
		out[i] = row[0]
	}
	return out
}

func TestSampleDeterministicUnderFixedSeed(t *testing.T) {
	run := func() Square {
		rng := rand.New(rand.NewSource(123))
		sq, err := Sample(6, Options{RNG: rng})
		if err != nil {
			t.Fatalf("Sample() error = %v", err)
		}
		return sq
	}
	a := run()
	b := run()
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("Sample() not deterministic under fixed seed")
			}
		}
	}
}

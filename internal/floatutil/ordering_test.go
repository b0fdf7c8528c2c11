package floatutil

import "testing"

func TestOrderingSortsAscendingWithTieBreak(t *testing.T) {
	v := []int{3, 1, 2, 1}
	perm := Ordering(v)
	// Ties (the two 1s at indices 1 and 3) break by original index.
	want := []int{1, 3, 2, 0}
	for i := range want {
		if perm[i] != want[i] {
			t.Fatalf("Ordering(%v) = %v, want %v", v, perm, want)
		}
	}
	// v itself must be untouched.
	if v[0] != 3 || v[1] != 1 || v[2] != 2 || v[3] != 1 {
		t.Errorf("Ordering mutated its input: %v", v)
	}
}

func TestPermuteAndInverse(t *testing.T) {
	src := []int{10, 20, 30}
	perm := []int{2, 0, 1}
	got := Permute(src, perm)
	want := []int{30, 10, 20}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Permute() = %v, want %v", got, want)
		}
	}

	inv := Inverse(perm)
	roundTrip := Permute(got, inv)
	for i := range src {
		if roundTrip[i] != src[i] {
			t.Fatalf("Permute(Permute(src, perm), Inverse(perm)) = %v, want %v", roundTrip, src)
		}
	}
}

package propagate

import (
	"testing"

	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/grid"
)

func TestFillForcesFullRow(t *testing.T) {
	// r = [2,0], c = [1,1]: row 0 must be all 1s, row 1 all 0.
	r := []int{2, 0}
	c := []int{1, 1}
	mask := grid.NewMask(2, 2)

	res, err := Fill(r, c, mask)
	if err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	want := [][]int{{1, 1}, {0, 0}}
	for i := range want {
		for j := range want[i] {
			if res.B[i][j] != want[i][j] {
				t.Errorf("B[%d][%d] = %d, want %d", i, j, res.B[i][j], want[i][j])
			}
		}
	}
	if !res.Mask.All() {
		t.Error("expected fixpoint to decide every cell")
	}
	for _, v := range res.R {
		if v != 0 {
			t.Errorf("residual row sum = %d, want 0", v)
		}
	}
	for _, v := range res.C {
		if v != 0 {
			t.Errorf("residual col sum = %d, want 0", v)
		}
	}
}

func TestFillOversaturated(t *testing.T) {
	// r[0] = 3 but only 2 free cells in the row.
	r := []int{3}
	c := []int{1, 1}
	mask := grid.NewMask(1, 2)
	if _, err := Fill(r, c, mask); err != ErrOversaturated {
		t.Errorf("Fill() error = %v, want ErrOversaturated", err)
	}
}

func TestFillDoesNotMutateInputs(t *testing.T) {
	r := []int{2, 0}
	c := []int{1, 1}
	mask := grid.NewMask(2, 2)
	rCopy := append([]int(nil), r...)
	cCopy := append([]int(nil), c...)

	if _, err := Fill(r, c, mask); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	for i := range r {
		if r[i] != rCopy[i] {
			t.Errorf("Fill mutated r: got %v, want %v", r, rCopy)
		}
	}
	for j := range c {
		if c[j] != cCopy[j] {
			t.Errorf("Fill mutated c: got %v, want %v", c, cCopy)
		}
	}
}

func TestFillAtCommitsTentativeCell(t *testing.T) {
	r := []int{1, 1}
	c := []int{1, 1}
	mask := grid.NewMask(2, 2)

	res, err := FillAt(r, c, mask, 0, 0, 1)
	if err != nil {
		t.Fatalf("FillAt() error = %v", err)
	}
	// Forcing (0,0)=1 propagates to a fixpoint: the unique permutation
	// matrix [[1,0],[0,1]].
	want := [][]int{{1, 0}, {0, 1}}
	for i := range want {
		for j := range want[i] {
			if res.B[i][j] != want[i][j] {
				t.Errorf("B[%d][%d] = %d, want %d", i, j, res.B[i][j], want[i][j])
			}
		}
	}
}

func TestFillAtZeroBranchOversaturates(t *testing.T) {
	// r=[1], c=[1,0]: the only free cell in the row is (0,0); forcing it
	// to 0 leaves the row with no way to reach its sum of 1.
	r := []int{1}
	c := []int{1, 0}
	mask := grid.NewMask(1, 2)
	mask[0][1] = true

	if _, err := FillAt(r, c, mask, 0, 0, 0); err != ErrOversaturated {
		t.Errorf("FillAt(k=0) error = %v, want ErrOversaturated", err)
	}
}

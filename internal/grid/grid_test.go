package grid

import "testing"

func TestTableAddAndSums(t *testing.T) {
	a := NewTable(2, 2)
	a[0][0] = 1
	b := NewTable(2, 2)
	b[0][0] = 1
	b[1][1] = 1
	a.Add(b)

	if a.RowSum(0) != 2 {
		t.Errorf("RowSum(0) = %d, want 2", a.RowSum(0))
	}
	if a.RowSum(1) != 1 {
		t.Errorf("RowSum(1) = %d, want 1", a.RowSum(1))
	}
	if a.ColSum(0) != 2 {
		t.Errorf("ColSum(0) = %d, want 2", a.ColSum(0))
	}
}

func TestTableTransposeRoundTrip(t *testing.T) {
	a := Table{{1, 0, 1}, {0, 1, 0}}
	got := a.T().T()
	for i := range a {
		for j := range a[i] {
			if got[i][j] != a[i][j] {
				t.Fatalf("T().T() != original: got %v, want %v", got, a)
			}
		}
	}
}

func TestTableCloneIsIndependent(t *testing.T) {
	a := Table{{1, 2}, {3, 4}}
	cp := a.Clone()
	cp[0][0] = 99
	if a[0][0] != 1 {
		t.Errorf("Clone() aliases the original: mutating copy changed a[0][0] to %d", a[0][0])
	}
}

func TestMaskFreeInRowAndCol(t *testing.T) {
	m := NewMask(2, 3)
	m[0][0] = true
	m[1][2] = true

	if got := m.FreeInRow(0); got != 2 {
		t.Errorf("FreeInRow(0) = %d, want 2", got)
	}
	if got := m.FreeInCol(2); got != 1 {
		t.Errorf("FreeInCol(2) = %d, want 1", got)
	}
	if m.All() {
		t.Error("All() = true, want false (not every cell decided)")
	}
}

func TestPermuteRowsAndCols(t *testing.T) {
	a := Table{{1, 2}, {3, 4}}
	perm := []int{1, 0} // swap the two rows/cols
	rowPermuted := a.PermuteRows(perm)
	want := Table{{3, 4}, {1, 2}}
	for i := range want {
		for j := range want[i] {
			if rowPermuted[i][j] != want[i][j] {
				t.Fatalf("PermuteRows() = %v, want %v", rowPermuted, want)
			}
		}
	}

	colPermuted := a.PermuteCols(perm)
	wantCols := Table{{2, 1}, {4, 3}}
	for i := range wantCols {
		for j := range wantCols[i] {
			if colPermuted[i][j] != wantCols[i][j] {
				t.Fatalf("PermuteCols() = %v, want %v", colPermuted, wantCols)
			}
		}
	}
}

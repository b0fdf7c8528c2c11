package bct

import "github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/grid"

// Table is a binary contingency table: a dense m-by-n matrix over {0,1}.
type Table = grid.Table

// Mask is an m-by-n matrix over {0,1}; Mask[i][j] == true means cell (i,j)
// is forced to 0.
type Mask = grid.Mask

// NewMask returns an m-by-n mask with every cell false (unforced).
func NewMask(m, n int) Mask { return grid.NewMask(m, n) }

package latinsquare

import (
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/bct"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/internal/grid"
)

// Sample draws a uniformly random n-by-n Latin square. n must be at least 1.
func Sample(n int, opts Options) (Square, error) {
	opts = opts.withDefaults()
	if n <= 0 {
		return nil, ErrInvalidOrder
	}
	if n <= 3 {
		return finalize(smallSquare(n, opts.RNG), opts), nil
	}
	sq, err := retry(opts, func() (Square, error) { return sampleOnce(n, opts) })
	if err != nil {
		return nil, err
	}
	return finalize(sq, opts), nil
}

// sampleOnce handles n >= 4: draw the lowest-order bit layer as an
// unconstrained BCT, recurse on its two complementary regions for every
// higher bit, and validate the result.
func sampleOnce(n int, opts Options) (Square, error) {
	half := n / 2
	r := make([]int, n)
	c := make([]int, n)
	for i := range r {
		r[i] = half
		c[i] = half
	}

	w, err := bct.Sample(r, c, withRNG(opts.BCTOptions, opts.RNG))
	if err != nil {
		return nil, err
	}

	z := grid.NewMask(n, n)
	o := grid.NewMask(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if w[i][j] == 1 {
				o[i][j] = true
			} else {
				z[i][j] = true
			}
		}
	}

	a, err := recurseLevel(z, o, opts)
	if err != nil {
		return nil, err
	}

	sq := make(Square, n)
	for i := 0; i < n; i++ {
		row := make([]int, n)
		for j := 0; j < n; j++ {
			row[j] = w[i][j] + 2*a[i][j]
		}
		sq[i] = row
	}

	if !validSquare(sq, n) {
		return nil, ErrInvalid
	}
	return sq, nil
}

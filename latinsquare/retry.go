package latinsquare

import "fmt"

// retry wraps a single draw in the restart-on-invalid loop: verify every
// row and column is a permutation of the value set; if not, discard and
// restart.
func retry(opts Options, attempt func() (Square, error)) (Square, error) {
	var lastErr error
	for i := 0; i < opts.MaxRetries; i++ {
		sq, err := attempt()
		if err == nil {
			return sq, nil
		}
		lastErr = err
		opts.Diag.Debugf("latinsquare: attempt %d invalid: %v", i, err)
	}
	opts.Diag.Debugf("latinsquare: retry cap (%d) exhausted, last error: %v", opts.MaxRetries, lastErr)
	return nil, fmt.Errorf("%w: %v", ErrRetriesExhausted, lastErr)
}

package bct

import "fmt"

// retry wraps a single sampling attempt in an unconditional retry loop: up
// to opts.MaxRetries attempts, each consuming a fresh draw from the same
// monotonically-advancing RNG. Infeasible marginals are not retried — there
// is nothing a fresh draw could change.
func retry(opts Options, attempt func() (Table, error)) (Table, error) {
	var lastErr error
	for n := 0; n < opts.MaxRetries; n++ {
		t, err := attempt()
		if err == nil {
			return t, nil
		}
		if err == ErrInfeasible {
			return nil, err
		}
		lastErr = err
		opts.Diag.Debugf("bct: attempt %d invalid: %v", n, err)
	}
	opts.Diag.Debugf("bct: retry cap (%d) exhausted, last error: %v", opts.MaxRetries, lastErr)
	return nil, fmt.Errorf("%w: %v", ErrRetriesExhausted, lastErr)
}

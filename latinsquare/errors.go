package latinsquare

import "errors"

// ErrInvalidOrder is returned when Sample is asked for a non-positive order.
var ErrInvalidOrder = errors.New("latinsquare: order must be >= 1")

// ErrInvalid is returned when a single draw fails its end-of-sample
// validation: some row or column is not a permutation of the value set.
var ErrInvalid = errors.New("latinsquare: sample invalid")

// ErrRetriesExhausted is returned when Options.MaxRetries attempts have all
// failed validation.
var ErrRetriesExhausted = errors.New("latinsquare: retry cap exhausted")

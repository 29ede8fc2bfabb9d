package reduce

import "errors"

var (
	// ErrInvalidInput indicates a GCF over an empty set or a set containing 0.
	ErrInvalidInput = errors.New("reduce: gcf needs at least one number and no zero")

	// ErrOverflow indicates the exact LCM does not fit in uint32.
	ErrOverflow = errors.New("reduce: lcm overflows uint32")
)

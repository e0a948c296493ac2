package nacha

import "errors"

var (
	// ErrEmptyInput is returned when a permutation stage or the hash
	// pipeline itself is given a zero-length input.
	ErrEmptyInput = errors.New("nacha: input must not be empty")
	// ErrCapacityMismatch is returned when intertwine's two inputs do not
	// both equal the requested capacity, or when that capacity is below 2.
	ErrCapacityMismatch = errors.New("nacha: input length does not match capacity")
)

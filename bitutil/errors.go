package bitutil

import "errors"

var (
	// ErrLevelRange is returned when a rotation level falls outside [0,7].
	ErrLevelRange = errors.New("bitutil: rotation level must be in [0,7]")
	// ErrOddLength is returned when an operation that requires an even-length
	// block (rotate2s) is given an odd number of bytes.
	ErrOddLength = errors.New("bitutil: block length must be even")
	// ErrEmptyBlock is returned by operations that cannot act on an empty slice.
	ErrEmptyBlock = errors.New("bitutil: block must not be empty")
	// ErrKeySizeMismatch reports a key of the wrong length. No function in
	// this package returns it: NewSBox8 and NewSBox16 accept a key of any
	// length.
	ErrKeySizeMismatch = errors.New("bitutil: key size mismatch")
	// ErrNotDeterministic is returned when an S-box construction function
	// produces the same output for two distinct inputs (a collision), which
	// means the mapping cannot be bijective.
	ErrNotDeterministic = errors.New("bitutil: function provided to s-box is not deterministic")
)

package kobra

import "errors"

var (
	// ErrKeyTooShort is returned when a key has fewer than MinKeySize bytes.
	ErrKeyTooShort = errors.New("kobra: key must be at least 12 bytes")
	// ErrKeyLongerThanData is returned when a key is longer than the data
	// it is being used to transform.
	ErrKeyLongerThanData = errors.New("kobra: key must not be longer than the data it transforms")
	// ErrHiddenLongerThanCover is returned when the hidden message passed
	// to Conceal is longer than the cover it is being masked against.
	ErrHiddenLongerThanCover = errors.New("kobra: hidden message must not be longer than the cover")
)

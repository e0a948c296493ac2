package viper1

import "errors"

var (
	// ErrKeySize is returned when a key is not exactly KeySize bytes.
	ErrKeySize = errors.New("viper1: key must be exactly 60 bytes")
	// ErrIVSize is returned when an IV is not exactly IVSize bytes.
	ErrIVSize = errors.New("viper1: iv must be exactly 12 bytes")
	// ErrBlockSize is returned when plaintext/ciphertext is empty or not a
	// multiple of BlockSize bytes.
	ErrBlockSize = errors.New("viper1: data length must be a nonzero multiple of 24 bytes")
	// ErrBadHeader is returned when decrypted data does not begin with the
	// 0xA5, 0x5A magic header bytes.
	ErrBadHeader = errors.New("viper1: ciphertext header magic mismatch")
)

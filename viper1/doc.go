// Package viper1 implements the VIPER-1 block cipher: a Lai-Massey-style
// network with a 24-byte block, a 60-byte key, and 16 rounds, each using one
// of two invertible half-round functions (add-rotate-XOR and
// reverse-multiply) as selected by a key-derived schedule bit, and each
// bracketed by a bit-permutation stage.
//
// VIPER-1 is not a standards-conformant cipher and makes no cryptanalytic
// security claim; it is a from-scratch construction whose only hard
// requirement is that every stage used for encryption has a bit-exact
// inverse used for decryption. Confusion comes mostly from the large key
// and the Lai-Massey structure; diffusion is deliberately modest (see the
// avalanche property in the package tests).
package viper1

// HalfBlockPair is VIPER-1's internal state: an ordered pair of 12-byte
// halves of a 24-byte block.
type HalfBlockPair struct {
	L []byte
	R []byte
}

const (
	// BlockSize is the size, in bytes, of one VIPER-1 block.
	BlockSize = 24
	// HalfSize is the size, in bytes, of one half of a block.
	HalfSize = 12
	// KeySize is the required size, in bytes, of a VIPER-1 key.
	KeySize = 60
	// IVSize is the required size, in bytes, of a VIPER-1 IV.
	IVSize = 12
	// Rounds is the total number of rounds per block cycle.
	Rounds = 16
	// mainKeyRounds is how many of Rounds consume the caller's key; the
	// remainder use the fixed constant sub-key.
	mainKeyRounds = 12
)

// constSubKey is the 5-byte 0xA5 sub-key used by the last four rounds of
// every cycle, in place of a window into the caller's key.
var constSubKey = []byte{0xA5, 0xA5, 0xA5, 0xA5, 0xA5}

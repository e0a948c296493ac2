// Package kobra implements a calycryptographic concealment scheme: a
// hidden message is masked against a cover buffer using an ARX-CBC stream
// cipher so that the cover is left byte-for-byte unchanged, while a small
// extraction artifact (an encrypt key, an extract
// key, and an IV) is produced alongside it. Recovering the hidden message
// requires both the cover and the artifact; the cover alone reveals
// nothing about the hidden message's length or content beyond the fact
// that one exists.
//
// This is an obfuscation technique, not an encryption scheme with an
// integrity guarantee: the extraction artifact is exactly as long as the
// hidden message, which means a side channel (the artifact's length)
// leaks that length to anyone who sees it.
package kobra

// KeyPair is the artifact produced by Conceal and required by Reveal.
type KeyPair struct {
	// EncryptKey is the caller's original key, carried through unchanged.
	EncryptKey []byte
	// ExtractKey is the same length as the hidden message and is required,
	// together with EncryptKey and IV, to recover it.
	ExtractKey []byte
	// IV is the single-byte chaining seed used throughout the construction.
	IV byte
}

// MinKeySize is the smallest key cipherEncrypt/cipherDecrypt will accept.
const MinKeySize = 12

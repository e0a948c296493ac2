package ercrypto

import (
	"github.com/pkg/errors"

	"github.com/Evan-Clegern/liberc-crypto/nacha"
	"github.com/Evan-Clegern/liberc-crypto/viper1"
)

// DeriveViperKeyIV derives a VIPER-1 key and IV from plaintext the same way
// the original test driver did: hash plaintext to a 512E (64-byte) digest
// and drop the last 4 bytes for the 60-byte key, and separately hash it to
// a 128 (16-byte) digest and drop the last 4 bytes for the 12-byte IV.
// Because both digests are pure functions of plaintext, any caller holding
// the same plaintext can rederive the same key and IV without transmitting
// either.
func DeriveViperKeyIV(plaintext []byte) (key, iv []byte, err error) {
	digest512E, err := nacha.HashData512E(plaintext)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ercrypto: deriving viper key")
	}
	digest128, err := nacha.HashData128(plaintext)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ercrypto: deriving viper iv")
	}
	return digest512E[:viper1.KeySize], digest128[:viper1.IVSize], nil
}

// RoundTrip hashes plaintext to derive a VIPER-1 key and IV via
// DeriveViperKeyIV, encrypts plaintext under EncryptData, then immediately
// decrypts the result and returns both the ciphertext and the recovered
// plaintext, mirroring the original test.cpp demo scenario end to end.
func RoundTrip(plaintext []byte) (ciphertext, recovered []byte, err error) {
	key, iv, err := DeriveViperKeyIV(plaintext)
	if err != nil {
		return nil, nil, err
	}
	ciphertext, err = viper1.EncryptData(plaintext, key, iv)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ercrypto: encrypting")
	}
	recovered, err = viper1.DecryptData(ciphertext, key, iv)
	if err != nil {
		return ciphertext, nil, errors.Wrap(err, "ercrypto: decrypting")
	}
	return ciphertext, recovered, nil
}

package viper1

import (
	"bytes"
	"testing"
)

func testKey() []byte {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i*7 + 11)
	}
	return key
}

func testIV() []byte {
	iv := make([]byte, IVSize)
	for i := range iv {
		iv[i] = byte(i*3 + 1)
	}
	return iv
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := testKey()
	iv := testIV()
	plain := bytes.Repeat([]byte("0123456789abcdef01234567"), 4)[:BlockSize*3]

	ct, err := Encrypt(plain, key, iv)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if len(ct) != len(plain) {
		t.Fatalf("ciphertext length %d, want %d", len(ct), len(plain))
	}
	pt, err := Decrypt(ct, key, iv)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, plain) {
		t.Fatalf("round trip mismatch:\n got  %x\n want %x", pt, plain)
	}
}

func TestEncryptDataDecryptDataRoundTrip(t *testing.T) {
	key := testKey()
	iv := testIV()
	plain := []byte("the quick brown fox jumps over the lazy dog")

	ct, err := EncryptData(plain, key, iv)
	if err != nil {
		t.Fatalf("EncryptData: %v", err)
	}
	if len(ct)%BlockSize != 0 {
		t.Fatalf("ciphertext length %d not a multiple of %d", len(ct), BlockSize)
	}
	pt, err := DecryptData(ct, key, iv)
	if err != nil {
		t.Fatalf("DecryptData: %v", err)
	}
	if !bytes.Equal(pt, plain) {
		t.Fatalf("round trip mismatch:\n got  %q\n want %q", pt, plain)
	}
}

func TestEncryptDataAlwaysPads(t *testing.T) {
	// A plaintext whose header-prefixed length is already block-aligned
	// still receives a full extra block of padding.
	key := testKey()
	iv := testIV()
	plain := make([]byte, BlockSize-3)

	ct, err := EncryptData(plain, key, iv)
	if err != nil {
		t.Fatalf("EncryptData: %v", err)
	}
	if len(ct) != 2*BlockSize {
		t.Fatalf("ciphertext length %d, want %d", len(ct), 2*BlockSize)
	}
}

func TestDecryptDataRejectsBadHeader(t *testing.T) {
	key := testKey()
	iv := testIV()
	garbage := make([]byte, BlockSize*2)
	for i := range garbage {
		garbage[i] = byte(i)
	}
	ct, err := Encrypt(garbage, key, iv)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := DecryptData(ct, key, iv); err != ErrBadHeader {
		t.Fatalf("expected ErrBadHeader, got %v", err)
	}
}

func TestEncryptRejectsBadSizes(t *testing.T) {
	key := testKey()
	iv := testIV()
	if _, err := Encrypt(make([]byte, BlockSize), key[:10], iv); err != ErrKeySize {
		t.Fatalf("expected ErrKeySize, got %v", err)
	}
	if _, err := Encrypt(make([]byte, BlockSize), key, iv[:5]); err != ErrIVSize {
		t.Fatalf("expected ErrIVSize, got %v", err)
	}
	if _, err := Encrypt(make([]byte, BlockSize+1), key, iv); err != ErrBlockSize {
		t.Fatalf("expected ErrBlockSize, got %v", err)
	}
	if _, err := Encrypt(nil, key, iv); err != ErrBlockSize {
		t.Fatalf("expected ErrBlockSize for empty input, got %v", err)
	}
}

func TestEncryptChangesWithDifferentIV(t *testing.T) {
	key := testKey()
	plain := bytes.Repeat([]byte{0x42}, BlockSize*2)

	ct1, err := Encrypt(plain, key, testIV())
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	iv2 := testIV()
	iv2[0] ^= 0xFF
	ct2, err := Encrypt(plain, key, iv2)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if bytes.Equal(ct1, ct2) {
		t.Fatalf("ciphertexts should differ under different IVs")
	}
}

func TestEncryptAvalancheAcrossBlocks(t *testing.T) {
	// Flipping a single bit of block one should change some bits in both
	// blocks, since chaining derives each block's mix value from the
	// previous block's ciphertext.
	key := testKey()
	iv := testIV()
	plain := bytes.Repeat([]byte{0x00}, BlockSize*2)

	ct1, err := Encrypt(plain, key, iv)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	plain2 := make([]byte, len(plain))
	copy(plain2, plain)
	plain2[0] ^= 0x01
	ct2, err := Encrypt(plain2, key, iv)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	diffFirst := 0
	for i := 0; i < BlockSize; i++ {
		if ct1[i] != ct2[i] {
			diffFirst++
		}
	}
	diffSecond := 0
	for i := BlockSize; i < 2*BlockSize; i++ {
		if ct1[i] != ct2[i] {
			diffSecond++
		}
	}
	if diffFirst == 0 {
		t.Fatalf("expected the first block to change")
	}
	if diffSecond == 0 {
		t.Fatalf("expected chaining to propagate the change into the second block")
	}
}

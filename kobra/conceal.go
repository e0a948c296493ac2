package kobra

// Conceal masks hidden against cover using key and iv and returns the
// extraction artifact needed to recover it. cover is never modified or
// returned; only the artifact is. len(hidden) must be at least len(key)
// and at most len(cover).
func Conceal(cover, key, hidden []byte, iv byte) (KeyPair, error) {
	if len(hidden) > len(cover) {
		return KeyPair{}, ErrHiddenLongerThanCover
	}

	masked := xorByte(hidden, iv)

	coverPass, err := cipherEncrypt(cover, key, iv)
	if err != nil {
		return KeyPair{}, err
	}
	mixed := xorVectors(coverPass, masked)

	truncated := mixed[:len(hidden)]
	extractKey, err := cipherEncrypt(truncated, key, iv)
	if err != nil {
		return KeyPair{}, err
	}

	return KeyPair{EncryptKey: key, ExtractKey: extractKey, IV: iv}, nil
}

// Reveal recovers the message a prior Conceal call masked against cover,
// given the artifact Conceal returned.
func Reveal(cover []byte, artifact KeyPair) ([]byte, error) {
	coverPass, err := cipherEncrypt(cover, artifact.EncryptKey, artifact.IV)
	if err != nil {
		return nil, err
	}
	truncated, err := cipherDecrypt(artifact.ExtractKey, artifact.EncryptKey, artifact.IV)
	if err != nil {
		return nil, err
	}

	mixed := xorVectors(coverPass, truncated)
	masked := mixed[:len(artifact.ExtractKey)]
	return xorByte(masked, artifact.IV), nil
}

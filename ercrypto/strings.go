package ercrypto

// Latin1ToBytes returns s's underlying bytes unchanged, the same
// byte-for-byte mapping the original driver's strToBVec used (it treated a
// C++ char as an unsigned byte, not a UTF-8 code unit). Passing genuine
// multi-byte UTF-8 text returns its raw encoded bytes, not one byte per
// rune; this is a demo-level convenience, not a general string codec.
func Latin1ToBytes(s string) []byte {
	return []byte(s)
}

// BytesToLatin1 is the inverse of Latin1ToBytes: it returns b reinterpreted
// as a string without any UTF-8 decoding, matching bvecToStr's plain byte
// append.
func BytesToLatin1(b []byte) string {
	return string(b)
}

// Package ercrypto is the convenience layer over viper1, nacha, and kobra:
// the fixed parameter tuples, string/byte-vector adapters, and the derived
// key/IV recipe the original demo driver used to wire the three primitives
// together. None of this is part of the cryptographic core; it exists so
// that cmd/ercrypt, and callers embedding this module, don't have to
// rederive these tuples themselves.
package ercrypto

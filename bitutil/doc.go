// Package bitutil - shared bit-twiddling primitives for liberc-crypto.
//
// It provides cyclic XOR, paired/ring bit rotation, index rearrangement, and
// deterministic substitution-table construction. The viper1, nacha and kobra
// packages do not import it; each carries its own bit operations. Every
// function here is a pure transform over a byte slice; none of them
// retain state between calls.
package bitutil

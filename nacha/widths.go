package nacha

// Fixed-width adapters over Hash, named after their output size in bytes
// and, where more than one triple shares a capacity, an "E" suffix
// stepping the denominators up.
var (
	width16  = capacDenominators{capacity: 16, blkA: 5, blkB: 3}
	width16E = capacDenominators{capacity: 16, blkA: 7, blkB: 4}
	width32  = capacDenominators{capacity: 32, blkA: 7, blkB: 4}
	width32E = capacDenominators{capacity: 32, blkA: 9, blkB: 5}
	width48  = capacDenominators{capacity: 48, blkA: 9, blkB: 5}
	width48E = capacDenominators{capacity: 48, blkA: 11, blkB: 6}
	width64  = capacDenominators{capacity: 64, blkA: 11, blkB: 6}
	width64E = capacDenominators{capacity: 64, blkA: 13, blkB: 7}
	width96  = capacDenominators{capacity: 96, blkA: 13, blkB: 7}
	width96E = capacDenominators{capacity: 96, blkA: 15, blkB: 8}
)

func adaptHash(in []byte, p capacDenominators) ([]byte, error) {
	return Hash(in, p.capacity, p.blkA, p.blkB)
}

// HashData128 hashes in to a 16-byte digest using the 5/3 denominators.
func HashData128(in []byte) ([]byte, error) { return adaptHash(in, width16) }

// HashData128E hashes in to a 16-byte digest using the 7/4 denominators.
func HashData128E(in []byte) ([]byte, error) { return adaptHash(in, width16E) }

// HashData256 hashes in to a 32-byte digest using the 7/4 denominators.
func HashData256(in []byte) ([]byte, error) { return adaptHash(in, width32) }

// HashData256E hashes in to a 32-byte digest using the 9/5 denominators.
func HashData256E(in []byte) ([]byte, error) { return adaptHash(in, width32E) }

// HashData384 hashes in to a 48-byte digest using the 9/5 denominators.
func HashData384(in []byte) ([]byte, error) { return adaptHash(in, width48) }

// HashData384E hashes in to a 48-byte digest using the 11/6 denominators.
func HashData384E(in []byte) ([]byte, error) { return adaptHash(in, width48E) }

// HashData512 hashes in to a 64-byte digest using the 11/6 denominators.
func HashData512(in []byte) ([]byte, error) { return adaptHash(in, width64) }

// HashData512E hashes in to a 64-byte digest using the 13/7 denominators.
func HashData512E(in []byte) ([]byte, error) { return adaptHash(in, width64E) }

// HashData768 hashes in to a 96-byte digest using the 13/7 denominators.
func HashData768(in []byte) ([]byte, error) { return adaptHash(in, width96) }

// HashData768E hashes in to a 96-byte digest using the 15/8 denominators.
func HashData768E(in []byte) ([]byte, error) { return adaptHash(in, width96E) }

package nacha

var padA = []byte{0xDE, 0xAD, 0xBE, 0xEF}
var padB = []byte{0xFE, 0xED, 0xC0, 0xDE}

// padCyclic appends bytes drawn cyclically from pad until tmp's length is a
// multiple of width. The underflow count is always in [1, width] — even an
// already-aligned input receives a full extra block, a deliberate quirk of
// this padding scheme rather than an omission.
func padCyclic(tmp, pad []byte, width int) []byte {
	underflow := width - (len(tmp) % width)
	idx := 0
	for i := 0; i < underflow; i++ {
		tmp = append(tmp, pad[idx])
		idx = (idx + 1) % len(pad)
	}
	return tmp
}

// permuteA pads Input to a multiple of 8 bytes with cyclic 0xDEADBEEF, then
// for every 8-byte chunk transposes its 8x8 bit matrix: bit b of byte i in
// the chunk becomes bit i of output byte b. A second pass then folds every
// output byte against its mirror position using a cumulative XOR of every
// byte of the padded input, doubling the length minus one byte.
func permuteA(input []byte) []byte {
	tmp := make([]byte, len(input))
	copy(tmp, input)
	tmp = padCyclic(tmp, padA, 8)
	nsize := len(tmp)

	out := make([]byte, 0, nsize)
	var totXOR byte
	for c := 0; c < nsize/8; c++ {
		ind := c * 8
		chunk := make([]byte, 8)
		for i := 0; i < 8; i++ {
			n := tmp[ind+i]
			totXOR ^= n
			for b := 0; b < 8; b++ {
				bit := n & 1
				n >>= 1
				chunk[b] |= bit << uint(i)
			}
		}
		out = append(out, chunk...)
	}

	firstPassLen := len(out)
	for i := 0; i < firstPassLen-1; i++ {
		ind := (firstPassLen - 1) - i
		n := out[ind]
		j := out[i]
		out = append(out, ((n>>4)|(j<<4))^(^(j&n)^totXOR))
	}
	return out
}

// permuteB pads Input to a multiple of 8 bytes with cyclic 0xFEEDC0DE, then
// for every 8-byte chunk places bit b of byte i at position (i-b) mod 8 of
// output byte b, staggering which byte's bit lands at the top.
func permuteB(input []byte) []byte {
	tmp := make([]byte, len(input))
	copy(tmp, input)
	tmp = padCyclic(tmp, padB, 8)
	nsize := len(tmp)

	out := make([]byte, 0, nsize)
	for c := 0; c < nsize/8; c++ {
		ind := c * 8
		chunk := make([]byte, 8)
		for i := 0; i < 8; i++ {
			n := tmp[ind+i]
			for b := 0; b < 8; b++ {
				bit := n & 1
				val := i - b
				if val < 0 {
					val += 8
				}
				n >>= 1
				chunk[b] |= bit << uint(val)
			}
		}
		out = append(out, chunk...)
	}
	return out
}

// permuteC applies permuteB, pads to even length with 0xFF, then shrinks
// the result by half: byte i is paired with byte (size/2 - i) using one of
// two alternating nibble-cross-XOR patterns, and the resulting bytes are
// then each run through an alternating affine nonlinearity before the
// output is returned.
func permuteC(input []byte) []byte {
	permuted := permuteB(input)
	size := len(permuted)
	if size&1 == 1 {
		permuted = append(permuted, 0xFF)
		size++
	}

	outa := make([]byte, 0, size/2)
	toggle := false
	for i := 0; i < size/2; i++ {
		t := permuted[i]
		j := permuted[size/2-i]
		if toggle {
			outa = append(outa, (t>>4)^(j<<4)^(t & ^j))
		} else {
			outa = append(outa, (t>>3)^(j<<5)^(^t&j))
		}
		toggle = !toggle
	}

	out := make([]byte, 0, len(outa))
	for _, i := range outa {
		ic := int32(i)
		if toggle {
			val := (ic * (^ic >> 4)) % 256
			out = append(out, byte(val)^i)
		} else {
			val := (ic*(ic>>3) + (^ic >> 5)) % 256
			out = append(out, byte(val)^i)
		}
		toggle = !toggle
	}
	return out
}

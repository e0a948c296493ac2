package nacha

// Hash runs the full six-phase NACHA pipeline over in and compresses the
// result to exactly capacity bytes, using blkA and blkB as the two group
// counts the pipeline alternates between while splitting. in must be
// non-empty.
func Hash(in []byte, capacity uint16, blkA, blkB byte) ([]byte, error) {
	if len(in) == 0 {
		return nil, ErrEmptyInput
	}

	// Phase 1: split by blkB, permuteA every group, plus mix/permuteC on
	// every other group.
	chunks := split(in, blkB, defaultSplitPadding)
	var acc [][]byte
	toggle := false
	for _, c := range chunks {
		acc = append(acc, permuteA(c))
		if toggle {
			acc = append(acc, mix(c, true))
			acc = append(acc, permuteC(c))
		}
		toggle = !toggle
	}

	// Phase 2: re-inject mix(in,1), split by blkA, permuteC every group
	// plus mix/permuteA(mix) on every other group.
	toggle = true
	acc = append(acc, mix(in, true))
	chunks = split(fuse(acc), blkA, defaultSplitPadding)
	acc = nil
	for _, c := range chunks {
		acc = append(acc, permuteC(c))
		if toggle {
			acc = append(acc, mix(c, false))
			acc = append(acc, permuteA(mix(c, true)))
		}
		toggle = !toggle
	}

	// Phase 3: re-split the original input by blkB.
	toggle = false
	chunks = split(in, blkB, defaultSplitPadding)
	for _, c := range chunks {
		acc = append(acc, mix(permuteC(c), false))
		if toggle {
			acc = append(acc, permuteA(mix(c, true)))
		}
		toggle = !toggle
	}

	// Phase 4: split by blkA.
	toggle = true
	chunks = split(fuse(acc), blkA, defaultSplitPadding)
	acc = nil
	for _, c := range chunks {
		acc = append(acc, mix(permuteB(c), true))
		if toggle {
			acc = append(acc, permuteC(c))
		}
		toggle = !toggle
	}

	// Phase 5: re-inject the raw input, split by blkB.
	acc = append(acc, in)
	toggle = false
	chunks = split(fuse(acc), blkB, defaultSplitPadding)
	acc = nil
	for _, c := range chunks {
		acc = append(acc, mix(permuteC(c), false))
		if toggle {
			acc = append(acc, permuteA(c))
		}
		toggle = !toggle
	}

	// Phase 6: final mix of the fused result.
	temp := mix(fuse(acc), true)

	return compress(temp, capacity)
}

// compress pads temp with 0x5A to a multiple of capacity, XOR-reduces each
// resulting row into one byte carrying a rolling affine offset between
// rows, then intertwines the reduced vector against an auxiliary
// capacity-length vector built from a semi-affine formula over the index.
func compress(temp []byte, capacity uint16) ([]byte, error) {
	capac := int(capacity)
	add := capac - (len(temp) % capac)
	for ; add > 0; add-- {
		temp = append(temp, 0x5A)
	}

	siz := len(temp)
	ratio := siz / capac
	blk := make([]byte, ratio)
	blkIn := 0
	toggle := false
	lastxor := byte(wideComplement(temp[siz-1]) >> 3)

	reduced := make([]byte, 0, capac)
	for i := 0; i < siz; i++ {
		if toggle {
			blk[blkIn] = temp[i] + lastxor
		} else {
			blk[blkIn] = temp[i]
		}
		blkIn++
		toggle = !toggle
		if blkIn == ratio {
			var j byte
			for _, a := range blk {
				j ^= a
			}
			reduced = append(reduced, j)
			lastxor = byte(wideComplement(j) >> 3)
			blkIn = 0
		}
	}

	aux := make([]byte, capac)
	for i := 0; i < capac; i++ {
		n := byte(i)
		t := (n + lastxor) * (n + (byte(i) ^ byte(capacity)))
		aux[i] = t
	}

	return intertwine(reduced, aux, capac)
}

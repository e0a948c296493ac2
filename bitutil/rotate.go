package bitutil

// Rotate2s rotates each adjacent byte pair (data[i], data[i+1]) into each
// other by lvl bits. left selects which member of the pair donates its high
// bits first. len(data) must be even.
func Rotate2s(data []byte, left bool, lvl byte) ([]byte, error) {
	if lvl > 7 {
		return nil, ErrLevelRange
	}
	if len(data)%2 != 0 {
		return nil, ErrOddLength
	}
	out := make([]byte, len(data))
	for i := 0; i < len(data)-1; i += 2 {
		a, b := data[i], data[i+1]
		if left {
			out[i] = (a << lvl) | (b >> (8 - lvl))
			out[i+1] = (b << lvl) | (a >> (8 - lvl))
		} else {
			out[i] = (a >> lvl) | (b << (8 - lvl))
			out[i+1] = (b >> lvl) | (a << (8 - lvl))
		}
	}
	return out, nil
}

// RotateAll treats data as a ring of bytes and rotates bits across
// neighbours by lvl bits. Calling RotateAll with the opposite direction and
// the same lvl undoes the transform.
func RotateAll(data []byte, left bool, lvl byte) ([]byte, error) {
	if lvl > 7 {
		return nil, ErrLevelRange
	}
	n := len(data)
	if n == 0 {
		return nil, ErrEmptyBlock
	}
	out := make([]byte, n)
	if left {
		next := data[1%n]
		for i := 0; i < n-1; i++ {
			out[i] = (data[i] >> lvl) | (next << (8 - lvl))
			if i+2 < n {
				next = data[i+2]
			}
		}
		out[n-1] = (data[n-1] >> lvl) | (data[0] << (8 - lvl))
	} else {
		last := data[n-1]
		for i := 0; i < n; i++ {
			out[i] = (data[i] << lvl) | (last >> (8 - lvl))
			last = data[i]
		}
	}
	return out, nil
}

package bitutil

// Rearrange permutes main according to table, a permutation of 0..len(main)-1.
// Forward placement sends main[i] to position table[i]; the reverse reads
// position table[i] back out to slot i, which is the exact inverse of the
// forward placement for the same table.
func Rearrange(main, table []byte, forward bool) []byte {
	out := make([]byte, len(main))
	if forward {
		for i, v := range main {
			out[table[i]] = v
		}
	} else {
		for i := range main {
			out[i] = main[table[i]]
		}
	}
	return out
}

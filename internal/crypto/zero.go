package crypto

// Zero overwrites a byte slice in memory with zeros. Callers use it to
// discard raw key material as soon as a wrapped copy exists.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

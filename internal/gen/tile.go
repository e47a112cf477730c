package gen

// Tile repeats pattern until the output is exactly size bytes long; the
// final repetition is truncated. pattern must not be empty unless size is 0.
func Tile(pattern []byte, size int64) []byte {
	out := make([]byte, size)
	if size == 0 || len(pattern) == 0 {
		return out
	}
	filled := copy(out, pattern)
	for int64(filled) < size {
		filled += copy(out[filled:], out[:filled])
	}
	return out
}

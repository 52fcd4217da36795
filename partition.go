package charfreq

// segment is a contiguous half-open range [lo, hi) of character
// indices assigned to one worker.
type segment struct {
	lo, hi int
}

// partition divides chars characters into parts contiguous segments
// that tile the text exactly. Segments hold floor(chars/parts) or
// ceil(chars/parts) characters, with the remainder spread over the
// first segments. Boundaries are character indices, never byte
// offsets, so a multi-byte encoding can never be cut in two.
// The caller guarantees 1 <= parts <= chars.
func partition(chars, parts int) []segment {
	size := chars / parts
	remainder := chars % parts

	segments := make([]segment, 0, parts)
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + size
		if i < remainder {
			hi++
		}
		segments = append(segments, segment{lo: lo, hi: hi})
		lo = hi
	}
	return segments
}

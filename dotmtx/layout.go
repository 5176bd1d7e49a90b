package dotmtx

// Layout writes the glyphs of text into out, starting at index 0. Consecutive
// glyphs are separated by one Spacing and the last one is followed by
// trailing further Spacing entries. Nothing is written for an empty text, not
// even the trailing spacing.
//
// out must hold at least BufSize(text, trailing) entries; Layout panics
// otherwise. Entries beyond those written are left alone.
func Layout(text string, trailing int, out []Glyph) {
	if len(text) == 0 {
		return
	}

	ix := 0
	for _, r := range text {
		if ix > 0 {
			out[ix] = Spacing
			ix++
		}

		out[ix] = Resolve(r)
		ix++
	}

	for i := 0; i < trailing; i++ {
		out[ix] = Spacing
		ix++
	}
}

// BufSize returns the buffer size Layout needs for text followed by extra
// spacing columns. The size is computed from the length of text in bytes, so
// it is exact for ASCII and too large for text with multi-byte characters.
// An empty text needs no buffer.
//
// For a constant text the same value is the constant expression
// 2*len(text) - 1 + extra.
func BufSize(text string, extra int) int {
	if len(text) == 0 {
		return 0
	}
	return len(text)*2 - 1 + extra
}

// Columns returns the total number of columns in glyphs, which is the width
// in dots of the laid out text.
func Columns(glyphs []Glyph) int {
	n := 0
	for _, g := range glyphs {
		n += len(g)
	}
	return n
}

package dotmtx

// Resolve returns the glyph for r. Lowercase ASCII letters share the glyphs
// of their uppercase forms; anything the font does not cover resolves to
// Unsupported.
func Resolve(r rune) Glyph {
	if 'a' <= r && r <= 'z' {
		r -= 'a' - 'A'
	}

	switch {
	case 'A' <= r && r <= 'Z':
		return letters[r-'A']
	case '0' <= r && r <= '9':
		return digits[r-'0']
	}

	switch r {
	case '!':
		return symbols[0]
	case '.':
		return symbols[1]
	case ' ':
		return symbols[2]
	case '-':
		return symbols[3]
	case '=':
		return symbols[4]
	case '#':
		return symbols[5]
	case '+':
		return symbols[6]
	}

	return Unsupported
}

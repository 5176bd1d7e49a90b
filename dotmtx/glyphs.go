package dotmtx

// Glyph is the column definition of one character of the UGLY-MAXIMAL font.
//
// Each byte is a column, left to right. Only the low Height bits of a column
// are used and bit 0 is the top row, so the first column of 'A', 0x1e, leaves
// the top left dot dark. Glyphs are strings so that every table entry is an
// immutable constant shared by all callers.
type Glyph string

// Height is the number of rows of every glyph.
const Height = 5

// Width returns the number of columns of g.
func (g Glyph) Width() int {
	return len(g)
}

// Column returns the bit mask of column i.
func (g Glyph) Column(i int) uint8 {
	return g[i]
}

// Pixel reports whether the dot at column x, row y is lit.
// Dots outside the glyph are never lit.
func (g Glyph) Pixel(x, y int) bool {
	if x < 0 || x >= len(g) || y < 0 || y >= Height {
		return false
	}
	return g[x]>>uint(y)&1 != 0
}

const (
	// Unsupported is shown for characters the font has no glyph for.
	Unsupported Glyph = "\x11\x13\x15\x19\x11"
	// Spacing is a single dark column.
	Spacing Glyph = "\x00"
)

var letters = [26]Glyph{
	/*A*/ "\x1e\x09\x09\x09\x1e",
	/*B*/ "\x1f\x15\x15\x15\x0a",
	/*C*/ "\x0e\x11\x11\x11\x11",
	/*D*/ "\x1f\x11\x11\x11\x0e",
	/*E*/ "\x1f\x15\x15\x15\x11",
	/*F*/ "\x1f\x05\x05\x05\x01",
	/*G*/ "\x0e\x11\x15\x15\x09",
	/*H*/ "\x1f\x04\x04\x04\x1f",
	/*I*/ "\x11\x11\x1f\x11\x11",
	/*J*/ "\x0c\x10\x10\x10\x0f",
	/*K*/ "\x1f\x04\x04\x0a\x11",
	/*L*/ "\x1f\x10\x10\x10\x08",
	/*M*/ "\x1f\x01\x06\x01\x1f",
	/*N*/ "\x1f\x01\x0e\x10\x1f",
	/*O*/ "\x0e\x11\x11\x11\x0e",
	/*P*/ "\x1f\x05\x05\x05\x02",
	/*Q*/ "\x0e\x11\x15\x09\x16",
	/*R*/ "\x1f\x05\x05\x0d\x16",
	/*S*/ "\x16\x15\x15\x15\x0d",
	/*T*/ "\x01\x01\x1f\x01\x01",
	/*U*/ "\x0f\x10\x10\x10\x0f",
	/*V*/ "\x07\x08\x10\x08\x07",
	/*W*/ "\x0f\x10\x1f\x10\x0f",
	/*X*/ "\x11\x0a\x04\x0a\x11",
	/*Y*/ "\x01\x02\x1c\x02\x01",
	/*Z*/ "\x11\x19\x15\x13\x11",
}

var digits = [10]Glyph{
	/*0*/ "\x1f\x11\x11\x1f",
	/*1*/ "\x04\x02\x01\x1f",
	/*2*/ "\x1d\x15\x15\x17",
	/*3*/ "\x15\x15\x15\x1f",
	/*4*/ "\x07\x04\x04\x1f",
	/*5*/ "\x17\x15\x15\x1d",
	/*6*/ "\x1f\x15\x15\x1d",
	/*7*/ "\x03\x01\x01\x1f",
	/*8*/ "\x1f\x15\x15\x1f",
	/*9*/ "\x07\x05\x05\x1f",
}

// symbolSet lists the supported symbols in the order of the symbols table.
const symbolSet = "!. -=#+"

var symbols = [len(symbolSet)]Glyph{
	/*!*/ "\x17",
	/*.*/ "\x10",
	/* */ "\x00",
	/*-*/ "\x04\x04\x04",
	/*=*/ "\x0a\x0a\x0a",
	/*#*/ "\x0a\x1f\x0a\x1f\x0a",
	/*+*/ "\x04\x0e\x04",
}

// Letter returns the glyph of the i-th letter of the English alphabet,
// counting from 'A' = 0.
func Letter(i int) Glyph {
	return letters[i]
}

// Digit returns the glyph of the digit i.
func Digit(i int) Glyph {
	return digits[i]
}

// Symbols returns the supported symbols, in the order used by Symbol.
func Symbols() string {
	return symbolSet
}

// Symbol returns the glyph of the i-th character of Symbols().
func Symbol(i int) Glyph {
	return symbols[i]
}

package dotmtx

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"petbots.fbbdev.it/uglymax/log"
)

// Widths of the fixed-width tables.
const (
	LetterWidth = 5
	DigitWidth  = 4
)

// Resource limits
const (
	MaxChars = 100
)

var errColumnOverflow = errors.New("column does not fit in glyph height")
var errGlyphWidth = errors.New("unexpected glyph width")

func init() {
	if err := validate(); err != nil {
		log.ErrorLogger.Print("dotmtx: ", err)
		log.FatalLogger.Fatal("could not load UGLY-MAXIMAL glyph tables")
	}

	log.DebugLogger.Printf("glyph tables loaded: %d letters, %d digits, %d symbols", len(letters), len(digits), len(symbols))
}

func checkGlyph(g Glyph, minWidth, maxWidth int) error {
	if g.Width() < minWidth || g.Width() > maxWidth {
		return fmt.Errorf("%w: %d columns", errGlyphWidth, g.Width())
	}

	for i := 0; i < g.Width(); i++ {
		if g.Column(i) >= 1<<Height {
			return fmt.Errorf("%w: column %d is %#x", errColumnOverflow, i, g.Column(i))
		}
	}

	return nil
}

// validate checks every table entry against the width and height of its
// table.
func validate() error {
	for i, g := range letters {
		if err := checkGlyph(g, LetterWidth, LetterWidth); err != nil {
			return fmt.Errorf("letter %c: %w", 'A'+i, err)
		}
	}

	for i, g := range digits {
		if err := checkGlyph(g, DigitWidth, DigitWidth); err != nil {
			return fmt.Errorf("digit %c: %w", '0'+i, err)
		}
	}

	for i, g := range symbols {
		if err := checkGlyph(g, 1, LetterWidth); err != nil {
			return fmt.Errorf("symbol %q: %w", symbolSet[i], err)
		}
	}

	if err := checkGlyph(Unsupported, LetterWidth, LetterWidth); err != nil {
		return fmt.Errorf("unsupported glyph: %w", err)
	}

	if err := checkGlyph(Spacing, 1, 1); err != nil {
		return fmt.Errorf("spacing: %w", err)
	}

	return nil
}

// Metrics returns the metrics of the font with one dot per pixel.
// All glyphs sit on the baseline, so there is no descent.
func Metrics() font.Metrics {
	return font.Metrics{
		Height:    fixed.I(Height),
		Ascent:    fixed.I(Height),
		Descent:   0,
		XHeight:   fixed.I(Height),
		CapHeight: fixed.I(Height),
	}
}

// GlyphAdvance returns the advance width of r: its glyph followed by one
// Spacing.
func GlyphAdvance(r rune) fixed.Int26_6 {
	return fixed.I(Resolve(r).Width() + Spacing.Width())
}

// MeasureString returns the width of text as laid out by Layout without
// trailing spacing.
func MeasureString(text string) fixed.Int26_6 {
	columns := 0
	for i, r := range text {
		if i > 0 {
			columns += Spacing.Width()
		}
		columns += Resolve(r).Width()
	}

	return fixed.I(columns)
}

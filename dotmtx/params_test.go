package dotmtx

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func TestValidate(t *testing.T) {
	if err := validate(); err != nil {
		t.Fatal(err)
	}
}

func TestCheckGlyph(t *testing.T) {
	for _, tc := range []struct {
		name     string
		g        Glyph
		min, max int
		want     error
	}{
		{"ok", "\x1f\x00\x10", 1, 5, nil},
		{"too_wide", "\x01\x01\x01\x01\x01\x01", 1, 5, errGlyphWidth},
		{"too_narrow", "\x01\x01\x01", 4, 4, errGlyphWidth},
		{"empty", "", 1, 5, errGlyphWidth},
		{"overflow", "\x1f\x20", 1, 5, errColumnOverflow},
		{"high_bit", "\x80", 1, 1, errColumnOverflow},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := checkGlyph(tc.g, tc.min, tc.max)
			if !errors.Is(err, tc.want) {
				t.Errorf("checkGlyph(%x, %d, %d) = %v, want %v", tc.g, tc.min, tc.max, err, tc.want)
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	want := font.Metrics{
		Height:    fixed.I(5),
		Ascent:    fixed.I(5),
		XHeight:   fixed.I(5),
		CapHeight: fixed.I(5),
	}
	if d := cmp.Diff(want, Metrics()); d != "" {
		t.Errorf("Metrics (-want +got):\n%s", d)
	}
}

func TestGlyphAdvance(t *testing.T) {
	for _, tc := range []struct {
		r    rune
		want int
	}{
		{'A', 6},
		{'i', 6},
		{'7', 5},
		{'!', 2},
		{' ', 2},
		{'#', 6},
		{'>', 6},
	} {
		if got := GlyphAdvance(tc.r); got != fixed.I(tc.want) {
			t.Errorf("GlyphAdvance(%q) = %v, want %v", tc.r, got, fixed.I(tc.want))
		}
	}
}

func TestMeasureString(t *testing.T) {
	for _, text := range []string{"", "A", "HELLO WORLD!", "a-b=c", "1+1", "ÄÖÜ", "#42."} {
		out := make([]Glyph, BufSize(text, 0))
		Layout(text, 0, out)

		if got, want := MeasureString(text), fixed.I(Columns(out)); got != want {
			t.Errorf("MeasureString(%q) = %v, want %v", text, got, want)
		}
	}
}

package textlayout

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// fakeFont is a deterministic in-memory Font for exact arithmetic checks.
// upem 1000, ascender 800, descender -200 unless overridden.
type fakeFont struct {
	upem      int
	ascender  float64
	descender float64
	advances  map[rune]float64
	kerns     map[[2]rune]float64
	fallback  float64 // advance for runes missing from advances
}

func (f *fakeFont) UnitsPerEm() int    { return f.upem }
func (f *fakeFont) Ascender() float64  { return f.ascender }
func (f *fakeFont) Descender() float64 { return f.descender }

func (f *fakeFont) AdvanceWidth(r rune) float64 {
	if adv, ok := f.advances[r]; ok {
		return adv
	}
	return f.fallback
}

func (f *fakeFont) Kerning(r0, r1 rune) float64 {
	return f.kerns[[2]rune{r0, r1}]
}

// newFakeFont returns the standard test font:
// A=500, B=600, space=250, kern(A,B)=-50, fallback 400.
func newFakeFont() *fakeFont {
	return &fakeFont{
		upem:      1000,
		ascender:  800,
		descender: -200,
		advances:  map[rune]float64{'A': 500, 'B': 600, ' ': 250},
		kerns:     map[[2]rune]float64{{'A', 'B'}: -50},
		fallback:  400,
	}
}

// fakeFace wraps a fakeFont in a FontSource without going through a parser.
func fakeFace(t *testing.T, f *fakeFont, size float64) Face {
	t.Helper()

	s := &FontSource{
		data:   []byte{0},
		parsed: f,
		name:   "Fake",
	}
	s.addr = s
	return s.Face(size)
}

// regularFace creates a Go Regular test face via the default sfnt backend.
func regularFace(t *testing.T, size float64) Face {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to create font source: %v", err)
	}
	t.Cleanup(func() {
		_ = source.Close()
	})

	return source.Face(size)
}

// gotextFace creates a Go Regular test face via the gotext backend.
func gotextFace(t *testing.T, size float64) Face {
	t.Helper()

	source, err := NewFontSource(goregular.TTF, WithParser("gotext"))
	if err != nil {
		t.Fatalf("failed to create font source: %v", err)
	}
	t.Cleanup(func() {
		_ = source.Close()
	})

	return source.Face(size)
}

// approxEqual reports whether a and b differ by at most tol.
func approxEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

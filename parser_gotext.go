package textlayout

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
//
// Unlike the sfnt backend, kerning is not read from the kern table directly:
// it is derived by shaping the glyph pair with go-text's HarfBuzz
// implementation and comparing the shaped advance against the sum of the
// nominal advances. This picks up GPOS pair positioning that table-level
// lookups miss, at the cost of a shaping call per distinct pair. Results
// are cached per font (see WithKernCacheLimit).
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textlayout: failed to parse font: %w", err)
	}

	f := &gotextFont{
		face:  face,
		upem:  int(face.Upem()),
		kerns: NewCache[kernKey, float64](defaultKernCacheLimit),
	}
	f.shaperPool.New = func() any {
		return &shaping.HarfbuzzShaper{}
	}
	return f, nil
}

// kernKey identifies an ordered kerning pair in the kern cache.
type kernKey struct {
	r0, r1 rune
}

// defaultKernCacheLimit bounds the per-font kern pair cache.
const defaultKernCacheLimit = 512

// gotextFont implements Font over a go-text/typesetting face.
type gotextFont struct {
	// mu serializes access to face. font.Face has internal mutable glyph
	// caches and is NOT safe for concurrent use, unlike the embedded
	// read-only *font.Font.
	mu   sync.Mutex
	face *font.Face
	upem int

	// shaperPool pools HarfbuzzShaper instances used for kern probes.
	// HarfbuzzShaper has internal mutable state (buffer) and is NOT safe
	// for concurrent use, but reusing across sequential calls is efficient.
	shaperPool sync.Pool

	// kerns caches pair-shaping results keyed by the ordered rune pair.
	kerns *Cache[kernKey, float64]
}

// Name returns the font family name, or "" if not available.
func (f *gotextFont) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face.Describe().Family
}

// UnitsPerEm implements Font.UnitsPerEm.
func (f *gotextFont) UnitsPerEm() int {
	return f.upem
}

// Ascender implements Font.Ascender.
func (f *gotextFont) Ascender() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	ext, ok := f.face.FontHExtents()
	if !ok {
		return 0
	}
	return float64(ext.Ascender)
}

// Descender implements Font.Descender.
// go-text reports the descender negative already, matching the Font contract.
func (f *gotextFont) Descender() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	ext, ok := f.face.FontHExtents()
	if !ok {
		return 0
	}
	return float64(ext.Descender)
}

// AdvanceWidth implements Font.AdvanceWidth.
func (f *gotextFont) AdvanceWidth(r rune) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.advanceLocked(r)
}

// advanceLocked returns the nominal advance in design units.
// Caller must hold f.mu.
func (f *gotextFont) advanceLocked(r rune) float64 {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		gid = 0
	}
	return float64(f.face.HorizontalAdvance(gid))
}

// Kerning implements Font.Kerning.
func (f *gotextFont) Kerning(r0, r1 rune) float64 {
	key := kernKey{r0, r1}
	if v, ok := f.kerns.Get(key); ok {
		return v
	}

	f.mu.Lock()
	pair := f.shapePairLocked(r0, r1)
	sum := f.advanceLocked(r0) + f.advanceLocked(r1)
	f.mu.Unlock()

	v := pair - sum
	f.kerns.Set(key, v)
	return v
}

// SetKernCacheLimit replaces the kern pair cache with one bounded by n.
// Called by FontSource when WithKernCacheLimit is set.
func (f *gotextFont) SetKernCacheLimit(n int) {
	f.kerns = NewCache[kernKey, float64](n)
}

// shapePairLocked shapes the two-rune string (r0, r1) at a size equal to
// unitsPerEm, so the resulting advances come back in design units.
// Caller must hold f.mu.
func (f *gotextFont) shapePairLocked(r0, r1 rune) float64 {
	runes := []rune{r0, r1}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.face,
		Size:      fixed.Int26_6(f.upem << 6),
		Script:    language.LookupScript(r0),
		Language:  language.NewLanguage("en"),
	}

	hb := f.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	f.shaperPool.Put(hb)

	var total float64
	for _, g := range output.Glyphs {
		total += fixedToFloat(g.Advance)
	}
	return total
}

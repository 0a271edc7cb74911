package textlayout

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sfntParser implements FontParser using golang.org/x/image/font/sfnt.
type sfntParser struct{}

// Parse implements FontParser.Parse.
func (p *sfntParser) Parse(data []byte) (Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("textlayout: failed to parse font: %w", err)
	}
	return &sfntFont{font: f, upem: int(f.UnitsPerEm())}, nil
}

// sfntFont implements Font over sfnt.Font.
//
// All lookups are made at ppem equal to the font's unitsPerEm with hinting
// disabled, so sfnt returns values directly in design units.
type sfntFont struct {
	font *sfnt.Font
	upem int
}

// Name returns the font family name, or "" if not available.
func (f *sfntFont) Name() string {
	var buf sfnt.Buffer
	if name, err := f.font.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.font.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return ""
}

// UnitsPerEm implements Font.UnitsPerEm.
func (f *sfntFont) UnitsPerEm() int {
	return f.upem
}

// designPpem is the fixed-point ppem at which sfnt reports design units.
func (f *sfntFont) designPpem() fixed.Int26_6 {
	return fixed.Int26_6(f.upem << 6)
}

// Ascender implements Font.Ascender.
func (f *sfntFont) Ascender() float64 {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, f.designPpem(), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(m.Ascent)
}

// Descender implements Font.Descender.
// sfnt reports Descent as a positive distance below the baseline;
// Font.Descender is conventionally negative, so the sign is flipped.
func (f *sfntFont) Descender() float64 {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, f.designPpem(), font.HintingNone)
	if err != nil {
		return 0
	}
	return -fixedToFloat(m.Descent)
}

// AdvanceWidth implements Font.AdvanceWidth.
// Unmapped runes fall through to glyph index 0 (notdef).
func (f *sfntFont) AdvanceWidth(r rune) float64 {
	var buf sfnt.Buffer
	gid, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		gid = 0
	}
	adv, err := f.font.GlyphAdvance(&buf, gid, f.designPpem(), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// Kerning implements Font.Kerning.
func (f *sfntFont) Kerning(r0, r1 rune) float64 {
	var buf sfnt.Buffer
	g0, err := f.font.GlyphIndex(&buf, r0)
	if err != nil {
		return 0
	}
	g1, err := f.font.GlyphIndex(&buf, r1)
	if err != nil {
		return 0
	}
	kern, err := f.font.Kern(&buf, g0, g1, f.designPpem(), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(kern)
}

// fixedToFloat converts fixed.Int26_6 to float64.
func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

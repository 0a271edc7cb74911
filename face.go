package textlayout

// Face is a font at a specific size.
// It is a lightweight value created by FontSource.Face; the zero Face is
// invalid and is rejected by the measurement functions with ErrNilFace.
//
// Face is safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
}

// Size returns the size of this face in output units.
func (f Face) Size() float64 {
	return f.size
}

// Source returns the FontSource this face was created from.
func (f Face) Source() *FontSource {
	return f.source
}

// Font returns the parsed font backing this face, or nil for an invalid face.
func (f Face) Font() Font {
	if f.source == nil {
		return nil
	}
	return f.source.Parsed()
}

// Scale returns the factor that converts font design units to output units
// at this face's size: size / unitsPerEm.
func (f Face) Scale() float64 {
	font := f.Font()
	if font == nil {
		return 0
	}
	upem := font.UnitsPerEm()
	if upem == 0 {
		return 0
	}
	return f.size / float64(upem)
}

// BaselineOffset returns the vertical amount to add to a position at the
// run's visual center so that its baseline lands on Y=0:
//
//	(ascender + descender) * size / unitsPerEm / 2
//
// Ascender is positive and descender conventionally negative, so this is
// the midpoint of the face's vertical extent relative to the baseline.
// Runs of different fonts placed with their respective offsets share a
// common baseline instead of being box-centered.
func (f Face) BaselineOffset() float64 {
	// Single fetch; the scale is derived from the same Font instance so a
	// concurrent Close cannot slip in between.
	font := f.Font()
	if font == nil {
		return 0
	}
	upem := font.UnitsPerEm()
	if upem == 0 {
		return 0
	}
	return (font.Ascender() + font.Descender()) * (f.size / float64(upem)) / 2
}

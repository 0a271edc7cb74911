package textlayout

// CharMetric describes one shaped character within a run.
type CharMetric struct {
	// Char is the character. Spaces are retained: they occupy their advance
	// width for spacing but are typically skipped by renderers.
	Char rune

	// X is the horizontal center of the character's advance box, in the
	// run's local coordinate space. Units match the face size.
	X float64

	// Width is the advance width of the character, including the kerning
	// adjustment applied before this character (never the one after it).
	// Adjacent advance boxes tile exactly: left edge X-Width/2, right edge
	// X+Width/2.
	Width float64

	// Index is the position of the character within its run, 0-based,
	// left to right.
	Index int
}

// RunMetrics holds the shaped geometry of one text run.
// Character positions span [-Width/2, +Width/2]: the run is centered
// around its own origin.
type RunMetrics struct {
	// Chars is the ordered character sequence. X is strictly increasing
	// with Index.
	Chars []CharMetric

	// Width is the total advance of the run: the sum of advance widths and
	// kerning adjustments.
	Width float64

	// BaselineOffset is the vertical amount to add to a position at the
	// run's visual center so that its baseline lands on Y=0.
	// See Face.BaselineOffset. Computed from font metrics alone, so it is
	// set even for empty text.
	BaselineOffset float64
}

// MeasureText computes per-character x-positions for a single run of text,
// honoring pairwise kerning, and centers the run around its own origin.
//
// All output values are in the same units as the face size and scale
// linearly with it. Empty text yields no characters and zero width, but
// BaselineOffset is still computed from the font metrics.
//
// Kerning between consecutive characters is folded into the following
// character: it shifts that character's position and is included in its
// Width, so advance boxes stay contiguous and non-overlapping. No kerning
// is applied after the last character.
//
// MeasureText is a pure function of its inputs and is safe for concurrent
// use. Errors: ErrNilFace for the zero or closed face, ErrInvalidFontSize
// for a non-positive size. Degenerate provider values (zero or negative
// advances) are used as reported, not validated.
func MeasureText(text string, face Face) (RunMetrics, error) {
	if face.source == nil {
		return RunMetrics{}, ErrNilFace
	}
	if face.size <= 0 {
		return RunMetrics{}, ErrInvalidFontSize
	}

	// Fetch the font exactly once: a concurrent Close could nil out the
	// source between two fetches.
	font := face.Font()
	if font == nil {
		return RunMetrics{}, ErrNilFace
	}

	var scale float64
	if upem := font.UnitsPerEm(); upem > 0 {
		scale = face.size / float64(upem)
	}

	metrics := RunMetrics{
		BaselineOffset: (font.Ascender() + font.Descender()) * scale / 2,
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return metrics, nil
	}

	metrics.Chars = make([]CharMetric, len(runes))

	// Left fold over characters: the cursor tracks the right edge of the
	// previous advance box.
	var cursor float64
	for i, r := range runes {
		width := font.AdvanceWidth(r) * scale
		if i > 0 {
			width += font.Kerning(runes[i-1], r) * scale
		}

		metrics.Chars[i] = CharMetric{
			Char:  r,
			X:     cursor + width/2,
			Width: width,
			Index: i,
		}
		cursor += width
	}
	metrics.Width = cursor

	// Recenter so the run spans [-Width/2, +Width/2].
	half := cursor / 2
	for i := range metrics.Chars {
		metrics.Chars[i].X -= half
	}

	return metrics, nil
}

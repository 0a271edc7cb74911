package textlayout

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/unicode/norm"
)

// Span is one styled run in a multi-segment composition.
type Span struct {
	// Text is the run's content. May be empty; empty spans contribute zero
	// width but still count toward inter-segment spacing.
	Text string

	// Face is the font and size used to measure the run.
	Face Face

	// Style is an opaque style reference (color, per-character color
	// callback, etc.). The engine passes it through unchanged for the
	// renderer to look up by segment.
	Style any
}

// Segment is a measured span placed in the composed coordinate space.
type Segment struct {
	// Metrics is the span's run geometry, still centered around the run's
	// own origin (see MeasureText).
	Metrics RunMetrics

	// StartX is the left edge of the segment in the global, composed
	// coordinate space.
	StartX float64

	// Index is the 0-based order of the segment among all segments.
	Index int

	// Span is the originating span, retained for style lookup.
	Span Span
}

// Width returns the total advance of the segment.
func (s *Segment) Width() float64 {
	return s.Metrics.Width
}

// RichChar is one character of a composed layout, in global coordinates.
type RichChar struct {
	CharMetric

	// Segment is the index of the owning segment, for style lookup.
	Segment int
}

// RichLayout is a composed, centered line of styled segments.
// It is a pure, immutable computation result: recompute it whenever any
// input text, face or spacing changes.
type RichLayout struct {
	// Segments in input order.
	Segments []Segment

	// Chars is every character across all segments, flattened in order,
	// with global X positions.
	Chars []RichChar

	// Width is the sum of all segment widths plus total inter-segment
	// spacing. The composition spans [-Width/2, +Width/2].
	Width float64
}

// ComposeOptions configures rich text composition.
type ComposeOptions struct {
	// Spacing is the extra horizontal gap inserted between consecutive
	// segments, in output units (the same units as the face sizes, not
	// multiplied by them). May be 0.
	Spacing float64

	// NormalizeInput applies Unicode NFC normalization to each span's text
	// before measuring, so decomposed sequences (e.g. "e"+combining acute)
	// measure as their precomposed forms.
	NormalizeInput bool
}

// DefaultComposeOptions returns sensible default compose options.
func DefaultComposeOptions() ComposeOptions {
	return ComposeOptions{
		Spacing:        0,
		NormalizeInput: false,
	}
}

// ComposeRichText lays out spans contiguously along one line and recenters
// the whole composition so its horizontal midpoint is at 0.
//
// Each span is measured with its own face (see MeasureText), shifted from
// its self-centered frame to a running start position, and tagged with its
// segment index. Consecutive segments are separated by opts.Spacing.
// Segments are kerning-isolated: no kerning is applied across a segment
// boundary even when adjacent spans share a face.
//
// A single span composes exactly like MeasureText; an empty span list
// yields an empty layout. The result satisfies VerifyLayoutCentered,
// VerifyNoOverlap and VerifySegmentOrder for well-formed font metrics.
func ComposeRichText(spans []Span, opts ComposeOptions) (*RichLayout, error) {
	layout := &RichLayout{}
	if len(spans) == 0 {
		return layout, nil
	}

	layout.Segments = make([]Segment, len(spans))

	// First pass: measure every span and place segments contiguously,
	// segment 0 starting at 0.
	var cursor float64
	var charCount int
	for i, span := range spans {
		text := span.Text
		if opts.NormalizeInput {
			text = norm.NFC.String(text)
		}

		metrics, err := MeasureText(text, span.Face)
		if err != nil {
			return nil, fmt.Errorf("textlayout: segment %d: %w", i, err)
		}

		layout.Segments[i] = Segment{
			Metrics: metrics,
			StartX:  cursor,
			Index:   i,
			Span:    span,
		}
		cursor += metrics.Width + opts.Spacing
		charCount += len(metrics.Chars)
	}
	layout.Width = cursor - opts.Spacing // no spacing after the last segment

	// Second pass: flatten characters into global coordinates and recenter
	// the whole composition at 0.
	shift := layout.Width / 2
	layout.Chars = make([]RichChar, 0, charCount)
	for i := range layout.Segments {
		seg := &layout.Segments[i]

		// Undo the per-run centering, place at the segment start, then
		// apply the global recentering shift.
		origin := seg.StartX + seg.Metrics.Width/2 - shift
		for _, c := range seg.Metrics.Chars {
			c.X += origin
			layout.Chars = append(layout.Chars, RichChar{
				CharMetric: c,
				Segment:    i,
			})
		}
		seg.StartX -= shift
	}

	logComposed(layout)
	return layout, nil
}

// logComposed emits debug diagnostics for a composed layout, including
// invariant check results. The checks only run when a debug-enabled logger
// has been installed via SetLogger.
func logComposed(layout *RichLayout) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	l.Debug("composed rich text",
		"segments", len(layout.Segments),
		"chars", len(layout.Chars),
		"width", layout.Width,
		"centered", VerifyLayoutCentered(layout),
		"noOverlap", VerifyNoOverlap(layout),
		"segmentOrder", VerifySegmentOrder(layout),
	)
}

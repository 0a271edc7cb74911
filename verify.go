package textlayout

import "sort"

// verifyEpsilon is the tolerance, in output units, used by the layout
// invariant checks.
const verifyEpsilon = 1e-4

// VerifyLayoutCentered reports whether the composition is centered: the
// midpoint of [min(X-Width/2), max(X+Width/2)] across all characters is 0
// within tolerance. An empty layout is trivially centered.
func VerifyLayoutCentered(layout *RichLayout) bool {
	if layout == nil || len(layout.Chars) == 0 {
		return true
	}

	first := layout.Chars[0]
	minLeft := first.X - first.Width/2
	maxRight := first.X + first.Width/2
	for _, c := range layout.Chars[1:] {
		if left := c.X - c.Width/2; left < minLeft {
			minLeft = left
		}
		if right := c.X + c.Width/2; right > maxRight {
			maxRight = right
		}
	}

	mid := (minLeft + maxRight) / 2
	return mid >= -verifyEpsilon && mid <= verifyEpsilon
}

// VerifyNoOverlap reports whether no two characters' advance boxes overlap:
// for every pair of characters ordered by X, the right edge of the left
// character does not exceed the left edge of the next by more than the
// tolerance.
func VerifyNoOverlap(layout *RichLayout) bool {
	if layout == nil || len(layout.Chars) < 2 {
		return true
	}

	chars := make([]RichChar, len(layout.Chars))
	copy(chars, layout.Chars)
	sort.Slice(chars, func(i, j int) bool {
		return chars[i].X < chars[j].X
	})

	for i := 1; i < len(chars); i++ {
		prevRight := chars[i-1].X + chars[i-1].Width/2
		left := chars[i].X - chars[i].Width/2
		if prevRight > left+verifyEpsilon {
			return false
		}
	}
	return true
}

// VerifySegmentOrder reports whether segments appear in input order:
// StartX is non-decreasing with segment index.
func VerifySegmentOrder(layout *RichLayout) bool {
	if layout == nil {
		return true
	}

	for i := 1; i < len(layout.Segments); i++ {
		if layout.Segments[i].StartX < layout.Segments[i-1].StartX {
			return false
		}
	}
	return true
}

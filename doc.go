// Package textlayout computes kerned character positions for single- and
// multi-font text runs. It is the measurement half of a text pipeline:
// given parsed fonts it produces exact per-character geometry (center X,
// advance width, baseline offset) that a renderer or animation system maps
// to visual glyphs. Rendering, wrapping and bidi are out of scope.
//
// The package follows a separation of concerns:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: Lightweight font instance at a specific size
//   - FontParser: Pluggable font parsing backend (default: golang.org/x/image)
//
// # Example usage
//
//	// Load font (do once, share across application)
//	source, err := textlayout.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	// Measure a single run, centered around its own origin
//	metrics, err := textlayout.MeasureText("Hello", source.Face(24))
//
//	// Compose styled spans into one centered line
//	layout, err := textlayout.ComposeRichText([]textlayout.Span{
//	    {Text: "Hello", Face: source.Face(24)},
//	    {Text: "World", Face: source.Face(32)},
//	}, textlayout.DefaultComposeOptions())
//
// All positions are in the same units as the face size. A run's characters
// span [-Width/2, +Width/2]; a composed layout is likewise centered at 0,
// so callers place text by translating the whole layout.
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/sfnt is used. The "gotext" backend
// (github.com/go-text/typesetting) derives kerning from HarfBuzz shaping
// and can be selected per source:
//
//	source, err := textlayout.NewFontSource(data, textlayout.WithParser("gotext"))
//
// Custom parsers can be registered with RegisterParser.
package textlayout

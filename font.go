package textlayout

// Font exposes the per-font metrics the layout engine consumes.
// All values are in font design units; callers scale by size/UnitsPerEm.
//
// The engine never loads or parses font binaries itself. Implementations
// wrap a parsing library (see FontParser) or provide synthetic metrics
// for testing.
type Font interface {
	// UnitsPerEm returns the design grid resolution of the font,
	// typically 1000 or 2048.
	UnitsPerEm() int

	// Ascender returns the distance from the baseline to the top of the
	// font, in design units. Positive above the baseline.
	Ascender() float64

	// Descender returns the distance from the baseline to the bottom of
	// the font, in design units. Conventionally negative (below baseline).
	Descender() float64

	// AdvanceWidth returns the advance width of the glyph mapped to r,
	// in design units. Unmapped runes resolve to the font's notdef glyph;
	// fallback behavior is the implementation's concern, never an error.
	AdvanceWidth(r rune) float64

	// Kerning returns the kerning adjustment for the ordered pair (r0, r1),
	// in design units. Negative values pull the pair closer. Returns 0
	// when the font has no kerning data for the pair.
	Kerning(r0, r1 rune) float64
}

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/sfnt vs go-text/typesetting).
//
// The default implementation uses golang.org/x/image/font/sfnt.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a Font.
	Parse(data []byte) (Font, error)
}

// namedFont is implemented by fonts that can report a family name.
// FontSource uses it to label sources for diagnostics.
type namedFont interface {
	Name() string
}

// parserRegistry holds registered font parsers.
// The default parser is "sfnt" (golang.org/x/image).
var parserRegistry = map[string]FontParser{
	"sfnt":   &sfntParser{},
	"gotext": &gotextParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "sfnt"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}

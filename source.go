package textlayout

import (
	"fmt"
	"os"
	"sync"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data   []byte
	parsed Font // Abstracted font interface (pluggable backend)

	// Metadata
	name string

	// Mutex protects parsed and data against Close
	mu sync.RWMutex

	// Configuration
	config sourceConfig
}

// kernCacheConfigurable is implemented by parser backends whose kern lookups
// are probe-based and cached (see WithKernCacheLimit).
type kernCacheConfigurable interface {
	SetKernCacheLimit(n int)
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Options can be used to configure the parser backend and kern caching.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	// Apply options first to get parser name
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Get parser and parse the font
	parser := getParser(config.parserName)
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	if kc, ok := parsed.(kernCacheConfigurable); ok && config.kernCacheSet {
		kc.SetKernCacheLimit(config.kernCacheLimit)
	}

	// Copy the data
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	// Create FontSource
	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		config: config,
	}
	s.addr = s // Self-reference for copy detection

	// Extract font name
	s.name = extractFontName(parsed)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textlayout: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size.
// Multiple faces can be created from the same FontSource.
//
// Face is a lightweight value that references this source. The size is not
// validated here; MeasureText and ComposeRichText reject non-positive sizes.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64) Face {
	if s == nil {
		panic("textlayout: FontSource is nil — did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	return Face{source: s, size: size}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font for advanced operations.
// This is primarily used by the metrics calculator.
func (s *FontSource) Parsed() Font {
	s.copyCheck()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Close releases resources associated with the FontSource.
// All faces created from this source become invalid after Close:
// measuring with them returns ErrNilFace.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.parsed = nil

	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("textlayout: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed Font) string {
	if named, ok := parsed.(namedFont); ok {
		if name := named.Name(); name != "" {
			return name
		}
	}
	return "Unknown Font"
}

package textlayout

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName     string
	kernCacheLimit int
	kernCacheSet   bool // WithKernCacheLimit was applied, even with the default value
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName:     defaultParserName,     // Default parser (sfnt)
		kernCacheLimit: defaultKernCacheLimit, // Default kern pair cache limit
	}
}

// WithParser specifies the font parser backend.
// The default is "sfnt" which uses golang.org/x/image/font/sfnt.
// The "gotext" backend uses github.com/go-text/typesetting and derives
// kerning from HarfBuzz shaping.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithKernCacheLimit sets the maximum number of cached kerning pairs for
// backends that probe kerning lazily (currently "gotext").
// A value of 0 disables the cache limit. Backends that read kerning
// directly from font tables ignore this option.
func WithKernCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.kernCacheLimit = n
		c.kernCacheSet = true
	}
}

package encode

import (
	"github.com/signadot/docwire/format"
	"github.com/signadot/docwire/json"
)

type EncState struct {
	format format.Format
	indent int
	colors *json.Colors
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeIndent sets the JSON indent width; 0 is compact.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors colors JSON output.
func EncodeColors(c *json.Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

package json

import (
	"go.uber.org/zap"

	"github.com/signadot/docwire/debug"
)

// DefaultMaxDepth bounds container nesting on decode.
const DefaultMaxDepth = 10000

type opts struct {
	indent   int
	colors   *Colors
	logger   *zap.Logger
	maxDepth int
}

type Option func(*opts)

// Indent sets the number of spaces per nesting level. 0, the default,
// produces compact output.
func Indent(n int) Option {
	return func(o *opts) { o.indent = max(n, 0) }
}

// WithColors colors encoder output for terminals.
func WithColors(c *Colors) Option {
	return func(o *opts) { o.colors = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *opts) { o.logger = l }
}

func MaxDepth(n int) Option {
	return func(o *opts) { o.maxDepth = n }
}

func getOpts(options []Option) *opts {
	o := &opts{
		logger:   debug.Logger("json"),
		maxDepth: DefaultMaxDepth,
	}
	for _, f := range options {
		f(o)
	}
	return o
}

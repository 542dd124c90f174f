package fson

import (
	"go.uber.org/zap"

	"github.com/signadot/docwire/debug"
)

// DefaultMaxDepth bounds container nesting on decode.
const DefaultMaxDepth = 10000

type opts struct {
	logger   *zap.Logger
	maxDepth int
}

type Option func(*opts)

func WithLogger(l *zap.Logger) Option {
	return func(o *opts) { o.logger = l }
}

func MaxDepth(n int) Option {
	return func(o *opts) { o.maxDepth = n }
}

func getOpts(options []Option) *opts {
	o := &opts{
		logger:   debug.Logger("fson"),
		maxDepth: DefaultMaxDepth,
	}
	for _, f := range options {
		f(o)
	}
	return o
}

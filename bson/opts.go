package bson

import (
	"go.uber.org/zap"

	"github.com/signadot/docwire/debug"
)

// DefaultMaxDepth bounds document nesting on decode.
const DefaultMaxDepth = 1000

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
		logger:   debug.Logger("bson"),
		maxDepth: DefaultMaxDepth,
	}
	for _, f := range options {
		f(o)
	}
	return o
}

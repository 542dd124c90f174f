package parse

import (
	"go.uber.org/zap"

	"github.com/signadot/docwire/bson"
	"github.com/signadot/docwire/format"
	"github.com/signadot/docwire/fson"
	"github.com/signadot/docwire/json"
)

type parseOpts struct {
	format   format.Format
	maxDepth int
	logger   *zap.Logger
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseBSON() ParseOption {
	return ParseFormat(format.BSONFormat)
}
func ParseFSON() ParseOption {
	return ParseFormat(format.FSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseMaxDepth bounds container nesting.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParseLogger traces the binary and JSON decoders.
func ParseLogger(l *zap.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = l }
}

func getOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

func (o *parseOpts) jsonOpts() []json.Option {
	var res []json.Option
	if o.maxDepth > 0 {
		res = append(res, json.MaxDepth(o.maxDepth))
	}
	if o.logger != nil {
		res = append(res, json.WithLogger(o.logger))
	}
	return res
}

func (o *parseOpts) bsonOpts() []bson.Option {
	var res []bson.Option
	if o.maxDepth > 0 {
		res = append(res, bson.MaxDepth(o.maxDepth))
	}
	if o.logger != nil {
		res = append(res, bson.WithLogger(o.logger))
	}
	return res
}

func (o *parseOpts) fsonOpts() []fson.Option {
	var res []fson.Option
	if o.maxDepth > 0 {
		res = append(res, fson.MaxDepth(o.maxDepth))
	}
	if o.logger != nil {
		res = append(res, fson.WithLogger(o.logger))
	}
	return res
}

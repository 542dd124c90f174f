// Package yaml converts between doc.Node trees and YAML text using
// github.com/goccy/go-yaml.
//
// YAML is a convenience format for the command line. It passes through
// plain Go values (doc.ToAny, doc.FromAny), so object fields are written
// in sorted order, dates are written as timestamps and integral numbers
// may read back as integers.
package yaml

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/docwire/doc"
)

func Marshal(n *doc.Node) ([]byte, error) {
	d, err := yaml.Marshal(doc.ToAny(n))
	if err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", doc.ErrUnsupported, err)
	}
	return d, nil
}

// Unmarshal decodes the first YAML document in data.
func Unmarshal(data []byte) (*doc.Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", doc.ErrMalformed, err)
	}
	return doc.FromAny(v)
}

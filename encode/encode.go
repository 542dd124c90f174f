package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/docwire/bson"
	"github.com/signadot/docwire/doc"
	"github.com/signadot/docwire/format"
	"github.com/signadot/docwire/fson"
	"github.com/signadot/docwire/json"
	"github.com/signadot/docwire/yaml"
)

// Encode writes node to w. The default format is JSON.
func Encode(node *doc.Node, w io.Writer, opts ...EncodeOption) error {
	d, err := Marshal(node, opts...)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(d))
	return err
}

func Marshal(node *doc.Node, opts ...EncodeOption) ([]byte, error) {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		jopts := []json.Option{json.Indent(es.indent)}
		if es.colors != nil {
			jopts = append(jopts, json.WithColors(es.colors))
		}
		return json.Marshal(node, jopts...)
	case format.BSONFormat:
		return bson.Marshal(node)
	case format.FSONFormat:
		return fson.Marshal(node)
	case format.YAMLFormat:
		return yaml.Marshal(node)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

// MustString returns the compact JSON text of node, panicking on error.
func MustString(node *doc.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

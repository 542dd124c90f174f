package parse

import (
	"fmt"
	"io"

	"github.com/signadot/docwire/bson"
	"github.com/signadot/docwire/doc"
	"github.com/signadot/docwire/format"
	"github.com/signadot/docwire/fson"
	"github.com/signadot/docwire/json"
	"github.com/signadot/docwire/yaml"
)

// Parse decodes the single document in d. The default format is JSON.
func Parse(d []byte, opts ...ParseOption) (*doc.Node, error) {
	pOpts := getOpts(opts)
	switch pOpts.format {
	case format.JSONFormat:
		return json.Unmarshal(d, pOpts.jsonOpts()...)
	case format.BSONFormat:
		return bson.Unmarshal(d, pOpts.bsonOpts()...)
	case format.FSONFormat:
		return fson.Unmarshal(d, pOpts.fsonOpts()...)
	case format.YAMLFormat:
		return yaml.Unmarshal(d)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, pOpts.format)
	}
}

// Decoder reads successive documents from a stream.
type Decoder struct {
	next func(doc.Observer) error
}

func NewDecoder(r io.Reader, opts ...ParseOption) (*Decoder, error) {
	pOpts := getOpts(opts)
	switch pOpts.format {
	case format.JSONFormat:
		return &Decoder{next: json.NewDecoder(r, pOpts.jsonOpts()...).Decode}, nil
	case format.BSONFormat:
		return &Decoder{next: bson.NewDecoder(r, pOpts.bsonOpts()...).Decode}, nil
	case format.FSONFormat:
		return &Decoder{next: fson.NewDecoder(r, pOpts.fsonOpts()...).Decode}, nil
	case format.YAMLFormat:
		return &Decoder{next: yamlOnce(r)}, nil
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, pOpts.format)
	}
}

// Decode returns the next document, or io.EOF at the end of the stream.
func (d *Decoder) Decode() (*doc.Node, error) {
	b := doc.NewBuilder()
	if err := d.next(b); err != nil {
		return nil, err
	}
	return b.Result()
}

// DecodeTo reports the next document to o.
func (d *Decoder) DecodeTo(o doc.Observer) error {
	return d.next(o)
}

func yamlOnce(r io.Reader) func(doc.Observer) error {
	done := false
	return func(o doc.Observer) error {
		if done {
			return io.EOF
		}
		done = true
		d, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		n, err := yaml.Unmarshal(d)
		if err != nil {
			return err
		}
		return doc.Emit(n, o)
	}
}

package json

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/signadot/docwire/doc"
)

// Unmarshal parses data, which must hold exactly one JSON value.
func Unmarshal(data []byte, options ...Option) (*doc.Node, error) {
	b := doc.NewBuilder()
	if err := Parse(data, b, options...); err != nil {
		return nil, err
	}
	return b.Result()
}

// Parse reports the single JSON value in data to o.
func Parse(data []byte, o doc.Observer, options ...Option) error {
	p := NewParser(o, options...)
	for i := 0; i < len(data); {
		r, sz := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && sz == 1 {
			return p.syntaxf("invalid UTF-8 byte 0x%02x", data[i])
		}
		if err := p.Feed(r); err != nil {
			return err
		}
		i += sz
	}
	return p.End()
}

// Valid reports whether data is a single well formed JSON value.
func Valid(data []byte) bool {
	return Parse(data, nopObserver{}) == nil
}

type nopObserver struct{}

func (nopObserver) StartObject() error    { return nil }
func (nopObserver) EndObject() error      { return nil }
func (nopObserver) StartArray() error     { return nil }
func (nopObserver) EndArray() error       { return nil }
func (nopObserver) Name(string) error     { return nil }
func (nopObserver) Index(int) error       { return nil }
func (nopObserver) Value(*doc.Node) error { return nil }

// Decoder reads a stream of JSON values separated by optional whitespace.
// A top-level number must be followed by whitespace or the end of the
// stream.
type Decoder struct {
	r io.RuneReader
	p *Parser
}

func NewDecoder(r io.Reader, options ...Option) *Decoder {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &Decoder{r: rr, p: NewParser(nil, options...)}
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.p.Offset()
}

// Decode reads the next value and reports it to o. It returns io.EOF if
// the stream holds nothing but whitespace.
func (d *Decoder) Decode(o doc.Observer) error {
	d.p.o = o
	d.p.next()
	for {
		r, sz, err := d.r.ReadRune()
		if err == io.EOF {
			if !d.p.Started() {
				return io.EOF
			}
			return d.p.End()
		}
		if err != nil {
			return err
		}
		if r == utf8.RuneError && sz == 1 {
			return d.p.syntaxf("invalid UTF-8")
		}
		if err := d.p.Feed(r); err != nil {
			return err
		}
		if d.p.Done() {
			return nil
		}
	}
}

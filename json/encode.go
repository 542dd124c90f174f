package json

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/docwire/doc"
)

type encFrame struct {
	typ doc.Type
	n   int
}

// Encoder is a doc.Observer which appends JSON text for the events it
// receives to a buffer.
type Encoder struct {
	buf   []byte
	opts  *opts
	stack []encFrame
}

func NewEncoder(options ...Option) *Encoder {
	return &Encoder{opts: getOpts(options)}
}

// Bytes returns the text accumulated so far.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.stack = e.stack[:0]
}

func (e *Encoder) write(t doc.Type, a ColorAttr, s string) {
	if e.opts.colors != nil {
		s = e.opts.colors.Color(t, a, s)
	}
	e.buf = append(e.buf, s...)
}

func (e *Encoder) newline() {
	if e.opts.indent == 0 {
		return
	}
	e.buf = append(e.buf, '\n')
	for range len(e.stack) * e.opts.indent {
		e.buf = append(e.buf, ' ')
	}
}

// sep writes the separator preceding the next child of the innermost
// container.
func (e *Encoder) sep() {
	f := &e.stack[len(e.stack)-1]
	if f.n > 0 {
		e.write(f.typ, SepColor, ",")
	}
	f.n++
	e.newline()
}

func (e *Encoder) beforeValue() {
	if len(e.stack) != 0 && e.stack[len(e.stack)-1].typ == doc.ArrayType {
		e.sep()
	}
}

func (e *Encoder) start(t doc.Type, s string) error {
	e.beforeValue()
	e.write(t, SepColor, s)
	e.stack = append(e.stack, encFrame{typ: t})
	return nil
}

func (e *Encoder) end(t doc.Type, s string) error {
	if len(e.stack) == 0 || e.stack[len(e.stack)-1].typ != t {
		return fmt.Errorf("%w: json: unbalanced end of %s", doc.ErrMalformed, t)
	}
	f := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	if f.n > 0 {
		e.newline()
	}
	e.write(t, SepColor, s)
	return nil
}

func (e *Encoder) StartObject() error { return e.start(doc.ObjectType, "{") }
func (e *Encoder) EndObject() error   { return e.end(doc.ObjectType, "}") }
func (e *Encoder) StartArray() error  { return e.start(doc.ArrayType, "[") }
func (e *Encoder) EndArray() error    { return e.end(doc.ArrayType, "]") }
func (e *Encoder) Index(int) error    { return nil }

func (e *Encoder) Name(name string) error {
	if len(e.stack) == 0 || e.stack[len(e.stack)-1].typ != doc.ObjectType {
		return fmt.Errorf("%w: json: name %q outside object", doc.ErrMalformed, name)
	}
	e.sep()
	e.write(doc.ObjectType, FieldColor, string(AppendQuote(nil, name)))
	if e.opts.indent > 0 {
		e.write(doc.ObjectType, SepColor, ": ")
	} else {
		e.write(doc.ObjectType, SepColor, ":")
	}
	return nil
}

func (e *Encoder) Value(v *doc.Node) error {
	lit, err := literal(v)
	if err != nil {
		return err
	}
	e.beforeValue()
	e.write(v.Type, ValueColor, lit)
	return nil
}

func literal(v *doc.Node) (string, error) {
	switch v.Type {
	case doc.NullType:
		return "null", nil
	case doc.BoolType:
		return strconv.FormatBool(v.Bool), nil
	case doc.IntType:
		return strconv.FormatInt(v.Int64, 10), nil
	case doc.NumberType:
		d, err := AppendFloat(nil, v.Float64)
		return string(d), err
	case doc.StringType:
		return string(AppendQuote(nil, v.String)), nil
	case doc.DateType:
		return strconv.FormatInt(v.Millis, 10), nil
	default:
		return "", fmt.Errorf("%w: json: Value called with %s", doc.ErrUnsupported, v.Type)
	}
}

// Marshal returns the JSON text of node.
func Marshal(node *doc.Node, options ...Option) ([]byte, error) {
	e := NewEncoder(options...)
	if err := doc.Emit(node, e); err != nil {
		return nil, err
	}
	return e.buf, nil
}

func Encode(node *doc.Node, w io.Writer, options ...Option) error {
	d, err := Marshal(node, options...)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(d))
	return err
}

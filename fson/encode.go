package fson

import (
	"bytes"
	"io"

	"github.com/signadot/docwire/doc"
	"github.com/signadot/docwire/prim"
)

// Encoder is a doc.Observer which appends the FSON encoding of the events
// it receives to a buffer.
type Encoder struct {
	buf []byte
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the encoding accumulated so far.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

func (e *Encoder) tag(t Tag) {
	e.buf = append(e.buf, byte(t))
}

func (e *Encoder) StartObject() error { e.tag(ObjectTag); return nil }
func (e *Encoder) EndObject() error   { e.tag(EndTag); return nil }
func (e *Encoder) StartArray() error  { e.tag(ArrayTag); return nil }
func (e *Encoder) EndArray() error    { e.tag(EndTag); return nil }
func (e *Encoder) Index(int) error    { return nil }

func (e *Encoder) Name(name string) error {
	e.tag(NameTag)
	e.buf = prim.AppendString(e.buf, name)
	return nil
}

func (e *Encoder) Value(v *doc.Node) error {
	switch v.Type {
	case doc.NullType:
		e.tag(NullTag)
	case doc.BoolType:
		e.tag(BoolTag)
		e.buf = prim.AppendBool(e.buf, v.Bool)
	case doc.IntType:
		e.tag(IntTag)
		e.buf = prim.AppendInt(e.buf, v.Int64)
	case doc.NumberType:
		e.tag(NumberTag)
		e.buf = prim.AppendFloat(e.buf, v.Float64)
	case doc.StringType:
		e.tag(StringTag)
		e.buf = prim.AppendString(e.buf, v.String)
	case doc.DateType:
		e.tag(TimeTag)
		e.buf = prim.AppendTime(e.buf, v.Millis)
	default:
		panic("type")
	}
	return nil
}

func Marshal(node *doc.Node) ([]byte, error) {
	e := NewEncoder()
	if err := doc.Emit(node, e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

func Encode(node *doc.Node, w io.Writer) error {
	d, err := Marshal(node)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(d))
	return err
}

package fson

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/signadot/docwire/doc"
	"github.com/signadot/docwire/prim"
)

type countingReader struct {
	r   io.ByteReader
	off int64
}

func (c *countingReader) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err == nil {
		c.off++
	}
	return b, err
}

type frame struct {
	tag   Tag
	index int
}

// Decoder reads FSON documents from a byte stream.
type Decoder struct {
	r       *countingReader
	opts    *opts
	stack   []frame
	hasName bool
}

func NewDecoder(r io.Reader, options ...Option) *Decoder {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{
		r:    &countingReader{r: br},
		opts: getOpts(options),
	}
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.r.off
}

func (d *Decoder) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: fson: %s at offset %d", doc.ErrMalformed, fmt.Sprintf(format, args...), d.r.off)
}

func (d *Decoder) primErr(what string, err error) error {
	return fmt.Errorf("%w: fson: %s at offset %d: %w", doc.ErrMalformed, what, d.r.off, err)
}

// Decode reads exactly one document and reports it to o. It returns io.EOF
// if the stream is exhausted before the document starts.
func (d *Decoder) Decode(o doc.Observer) error {
	d.stack = d.stack[:0]
	d.hasName = false
	first := true
	for {
		c, err := d.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if first {
					return io.EOF
				}
				return d.primErr("truncated document", io.ErrUnexpectedEOF)
			}
			return err
		}
		first = false
		t := Tag(c)
		if ce := d.opts.logger.Check(zap.DebugLevel, "tag"); ce != nil {
			ce.Write(zap.Stringer("tag", t), zap.Int64("offset", d.r.off-1), zap.Int("depth", len(d.stack)))
		}
		done, err := d.step(t, o)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// step handles one tag, reporting whether the root value is complete.
func (d *Decoder) step(t Tag, o doc.Observer) (bool, error) {
	switch t {
	case ObjectTag, ArrayTag:
		if err := d.beforeValue(o); err != nil {
			return false, err
		}
		if len(d.stack) >= d.opts.maxDepth {
			return false, d.errorf("nesting exceeds %d", d.opts.maxDepth)
		}
		d.stack = append(d.stack, frame{tag: t})
		if t == ObjectTag {
			return false, o.StartObject()
		}
		return false, o.StartArray()
	case NameTag:
		if len(d.stack) == 0 || d.stack[len(d.stack)-1].tag != ObjectTag {
			return false, d.errorf("name outside object")
		}
		if d.hasName {
			return false, d.errorf("name follows name")
		}
		name, err := prim.ReadString(d.r)
		if err != nil {
			return false, d.primErr("name", err)
		}
		d.hasName = true
		return false, o.Name(name)
	case EndTag:
		if len(d.stack) == 0 {
			return false, d.errorf("end outside container")
		}
		if d.hasName {
			return false, d.errorf("name without value")
		}
		top := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		var err error
		if top.tag == ObjectTag {
			err = o.EndObject()
		} else {
			err = o.EndArray()
		}
		return len(d.stack) == 0, err
	case StringTag, NumberTag, BoolTag, NullTag, IntTag, TimeTag:
		if err := d.beforeValue(o); err != nil {
			return false, err
		}
		v, err := d.scalar(t)
		if err != nil {
			return false, err
		}
		if err := o.Value(v); err != nil {
			return false, err
		}
		return len(d.stack) == 0, nil
	default:
		return false, d.errorf("unknown tag 0x%02x", byte(t))
	}
}

func (d *Decoder) beforeValue(o doc.Observer) error {
	if len(d.stack) == 0 {
		return nil
	}
	top := &d.stack[len(d.stack)-1]
	if top.tag == ObjectTag {
		if !d.hasName {
			return d.errorf("object value without name")
		}
		d.hasName = false
		return nil
	}
	i := top.index
	top.index++
	return o.Index(i)
}

func (d *Decoder) scalar(t Tag) (*doc.Node, error) {
	switch t {
	case NullTag:
		return doc.Null(), nil
	case BoolTag:
		v, err := prim.ReadBool(d.r)
		if err != nil {
			return nil, d.primErr(t.String(), err)
		}
		return doc.FromBool(v), nil
	case IntTag:
		v, err := prim.ReadInt(d.r)
		if err != nil {
			return nil, d.primErr(t.String(), err)
		}
		return doc.FromInt(v), nil
	case NumberTag:
		v, err := prim.ReadFloat(d.r)
		if err != nil {
			return nil, d.primErr(t.String(), err)
		}
		return doc.FromFloat(v), nil
	case StringTag:
		v, err := prim.ReadString(d.r)
		if err != nil {
			return nil, d.primErr(t.String(), err)
		}
		return doc.FromString(v), nil
	case TimeTag:
		v, err := prim.ReadTime(d.r)
		if err != nil {
			return nil, d.primErr(t.String(), err)
		}
		return doc.FromMillis(v), nil
	default:
		panic("tag")
	}
}

// Unmarshal decodes a single document occupying all of data.
func Unmarshal(data []byte, options ...Option) (*doc.Node, error) {
	r := bytes.NewReader(data)
	dec := NewDecoder(r, options...)
	b := doc.NewBuilder()
	if err := dec.Decode(b); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: fson: empty input", doc.ErrMalformed)
		}
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: fson: %d trailing bytes at offset %d", doc.ErrMalformed, r.Len(), dec.Offset())
	}
	return b.Result()
}

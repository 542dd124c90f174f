package bson

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/signadot/docwire/doc"
)

// minDocLen is the length of an empty document: int32 length + terminator.
const minDocLen = 5

type decoder struct {
	opts *opts
	// base is the offset of the current buffer within the input.
	base int
}

func (d *decoder) errorf(off int, format string, args ...any) error {
	return fmt.Errorf("%w: bson: %s at offset %d", doc.ErrMalformed, fmt.Sprintf(format, args...), d.base+off)
}

// Decode reads one document from the start of data, reports it to o as an
// object and returns the number of bytes consumed.
func Decode(data []byte, o doc.Observer, options ...Option) (int, error) {
	d := &decoder{opts: getOpts(options)}
	return d.document(data, o, false, 0)
}

// DecodeArray is like Decode but reports the document as an array.
func DecodeArray(data []byte, o doc.Observer, options ...Option) (int, error) {
	d := &decoder{opts: getOpts(options)}
	return d.document(data, o, true, 0)
}

func (d *decoder) document(data []byte, o doc.Observer, array bool, depth int) (int, error) {
	if depth >= d.opts.maxDepth {
		return 0, d.errorf(0, "nesting exceeds %d", d.opts.maxDepth)
	}
	if len(data) < minDocLen {
		return 0, d.errorf(0, "document of %d bytes", len(data))
	}
	n := int(int32(binary.LittleEndian.Uint32(data)))
	if n < minDocLen || n > len(data) {
		return 0, d.errorf(0, "document length %d with %d bytes available", n, len(data))
	}
	if data[n-1] != 0 {
		return 0, d.errorf(n-1, "missing document terminator")
	}
	var err error
	if array {
		err = o.StartArray()
	} else {
		err = o.StartObject()
	}
	if err != nil {
		return 0, err
	}
	end := n - 1
	pos := 4
	for i := 0; pos < end; i++ {
		t := Type(data[pos])
		pos++
		k := bytes.IndexByte(data[pos:end], 0)
		if k == -1 {
			return 0, d.errorf(pos, "unterminated element name")
		}
		name := string(data[pos : pos+k])
		if !utf8.ValidString(name) {
			return 0, d.errorf(pos, "element name is not UTF-8")
		}
		pos += k + 1
		if ce := d.opts.logger.Check(zap.DebugLevel, "element"); ce != nil {
			ce.Write(zap.Stringer("type", t), zap.String("name", name), zap.Int("offset", d.base+pos), zap.Int("depth", depth))
		}
		if array {
			// keys are ignored, elements are indexed by position
			err = o.Index(i)
		} else {
			err = o.Name(name)
		}
		if err != nil {
			return 0, err
		}
		m, err := d.value(t, data[:end], pos, o, depth)
		if err != nil {
			return 0, err
		}
		pos += m
	}
	if array {
		err = o.EndArray()
	} else {
		err = o.EndObject()
	}
	return n, err
}

// value decodes the payload of type t at data[pos:], returning its length.
func (d *decoder) value(t Type, data []byte, pos int, o doc.Observer, depth int) (int, error) {
	b := data[pos:]
	need := func(k int) error {
		if len(b) < k {
			return d.errorf(pos, "%s needs %d bytes, have %d", t, k, len(b))
		}
		return nil
	}
	switch t {
	case NumberType:
		if err := need(8); err != nil {
			return 0, err
		}
		return 8, o.Value(doc.FromFloat(math.Float64frombits(binary.LittleEndian.Uint64(b))))
	case StringType:
		if err := need(4); err != nil {
			return 0, err
		}
		l := int(int32(binary.LittleEndian.Uint32(b)))
		if l < 1 || l > len(b)-4 {
			return 0, d.errorf(pos, "string length %d with %d bytes available", l, len(b)-4)
		}
		if b[4+l-1] != 0 {
			return 0, d.errorf(pos+4+l-1, "missing string terminator")
		}
		s := string(b[4 : 4+l-1])
		if !utf8.ValidString(s) {
			return 0, d.errorf(pos+4, "string is not UTF-8")
		}
		return 4 + l, o.Value(doc.FromString(s))
	case ObjectType, ArrayType:
		saved := d.base
		d.base += pos
		m, err := d.document(b, o, t == ArrayType, depth+1)
		d.base = saved
		return m, err
	case BoolType:
		if err := need(1); err != nil {
			return 0, err
		}
		switch b[0] {
		case 0:
			return 1, o.Value(doc.FromBool(false))
		case 1:
			return 1, o.Value(doc.FromBool(true))
		}
		return 0, d.errorf(pos, "boolean byte 0x%02x", b[0])
	case DateType:
		if err := need(8); err != nil {
			return 0, err
		}
		return 8, o.Value(doc.FromMillis(int64(binary.LittleEndian.Uint64(b))))
	case NullType:
		return 0, o.Value(doc.Null())
	case Int32Type:
		if err := need(4); err != nil {
			return 0, err
		}
		return 4, o.Value(doc.FromInt(int64(int32(binary.LittleEndian.Uint32(b)))))
	case Int64Type:
		if err := need(8); err != nil {
			return 0, err
		}
		return 8, o.Value(doc.FromInt(int64(binary.LittleEndian.Uint64(b))))
	}
	if unsupported(t) {
		return 0, fmt.Errorf("%w: bson: element type 0x%02x at offset %d", doc.ErrUnsupported, byte(t), d.base+pos)
	}
	return 0, d.errorf(pos-1, "unknown element type 0x%02x", byte(t))
}

// Unmarshal decodes a document occupying all of data into an object.
func Unmarshal(data []byte, options ...Option) (*doc.Node, error) {
	return unmarshal(data, false, options)
}

// UnmarshalArray decodes a document occupying all of data into an array.
func UnmarshalArray(data []byte, options ...Option) (*doc.Node, error) {
	return unmarshal(data, true, options)
}

func unmarshal(data []byte, array bool, options []Option) (*doc.Node, error) {
	b := doc.NewBuilder()
	d := &decoder{opts: getOpts(options)}
	n, err := d.document(data, b, array, 0)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: bson: %d trailing bytes at offset %d", doc.ErrMalformed, len(data)-n, n)
	}
	return b.Result()
}

// Decoder reads a stream of concatenated BSON documents, as written by
// mongodump.
type Decoder struct {
	r    io.Reader
	opts []Option
	buf  []byte
	off  int64
}

func NewDecoder(r io.Reader, options ...Option) *Decoder {
	return &Decoder{r: r, opts: options}
}

// Offset returns the number of bytes consumed so far.
func (dec *Decoder) Offset() int64 {
	return dec.off
}

// Decode reads the next document and reports it to o. It returns io.EOF at
// a clean end of stream.
func (dec *Decoder) Decode(o doc.Observer) error {
	var hdr [4]byte
	if _, err := io.ReadFull(dec.r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("%w: bson: truncated length at offset %d: %w", doc.ErrMalformed, dec.off, err)
	}
	n := int64(int32(binary.LittleEndian.Uint32(hdr[:])))
	if n < minDocLen {
		return fmt.Errorf("%w: bson: document length %d at offset %d", doc.ErrMalformed, n, dec.off)
	}
	// the buffer grows with the bytes actually read, not the claimed length
	buf := bytes.NewBuffer(dec.buf[:0])
	buf.Write(hdr[:])
	got, err := io.CopyN(buf, dec.r, n-4)
	dec.buf = buf.Bytes()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("%w: bson: truncated document at offset %d (%d of %d bytes): %w", doc.ErrMalformed, dec.off, got+4, n, err)
	}
	d := &decoder{opts: getOpts(dec.opts), base: int(dec.off)}
	if _, err := d.document(dec.buf, o, false, 0); err != nil {
		return err
	}
	dec.off += n
	return nil
}

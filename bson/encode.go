package bson

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/docwire/doc"
)

// Marshal encodes an object, or an array as a document keyed "0", "1", ...
func Marshal(node *doc.Node) ([]byte, error) {
	return Append(nil, node)
}

// Append appends the encoding of node to dst.
func Append(dst []byte, node *doc.Node) ([]byte, error) {
	switch node.Type {
	case doc.ObjectType, doc.ArrayType:
		return appendDocument(dst, node)
	default:
		return nil, fmt.Errorf("%w: bson: top level %s", doc.ErrUnsupported, node.Type)
	}
}

func Encode(node *doc.Node, w io.Writer) error {
	d, err := Marshal(node)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(d))
	return err
}

func appendDocument(dst []byte, node *doc.Node) ([]byte, error) {
	start := len(dst)
	dst = append(dst, 0, 0, 0, 0)
	var err error
	for i, v := range node.Values {
		var name string
		if node.Type == doc.ObjectType {
			name = node.Fields[i]
		} else {
			name = strconv.Itoa(i)
		}
		if strings.IndexByte(name, 0) != -1 {
			return nil, fmt.Errorf("%w: bson: name %q contains NUL", doc.ErrUnsupported, name)
		}
		if !utf8.ValidString(name) {
			return nil, fmt.Errorf("%w: bson: name %q is not UTF-8", doc.ErrUnsupported, name)
		}
		dst = append(dst, byte(typeOf(v)))
		dst = append(dst, name...)
		dst = append(dst, 0)
		dst, err = appendValue(dst, v)
		if err != nil {
			return nil, err
		}
	}
	dst = append(dst, 0)
	n := len(dst) - start
	if n > math.MaxInt32 {
		return nil, fmt.Errorf("%w: bson: document of %d bytes", doc.ErrUnsupported, n)
	}
	binary.LittleEndian.PutUint32(dst[start:], uint32(n))
	return dst, nil
}

func appendValue(dst []byte, v *doc.Node) ([]byte, error) {
	switch typeOf(v) {
	case NumberType:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(v.Float64)), nil
	case StringType:
		if !utf8.ValidString(v.String) {
			return nil, fmt.Errorf("%w: bson: string is not UTF-8", doc.ErrUnsupported)
		}
		if len(v.String) >= math.MaxInt32 {
			return nil, fmt.Errorf("%w: bson: string of %d bytes", doc.ErrUnsupported, len(v.String))
		}
		dst = binary.LittleEndian.AppendUint32(dst, uint32(len(v.String)+1))
		dst = append(dst, v.String...)
		return append(dst, 0), nil
	case ObjectType, ArrayType:
		return appendDocument(dst, v)
	case BoolType:
		if v.Bool {
			return append(dst, 1), nil
		}
		return append(dst, 0), nil
	case DateType:
		return binary.LittleEndian.AppendUint64(dst, uint64(v.Millis)), nil
	case NullType:
		return dst, nil
	case Int32Type:
		return binary.LittleEndian.AppendUint32(dst, uint32(int32(v.Int64))), nil
	case Int64Type:
		return binary.LittleEndian.AppendUint64(dst, uint64(v.Int64)), nil
	default:
		panic("type")
	}
}

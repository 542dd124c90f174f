package bson

import (
	"fmt"

	"github.com/signadot/docwire/doc"
)

type Type byte

const (
	NumberType Type = 0x01
	StringType Type = 0x02
	ObjectType Type = 0x03
	ArrayType  Type = 0x04
	BoolType   Type = 0x08
	DateType   Type = 0x09
	NullType   Type = 0x0A
	Int32Type  Type = 0x10
	Int64Type  Type = 0x12
)

func (t Type) String() string {
	switch t {
	case NumberType:
		return "number"
	case StringType:
		return "string"
	case ObjectType:
		return "object"
	case ArrayType:
		return "array"
	case BoolType:
		return "boolean"
	case DateType:
		return "date"
	case NullType:
		return "null"
	case Int32Type:
		return "int32"
	case Int64Type:
		return "int64"
	}
	return fmt.Sprintf("<type 0x%02x>", byte(t))
}

// unsupported reports whether t is a standard BSON type this package does
// not represent.
func unsupported(t Type) bool {
	switch t {
	case 0x05, 0x06, 0x07, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x11, 0x13, 0x7F, 0xFF:
		return true
	}
	return false
}

func typeOf(n *doc.Node) Type {
	switch n.Tag() {
	case doc.NumberTag:
		return NumberType
	case doc.StringTag:
		return StringType
	case doc.ObjectTag:
		return ObjectType
	case doc.ArrayTag:
		return ArrayType
	case doc.BooleanTag:
		return BoolType
	case doc.DateTag:
		return DateType
	case doc.NullTag:
		return NullType
	case doc.Int32Tag:
		return Int32Type
	case doc.Int64Tag:
		return Int64Type
	default:
		panic("tag")
	}
}

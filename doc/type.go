package doc

import (
	"fmt"
	"math"
)

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	NumberType
	StringType
	DateType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType: "Object",
		ArrayType:  "Array",
		StringType: "String",
		NumberType: "Number",
		IntType:    "Int",
		DateType:   "Date",
		BoolType:   "Bool",
		NullType:   "Null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Bool":   BoolType,
		"Int":    IntType,
		"Number": NumberType,
		"String": StringType,
		"Date":   DateType,
		"Array":  ArrayType,
		"Object": ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntType,
		NumberType,
		StringType,
		DateType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// Tag is the type tag reported to codecs and callers. It is derived from a
// node's active alternative and never stored.
type Tag int

const (
	NullTag Tag = iota
	BooleanTag
	Int32Tag
	Int64Tag
	NumberTag
	StringTag
	DateTag
	ObjectTag
	ArrayTag
)

func (t Tag) String() string {
	switch t {
	case NullTag:
		return "null"
	case BooleanTag:
		return "boolean"
	case Int32Tag:
		return "int32"
	case Int64Tag:
		return "int64"
	case NumberTag:
		return "number"
	case StringTag:
		return "string"
	case DateTag:
		return "date"
	case ObjectTag:
		return "object"
	case ArrayTag:
		return "array"
	}
	return "<unknown tag>"
}

// Tag returns the type tag of n.
func (n *Node) Tag() Tag {
	switch n.Type {
	case NullType:
		return NullTag
	case BoolType:
		return BooleanTag
	case IntType:
		if n.Int64 >= math.MinInt32 && n.Int64 <= math.MaxInt32 {
			return Int32Tag
		}
		return Int64Tag
	case NumberType:
		return NumberTag
	case StringType:
		return StringTag
	case DateType:
		return DateTag
	case ObjectType:
		return ObjectTag
	case ArrayType:
		return ArrayTag
	default:
		panic("type")
	}
}

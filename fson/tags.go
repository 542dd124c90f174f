package fson

import "fmt"

type Tag byte

const (
	ObjectTag Tag = '{'
	ArrayTag  Tag = '['
	NameTag   Tag = ':'
	EndTag    Tag = ';'
	StringTag Tag = 's'
	NumberTag Tag = 'd'
	BoolTag   Tag = 'b'
	NullTag   Tag = 'n'
	IntTag    Tag = 'i'
	TimeTag   Tag = 't'
)

func (t Tag) String() string {
	switch t {
	case ObjectTag:
		return "object"
	case ArrayTag:
		return "array"
	case NameTag:
		return "name"
	case EndTag:
		return "end"
	case StringTag:
		return "string"
	case NumberTag:
		return "number"
	case BoolTag:
		return "boolean"
	case NullTag:
		return "null"
	case IntTag:
		return "integer"
	case TimeTag:
		return "timestamp"
	}
	return fmt.Sprintf("<tag 0x%02x>", byte(t))
}

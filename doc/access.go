package doc

import (
	"fmt"
	"slices"
	"time"
)

func (n *Node) IsObject() bool    { return n.Type == ObjectType }
func (n *Node) IsArray() bool     { return n.Type == ArrayType }
func (n *Node) IsNumber() bool    { return n.Type == NumberType }
func (n *Node) IsString() bool    { return n.Type == StringType }
func (n *Node) IsBoolean() bool   { return n.Type == BoolType }
func (n *Node) IsInteger() bool   { return n.Type == IntType }
func (n *Node) IsTimestamp() bool { return n.Type == DateType }
func (n *Node) IsNull() bool      { return n.Type == NullType }

// Size returns the number of fields of an object, the number of elements
// of an array, and 0 for scalars.
func (n *Node) Size() int {
	switch n.Type {
	case ObjectType, ArrayType:
		return len(n.Values)
	default:
		return 0
	}
}

// Empty reports whether n is a container with no children. Scalars,
// including null, are not empty.
func (n *Node) Empty() bool {
	switch n.Type {
	case ObjectType, ArrayType:
		return len(n.Values) == 0
	default:
		return false
	}
}

func (n *Node) find(name string) (int, bool) {
	return slices.BinarySearch(n.Fields, name)
}

func (n *Node) set(name string, v *Node) {
	i, ok := n.find(name)
	if ok {
		n.Values[i] = v
		return
	}
	n.Fields = slices.Insert(n.Fields, i, name)
	n.Values = slices.Insert(n.Values, i, v)
}

func mismatch(n *Node, want Type) error {
	return fmt.Errorf("%w: %s is not %s", ErrTypeMismatch, n.Type, want)
}

// Get returns the value of field name. It never modifies n.
func (n *Node) Get(name string) (*Node, error) {
	if n.Type != ObjectType {
		return nil, mismatch(n, ObjectType)
	}
	i, ok := n.find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}
	return n.Values[i], nil
}

// Has reports whether n is an object with field name.
func (n *Node) Has(name string) bool {
	if n.Type != ObjectType {
		return false
	}
	_, ok := n.find(name)
	return ok
}

// Field returns the value of field name, inserting an empty object under
// name if it is absent.
func (n *Node) Field(name string) (*Node, error) {
	if n.Type != ObjectType {
		return nil, mismatch(n, ObjectType)
	}
	i, ok := n.find(name)
	if ok {
		return n.Values[i], nil
	}
	v := Object()
	n.Fields = slices.Insert(n.Fields, i, name)
	n.Values = slices.Insert(n.Values, i, v)
	return v, nil
}

// Set sets field name to v, replacing any existing value.
func (n *Node) Set(name string, v *Node) error {
	if n.Type != ObjectType {
		return mismatch(n, ObjectType)
	}
	n.set(name, orNull(v))
	return nil
}

// Delete removes field name, reporting whether it was present.
func (n *Node) Delete(name string) (bool, error) {
	if n.Type != ObjectType {
		return false, mismatch(n, ObjectType)
	}
	i, ok := n.find(name)
	if !ok {
		return false, nil
	}
	n.Fields = slices.Delete(n.Fields, i, i+1)
	n.Values = slices.Delete(n.Values, i, i+1)
	return true, nil
}

// Index returns element i of an array.
func (n *Node) Index(i int) (*Node, error) {
	if n.Type != ArrayType {
		return nil, mismatch(n, ArrayType)
	}
	if i < 0 || i >= len(n.Values) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(n.Values))
	}
	return n.Values[i], nil
}

// SetIndex replaces element i of an array. Arrays are never extended.
func (n *Node) SetIndex(i int, v *Node) error {
	if n.Type != ArrayType {
		return mismatch(n, ArrayType)
	}
	if i < 0 || i >= len(n.Values) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(n.Values))
	}
	n.Values[i] = orNull(v)
	return nil
}

func (n *Node) Append(vs ...*Node) error {
	if n.Type != ArrayType {
		return mismatch(n, ArrayType)
	}
	for _, v := range vs {
		n.Values = append(n.Values, orNull(v))
	}
	return nil
}

func (n *Node) AsBool() (bool, error) {
	if n.Type != BoolType {
		return false, mismatch(n, BoolType)
	}
	return n.Bool, nil
}

func (n *Node) AsInt() (int64, error) {
	if n.Type != IntType {
		return 0, mismatch(n, IntType)
	}
	return n.Int64, nil
}

func (n *Node) AsFloat() (float64, error) {
	if n.Type != NumberType {
		return 0, mismatch(n, NumberType)
	}
	return n.Float64, nil
}

func (n *Node) AsString() (string, error) {
	if n.Type != StringType {
		return "", mismatch(n, StringType)
	}
	return n.String, nil
}

func (n *Node) AsMillis() (int64, error) {
	if n.Type != DateType {
		return 0, mismatch(n, DateType)
	}
	return n.Millis, nil
}

// AsTime returns the timestamp of a date node in UTC.
func (n *Node) AsTime() (time.Time, error) {
	ms, err := n.AsMillis()
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

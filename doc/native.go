package doc

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// ToAny converts n to plain Go values: map[string]any, []any, int64,
// float64, string, bool, time.Time (UTC) and nil.
func ToAny(n *Node) any {
	switch n.Type {
	case NullType:
		return nil
	case BoolType:
		return n.Bool
	case IntType:
		return n.Int64
	case NumberType:
		return n.Float64
	case StringType:
		return n.String
	case DateType:
		return time.UnixMilli(n.Millis).UTC()
	case ObjectType:
		res := make(map[string]any, len(n.Fields))
		for i, f := range n.Fields {
			res[f] = ToAny(n.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToAny(v)
		}
		return res
	default:
		panic("type")
	}
}

// FromAny converts plain Go values to a node. Maps must have string keys.
// Unsigned integers above math.MaxInt64 are rejected rather than
// converted to numbers.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case float64:
		return FromFloat(x), nil
	case string:
		return FromString(x), nil
	case time.Time:
		return FromTime(x), nil
	case map[string]any:
		res := Object()
		for k, e := range x {
			c, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			res.set(k, c)
		}
		return res, nil
	case []any:
		res := &Node{Type: ArrayType, Values: make([]*Node, len(x))}
		for i, e := range x {
			c, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			res.Values[i] = c
		}
		return res, nil
	}
	return fromValue(reflect.ValueOf(v))
}

func fromValue(rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Invalid:
		return Null(), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return fromValue(rv.Elem())
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows int64", ErrUnsupported, u)
		}
		return FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrUnsupported, rv.Type().Key())
		}
		res := Object()
		iter := rv.MapRange()
		for iter.Next() {
			c, err := FromAny(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", iter.Key().String(), err)
			}
			res.set(iter.Key().String(), c)
		}
		return res, nil
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		res := &Node{Type: ArrayType, Values: make([]*Node, n)}
		for i := range n {
			c, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			res.Values[i] = c
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
}

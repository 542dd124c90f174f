package doc

import (
	"maps"
	"slices"
	"time"
)

type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	Bool    bool
	Int64   int64
	Float64 float64
	String  string
	Millis  int64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: f,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

// FromTime returns a date node for t truncated to millisecond resolution.
func FromTime(t time.Time) *Node {
	return FromMillis(t.UnixMilli())
}

func FromMillis(ms int64) *Node {
	return &Node{
		Type:   DateType,
		Millis: ms,
	}
}

// Object returns an empty object.
func Object() *Node {
	return &Node{Type: ObjectType}
}

// Array returns an empty array.
func Array() *Node {
	return &Node{Type: ArrayType}
}

func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = slices.Sorted(maps.Keys(m))
	res.Values = make([]*Node, len(res.Fields))
	for i, key := range res.Fields {
		res.Values[i] = orNull(m[key])
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object from kvs. Later pairs overwrite earlier
// pairs with the same key.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for i := range kvs {
		res.set(kvs[i].Key, orNull(kvs[i].Val))
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		res.Values[i] = orNull(v)
	}
	return res
}

func orNull(n *Node) *Node {
	if n == nil {
		return Null()
	}
	return n
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	*dst = Node{
		Type:    n.Type,
		Bool:    n.Bool,
		Int64:   n.Int64,
		Float64: n.Float64,
		String:  n.String,
		Millis:  n.Millis,
	}
	if n.Fields != nil {
		dst.Fields = slices.Clone(n.Fields)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// Visit calls f on n and its descendants in pre and post order. Returning
// false from the pre-order call skips the children of that node.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

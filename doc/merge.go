package doc

import "fmt"

// Merge returns a new node combining a and b.
//
// Two objects merge into their union, with b's value winning for names
// present in both. When a is an array, an array b has its elements
// appended and any other b is appended as a single element. a and b are
// not modified.
func Merge(a, b *Node) (*Node, error) {
	switch a.Type {
	case ObjectType:
		if b.Type != ObjectType {
			return nil, fmt.Errorf("%w: cannot merge %s into %s", ErrTypeMismatch, b.Type, a.Type)
		}
		res := a.Clone()
		for i, f := range b.Fields {
			res.set(f, b.Values[i].Clone())
		}
		return res, nil
	case ArrayType:
		res := a.Clone()
		if b.Type == ArrayType {
			for _, v := range b.Values {
				res.Values = append(res.Values, v.Clone())
			}
			return res, nil
		}
		res.Values = append(res.Values, b.Clone())
		return res, nil
	default:
		return nil, fmt.Errorf("%w: cannot merge into %s", ErrTypeMismatch, a.Type)
	}
}

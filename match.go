package docwire

import (
	"fmt"
	"strings"

	"github.com/signadot/docwire/debug"
	"github.com/signadot/docwire/doc"
)

// Match reports whether d matches the filter match.
//
// A null filter matches anything. An object filter matches an object
// having every field of the filter, each matching its filter value;
// other fields of d are ignored. An array filter matches an array of the
// same length whose elements match pairwise. Other filters match equal
// scalars.
//
// A non-empty object filter whose names all start with '$' is an operator
// filter: each of $eq, $ne, $lt, $lte, $gt and $gte compares d to the
// operand with doc.Compare, and all must hold. Ordering operators are
// false when d and the operand have different types, integers and numbers
// being mutually comparable.
func Match(d, match *doc.Node) (bool, error) {
	if debug.Match() {
		debug.Logf("match %s against %s filter %v\n", d.Type, match.Type, match)
	}
	switch match.Type {
	case doc.NullType:
		return true, nil
	case doc.ObjectType:
		if isOperatorFilter(match) {
			return matchOps(d, match)
		}
		return matchObj(d, match)
	case doc.ArrayType:
		return matchArray(d, match)
	default:
		return d.Type == match.Type && doc.Equal(d, match), nil
	}
}

func isOperatorFilter(match *doc.Node) bool {
	if len(match.Fields) == 0 {
		return false
	}
	for _, f := range match.Fields {
		if !strings.HasPrefix(f, "$") {
			return false
		}
	}
	return true
}

func matchObj(d, match *doc.Node) (bool, error) {
	if d.Type != doc.ObjectType {
		return false, nil
	}
	for i, f := range match.Fields {
		v, err := d.Get(f)
		if err != nil {
			return false, nil
		}
		ok, err := Match(v, match.Values[i])
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func matchArray(d, match *doc.Node) (bool, error) {
	if d.Type != doc.ArrayType || len(d.Values) != len(match.Values) {
		return false, nil
	}
	for i := range d.Values {
		ok, err := Match(d.Values[i], match.Values[i])
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func ordered(a, b *doc.Node) bool {
	if a.Type == b.Type {
		return true
	}
	num := func(n *doc.Node) bool { return n.Type == doc.IntType || n.Type == doc.NumberType }
	return num(a) && num(b)
}

func matchOps(d, match *doc.Node) (bool, error) {
	for i, op := range match.Fields {
		arg := match.Values[i]
		var ok bool
		switch op {
		case "$eq":
			ok = doc.Equal(d, arg)
		case "$ne":
			ok = !doc.Equal(d, arg)
		case "$lt":
			ok = ordered(d, arg) && doc.Compare(d, arg) < 0
		case "$lte":
			ok = ordered(d, arg) && doc.Compare(d, arg) <= 0
		case "$gt":
			ok = ordered(d, arg) && doc.Compare(d, arg) > 0
		case "$gte":
			ok = ordered(d, arg) && doc.Compare(d, arg) >= 0
		default:
			return false, fmt.Errorf("%w: match operator %q", doc.ErrUnsupported, op)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Trim returns the parts of d selected by match: object fields named by
// the filter, and for array filters the first unused element of d
// matching each filter element. Scalars are returned whole.
func Trim(match, d *doc.Node) *doc.Node {
	switch {
	case match.Type == doc.ObjectType && d.Type == doc.ObjectType && !isOperatorFilter(match):
		res := doc.Object()
		for i, f := range d.Fields {
			m, err := match.Get(f)
			if err != nil {
				continue
			}
			res.Set(f, Trim(m, d.Values[i]))
		}
		return res
	case match.Type == doc.ArrayType && d.Type == doc.ArrayType:
		res := doc.Array()
		used := make([]bool, len(d.Values))
		for _, m := range match.Values {
			for i, v := range d.Values {
				if used[i] {
					continue
				}
				ok, err := Match(v, m)
				if err != nil || !ok {
					continue
				}
				res.Append(Trim(m, v))
				used[i] = true
				break
			}
		}
		return res
	default:
		return d.Clone()
	}
}

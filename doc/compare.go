package doc

import (
	"cmp"
	"math"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Integers and numbers are ordered by value; an integer and a number of
// equal value are ordered integer first, so Compare is 0 only for nodes of
// the same type.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case IntType, NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case DateType:
		return cmp.Compare(a.Millis, b.Millis)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// Equal reports whether a and b have the same type and contents.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Int,Number < String < Date < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType, NumberType:
		return 2
	case StringType:
		return 3
	case DateType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	switch {
	case a.Type == IntType && b.Type == IntType:
		return cmp.Compare(a.Int64, b.Int64)
	case a.Type == NumberType && b.Type == NumberType:
		return cmp.Compare(a.Float64, b.Float64)
	case a.Type == IntType:
		if c := compareIntFloat(a.Int64, b.Float64); c != 0 {
			return c
		}
		return -1
	default:
		if c := compareIntFloat(b.Int64, a.Float64); c != 0 {
			return -c
		}
		return 1
	}
}

func compareIntFloat(i int64, f float64) int {
	if math.IsNaN(f) {
		return 1
	}
	if c := cmp.Compare(float64(i), f); c != 0 {
		return c
	}
	// float64(i) rounded onto f; settle it in integers when f is one.
	if f >= math.MinInt64 && f < math.MaxInt64 && f == math.Trunc(f) {
		return cmp.Compare(i, int64(f))
	}
	return 0
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

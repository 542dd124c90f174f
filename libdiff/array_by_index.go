package libdiff

import (
	"strconv"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/docwire/doc"
)

// diffArrayByIndex maps each element to a rune standing for its summary,
// diffs the two rune sequences and walks the result. Elements in equal
// runs are compared recursively, a delete run followed by an insert run
// is paired up into replacements, and the rest become removes and adds.
// Paths use the index in the array as modified by the preceding
// operations.
func diffArrayByIndex(path string, from, to *doc.Node, ops []*doc.Node) []*doc.Node {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti, ci := 0, 0, 0
	for i := 0; i < len(diffs); i++ {
		d := &diffs[i]
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffpatch.DiffEqual:
			for range n {
				ops = diff(IndexPath(path, ci), from.Values[fi], to.Values[ti], ops)
				fi++
				ti++
				ci++
			}
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = utf8.RuneCountInString(diffs[i+1].Text)
				i++
			}
			k := min(n, ins)
			for range k {
				ops = diff(IndexPath(path, ci), from.Values[fi], to.Values[ti], ops)
				fi++
				ti++
				ci++
			}
			for range n - k {
				ops = append(ops, makeOp(RemoveOp, IndexPath(path, ci), nil))
				fi++
			}
			for range ins - k {
				ops = append(ops, makeOp(AddOp, IndexPath(path, ci), to.Values[ti]))
				ti++
				ci++
			}
		case diffpatch.DiffInsert:
			for range n {
				ops = append(ops, makeOp(AddOp, IndexPath(path, ci), to.Values[ti]))
				ti++
				ci++
			}
		}
	}
	return ops
}

// mapValues assigns each distinct summary a rune. Elements in equal runs
// are compared again by diff, so a shared rune only costs precision.
func mapValues(m map[string]rune, node *doc.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = summaryRune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summaryRune maps k to a valid rune, skipping surrogates.
func summaryRune(k int) rune {
	r := rune(k % (utf8.MaxRune + 1 - 0x800))
	if r >= 0xd800 {
		r += 0x800
	}
	return r
}

func summaryStr(node *doc.Node) string {
	switch node.Type {
	case doc.ObjectType, doc.ArrayType, doc.NullType:
		return node.Type.String()
	case doc.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case doc.StringType:
		return node.Type.String() + "-" + node.String
	case doc.IntType:
		return node.Type.String() + "-" + strconv.FormatInt(node.Int64, 10)
	case doc.NumberType:
		return node.Type.String() + "-" + strconv.FormatFloat(node.Float64, 'g', -1, 64)
	case doc.DateType:
		return node.Type.String() + "-" + strconv.FormatInt(node.Millis, 10)
	default:
		panic("type")
	}
}

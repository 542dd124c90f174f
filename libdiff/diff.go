package libdiff

import (
	"github.com/signadot/docwire/debug"
	"github.com/signadot/docwire/doc"
)

// Diff returns the JSON Patch operations turning from into to. The result
// is an empty array when the trees are equal. Neither argument is
// modified.
func Diff(from, to *doc.Node) *doc.Node {
	ops := diff("", from, to, nil)
	if debug.Patch() {
		debug.Logf("diff: %d ops\n", len(ops))
	}
	return doc.FromSlice(ops)
}

func diff(path string, from, to *doc.Node, ops []*doc.Node) []*doc.Node {
	if from.Type != to.Type {
		return append(ops, makeOp(ReplaceOp, path, to))
	}
	switch from.Type {
	case doc.ObjectType:
		return diffObject(path, from, to, ops)
	case doc.ArrayType:
		return diffArrayByIndex(path, from, to, ops)
	default:
		if doc.Equal(from, to) {
			return ops
		}
		return append(ops, makeOp(ReplaceOp, path, to))
	}
}

// diffObject walks the sorted fields of both objects together.
func diffObject(path string, from, to *doc.Node, ops []*doc.Node) []*doc.Node {
	i, j := 0, 0
	for i < len(from.Fields) || j < len(to.Fields) {
		switch {
		case j == len(to.Fields) || (i < len(from.Fields) && from.Fields[i] < to.Fields[j]):
			ops = append(ops, makeOp(RemoveOp, FieldPath(path, from.Fields[i]), nil))
			i++
		case i == len(from.Fields) || to.Fields[j] < from.Fields[i]:
			ops = append(ops, makeOp(AddOp, FieldPath(path, to.Fields[j]), to.Values[j]))
			j++
		default:
			ops = diff(FieldPath(path, from.Fields[i]), from.Values[i], to.Values[j], ops)
			i++
			j++
		}
	}
	return ops
}

package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/docwire/doc"
)

const (
	AddOp     = "add"
	RemoveOp  = "remove"
	ReplaceOp = "replace"
)

func makeOp(op, path string, value *doc.Node) *doc.Node {
	kvs := []doc.KeyVal{
		{Key: "op", Val: doc.FromString(op)},
		{Key: "path", Val: doc.FromString(path)},
	}
	if value != nil {
		kvs = append(kvs, doc.KeyVal{Key: "value", Val: value.Clone()})
	}
	return doc.FromKeyVals(kvs)
}

// FieldPath appends an object member to a JSON Pointer.
func FieldPath(path, name string) string {
	name = strings.ReplaceAll(name, "~", "~0")
	name = strings.ReplaceAll(name, "/", "~1")
	return path + "/" + name
}

// IndexPath appends an array index to a JSON Pointer.
func IndexPath(path string, i int) string {
	return path + "/" + strconv.Itoa(i)
}

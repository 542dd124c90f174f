// Package doc provides the document tree shared by every docwire codec.
//
// # Overview
//
// A document is a tree of *Node values. Every codec (BSON, FSON, JSON and
// the YAML bridge) decodes into and encodes from this one representation,
// so a document read in one format can be written in any other.
//
// The tree works as a recursive tagged union: the Type field says which
// alternative is active and only the fields belonging to that alternative
// are meaningful.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean, in Bool
//   - IntType: 64-bit signed integer, in Int64
//   - NumberType: IEEE-754 double, in Float64
//   - StringType: UTF-8 string, in String
//   - DateType: millisecond timestamp, in Millis (milliseconds since the Unix epoch)
//   - ObjectType: mapping from names to nodes, in Fields and Values
//   - ArrayType: ordered sequence of nodes, in Values
//
// There is no implicit coercion between IntType and NumberType: the JSON
// literal 42 decodes to an IntType node and 42.0 to a NumberType node, and
// the two are not Equal.
//
// # Type Tags
//
// Node.Tag derives the wire-facing type tag (object, array, number, string,
// boolean, date, null, int32, int64) from the active alternative. Tags are
// never stored. Integers report int32 when their value fits in 32 bits.
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the name of the value at Values[i].
// Fields are unique and kept sorted in byte order, regardless of the order
// in which they were inserted or decoded. Setting an existing name
// overwrites its value:
//
//	obj := doc.FromKeyVals([]doc.KeyVal{
//	    {Key: "a", Val: doc.FromInt(1)},
//	    {Key: "a", Val: doc.FromInt(2)},
//	})
//	obj.Size() // 1
//
// # Access
//
// Get and Index are read-only and fail with ErrKeyNotFound and
// ErrIndexOutOfRange. Field is the mutable counterpart of Get: an absent
// name is filled in with an empty object, which is what decoders rely on
// when they open a nested object under a name:
//
//	spec, _ := root.Field("spec") // creates "spec": {} if absent
//	spec.Set("replicas", doc.FromInt(3))
//
// SetIndex never extends an array; use Append.
//
// # Builders
//
// Parsers never build nodes directly. They drive an Observer
// (StartObject, Name, Value, EndObject, ...) and a Builder turns those
// events into a tree. This keeps every decoder independent of the node
// representation.
//
// # Values
//
// Nodes are values: Clone deep-copies, constructors take ownership of the
// nodes passed to them, and no two trees share children. Nodes are safe to
// read from multiple goroutines once built; concurrent mutation must be
// synchronized by the caller.
//
// # Related Packages
//
//   - github.com/signadot/docwire/bson - BSON codec
//   - github.com/signadot/docwire/fson - FSON codec
//   - github.com/signadot/docwire/json - JSON codec
//   - github.com/signadot/docwire/parse - Format dispatching decoder
//   - github.com/signadot/docwire/encode - Format dispatching encoder
package doc

package doc

import "fmt"

// Observer receives a document as a sequence of events. Decoders drive an
// Observer instead of constructing nodes, and Emit replays a node as
// events.
//
// Within an object every value (scalar or container) is preceded by Name.
// Within an array a value may be preceded by Index carrying its position.
// Value is only called with scalar nodes.
type Observer interface {
	StartObject() error
	EndObject() error
	StartArray() error
	EndArray() error
	Name(name string) error
	Index(i int) error
	Value(v *Node) error
}

type frame struct {
	node    *Node
	name    string
	hasName bool
	index   int
}

// Builder is an Observer which assembles the events it receives into a
// tree.
type Builder struct {
	stack []frame
	root  *Node
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Reset discards any partial or complete result.
func (b *Builder) Reset() {
	b.stack = b.stack[:0]
	b.root = nil
}

// Depth returns the number of open containers.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Done reports whether a complete root value has been built.
func (b *Builder) Done() bool {
	return b.root != nil && len(b.stack) == 0
}

// Result returns the built tree, failing if no root value was completed.
func (b *Builder) Result() (*Node, error) {
	if len(b.stack) != 0 {
		return nil, fmt.Errorf("%w: %d unterminated containers", ErrMalformed, len(b.stack))
	}
	if b.root == nil {
		return nil, fmt.Errorf("%w: no value", ErrMalformed)
	}
	return b.root, nil
}

func (b *Builder) top() *frame {
	return &b.stack[len(b.stack)-1]
}

// attach places a new child under the innermost open container, or makes
// it the root.
func (b *Builder) attach(v *Node) (*Node, error) {
	if len(b.stack) == 0 {
		if b.root != nil {
			return nil, fmt.Errorf("%w: value after complete document", ErrMalformed)
		}
		b.root = v
		return v, nil
	}
	f := b.top()
	switch f.node.Type {
	case ObjectType:
		if !f.hasName {
			return nil, fmt.Errorf("%w: object value without a name", ErrMalformed)
		}
		f.hasName = false
		if v.Type == ObjectType {
			// duplicate names replace rather than merge
			if f.node.Has(f.name) {
				f.node.Delete(f.name)
			}
			return f.node.Field(f.name)
		}
		f.node.set(f.name, v)
		return v, nil
	case ArrayType:
		if f.index != -1 && f.index != len(f.node.Values) {
			return nil, fmt.Errorf("%w: array index %d, expected %d", ErrMalformed, f.index, len(f.node.Values))
		}
		f.index = -1
		f.node.Values = append(f.node.Values, v)
		return v, nil
	default:
		panic("type")
	}
}

func (b *Builder) start(v *Node) error {
	c, err := b.attach(v)
	if err != nil {
		return err
	}
	b.stack = append(b.stack, frame{node: c, index: -1})
	return nil
}

func (b *Builder) end(t Type) error {
	if len(b.stack) == 0 {
		return fmt.Errorf("%w: unbalanced end of %s", ErrMalformed, t)
	}
	f := b.top()
	if f.node.Type != t {
		return fmt.Errorf("%w: end of %s inside %s", ErrMalformed, t, f.node.Type)
	}
	if f.hasName {
		return fmt.Errorf("%w: name %q without value", ErrMalformed, f.name)
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

func (b *Builder) StartObject() error { return b.start(Object()) }
func (b *Builder) EndObject() error   { return b.end(ObjectType) }
func (b *Builder) StartArray() error  { return b.start(Array()) }
func (b *Builder) EndArray() error    { return b.end(ArrayType) }

func (b *Builder) Name(name string) error {
	if len(b.stack) == 0 || b.top().node.Type != ObjectType {
		return fmt.Errorf("%w: name %q outside object", ErrMalformed, name)
	}
	f := b.top()
	if f.hasName {
		return fmt.Errorf("%w: name %q follows name %q", ErrMalformed, name, f.name)
	}
	f.name = name
	f.hasName = true
	return nil
}

func (b *Builder) Index(i int) error {
	if len(b.stack) == 0 || b.top().node.Type != ArrayType {
		return fmt.Errorf("%w: index %d outside array", ErrMalformed, i)
	}
	b.top().index = i
	return nil
}

func (b *Builder) Value(v *Node) error {
	if !v.Type.IsLeaf() {
		return fmt.Errorf("%w: Value called with %s", ErrUnsupported, v.Type)
	}
	c := *v
	_, err := b.attach(&c)
	return err
}

// Emit replays n as events on o.
func Emit(n *Node, o Observer) error {
	switch n.Type {
	case ObjectType:
		if err := o.StartObject(); err != nil {
			return err
		}
		for i, f := range n.Fields {
			if err := o.Name(f); err != nil {
				return err
			}
			if err := Emit(n.Values[i], o); err != nil {
				return err
			}
		}
		return o.EndObject()
	case ArrayType:
		if err := o.StartArray(); err != nil {
			return err
		}
		for i, v := range n.Values {
			if err := o.Index(i); err != nil {
				return err
			}
			if err := Emit(v, o); err != nil {
				return err
			}
		}
		return o.EndArray()
	default:
		return o.Value(n)
	}
}

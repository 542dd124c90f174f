package doc

import (
	"errors"
	"testing"
)

func TestBuilderEmitRoundTrip(t *testing.T) {
	in := FromMap(map[string]*Node{
		"name":  FromString("x"),
		"tags":  FromSlice([]*Node{FromString("a"), FromSlice(nil), FromMap(nil)}),
		"inner": FromMap(map[string]*Node{"n": FromInt(-3), "f": FromFloat(0.5)}),
		"when":  FromMillis(-1),
		"none":  Null(),
		"ok":    FromBool(true),
	})
	b := NewBuilder()
	if err := Emit(in, b); err != nil {
		t.Fatal(err)
	}
	out, err := b.Result()
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(in, out) {
		t.Errorf("got %v want %v", ToAny(out), ToAny(in))
	}
	name, _ := out.Get("name")
	name.String = "changed"
	if n, _ := in.Get("name"); n.String != "x" {
		t.Error("builder aliased scalar from source")
	}
}

func TestBuilderScalarRoot(t *testing.T) {
	b := NewBuilder()
	if err := b.Value(FromInt(42)); err != nil {
		t.Fatal(err)
	}
	n, err := b.Result()
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(n, FromInt(42)) {
		t.Errorf("got %v", ToAny(n))
	}
	if err := b.Value(FromInt(1)); !errors.Is(err, ErrMalformed) {
		t.Errorf("second root: %v", err)
	}
}

func TestBuilderDuplicateObjectName(t *testing.T) {
	b := NewBuilder()
	steps := []func() error{
		b.StartObject,
		func() error { return b.Name("a") },
		b.StartObject,
		func() error { return b.Name("x") },
		func() error { return b.Value(FromInt(1)) },
		b.EndObject,
		func() error { return b.Name("a") },
		b.StartObject,
		func() error { return b.Name("y") },
		func() error { return b.Value(FromInt(2)) },
		b.EndObject,
		b.EndObject,
	}
	for i, s := range steps {
		if err := s(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	n, err := b.Result()
	if err != nil {
		t.Fatal(err)
	}
	a, _ := n.Get("a")
	if a.Has("x") || !a.Has("y") {
		t.Errorf("duplicate object name merged: %v", a.Fields)
	}
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name  string
		steps func(b *Builder) error
	}{
		{"name in array", func(b *Builder) error {
			if err := b.StartArray(); err != nil {
				return err
			}
			return b.Name("a")
		}},
		{"value without name", func(b *Builder) error {
			if err := b.StartObject(); err != nil {
				return err
			}
			return b.Value(Null())
		}},
		{"dangling name", func(b *Builder) error {
			if err := b.StartObject(); err != nil {
				return err
			}
			if err := b.Name("a"); err != nil {
				return err
			}
			return b.EndObject()
		}},
		{"mismatched end", func(b *Builder) error {
			if err := b.StartObject(); err != nil {
				return err
			}
			return b.EndArray()
		}},
		{"unbalanced end", func(b *Builder) error {
			return b.EndObject()
		}},
		{"bad index", func(b *Builder) error {
			if err := b.StartArray(); err != nil {
				return err
			}
			if err := b.Index(3); err != nil {
				return err
			}
			return b.Value(Null())
		}},
		{"unterminated", func(b *Builder) error {
			if err := b.StartArray(); err != nil {
				return err
			}
			_, err := b.Result()
			return err
		}},
		{"empty", func(b *Builder) error {
			_, err := b.Result()
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.steps(NewBuilder()); !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestBuilderRejectsContainerValue(t *testing.T) {
	if err := NewBuilder().Value(Object()); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

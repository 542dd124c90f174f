package fson

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/signadot/docwire/doc"
	"github.com/signadot/docwire/prim"
)

func sample() *doc.Node {
	return doc.FromMap(map[string]*doc.Node{
		"string":  doc.FromString("héllo, wörld"),
		"empty":   doc.FromString(""),
		"int":     doc.FromInt(-42),
		"float":   doc.FromFloat(3.25),
		"bool":    doc.FromBool(true),
		"null":    doc.Null(),
		"date":    doc.FromMillis(1700000000123),
		"obj":     doc.FromMap(map[string]*doc.Node{"x": doc.FromInt(1)}),
		"emptyO":  doc.Object(),
		"emptyA":  doc.Array(),
		"array":   doc.FromSlice([]*doc.Node{doc.FromInt(1), doc.FromString("two"), doc.FromSlice([]*doc.Node{doc.Null()}), doc.Object()}),
		"日本語キー":   doc.FromBool(false),
	})
}

func TestRoundTrip(t *testing.T) {
	nodes := []*doc.Node{
		sample(),
		doc.FromSlice([]*doc.Node{sample(), sample()}),
		doc.FromInt(math.MinInt64),
		doc.FromInt(math.MaxInt64),
		doc.FromInt(-36028797018963968),
		doc.FromInt(36028797018963968),
		doc.FromFloat(math.Inf(-1)),
		doc.FromString("bare"),
		doc.Null(),
		doc.FromBool(false),
		doc.FromMillis(-1),
		doc.Object(),
		doc.Array(),
	}
	for _, n := range nodes {
		d, err := Marshal(n)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Unmarshal(d)
		if err != nil {
			t.Fatalf("%v: %v (% x)", doc.ToAny(n), err, d)
		}
		if !doc.Equal(n, got) {
			t.Errorf("got %v want %v", doc.ToAny(got), doc.ToAny(n))
		}
	}
}

func TestLayout(t *testing.T) {
	n := doc.FromKeyVals([]doc.KeyVal{
		{Key: "b", Val: doc.FromSlice([]*doc.Node{doc.FromInt(1), doc.Null()})},
		{Key: "a", Val: doc.FromBool(true)},
	})
	d, err := Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		'{',
		':', 0x81, 'a', 'b', 0x01,
		':', 0x81, 'b', '[', 'i', 0x81, 'n', ';',
		';',
	}
	if !bytes.Equal(d, want) {
		t.Errorf("got  % x\nwant % x", d, want)
	}
}

func TestBoundaryIntegers(t *testing.T) {
	tests := []struct {
		v    int64
		size int
	}{
		{-36028797018963968, 8},
		{36028797018963968, 9},
		{math.MinInt64, 10},
		{math.MaxInt64, 10},
	}
	for _, tt := range tests {
		d, err := Marshal(doc.FromInt(tt.v))
		if err != nil {
			t.Fatal(err)
		}
		if len(d) != 1+tt.size {
			t.Errorf("%d: %d bytes, want tag + %d", tt.v, len(d), tt.size)
		}
		got, err := Unmarshal(d)
		if err != nil {
			t.Fatal(err)
		}
		if got.Int64 != tt.v || !got.IsInteger() {
			t.Errorf("got %d want %d", got.Int64, tt.v)
		}
	}
}

func TestMalformed(t *testing.T) {
	name := func(s string) []byte {
		return append([]byte{byte(NameTag)}, prim.AppendString(nil, s)...)
	}
	cat := func(parts ...[]byte) []byte {
		return bytes.Join(parts, nil)
	}
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"truncated object", []byte{'{'}},
		{"truncated nested", cat([]byte{'['}, []byte{'[', ';'})},
		{"name in array", cat([]byte{'['}, name("a"), []byte{'n', ';'})},
		{"value without name", []byte{'{', 'n', ';'}},
		{"name without value", cat([]byte{'{'}, name("a"), []byte{';'})},
		{"name after name", cat([]byte{'{'}, name("a"), name("b"), []byte{'n', ';'})},
		{"end at root", []byte{';'}},
		{"name at root", name("a")},
		{"unknown tag", []byte{0x01}},
		{"trailing bytes", []byte{'n', 'n'}},
		{"truncated int", []byte{'i', 0x01}},
		{"bad bool", []byte{'b', 0x02}},
		{"truncated string", []byte{'s', 0x85, 'a'}},
		{"bson bytes", []byte{0x05, 0x00, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Unmarshal(tt.in)
			if !errors.Is(err, doc.ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
			if n != nil {
				t.Errorf("returned partial tree %v", doc.ToAny(n))
			}
		})
	}
}

func TestMaxDepth(t *testing.T) {
	in := append(bytes.Repeat([]byte{'['}, 5), bytes.Repeat([]byte{';'}, 5)...)
	if _, err := Unmarshal(in, MaxDepth(4)); !errors.Is(err, doc.ErrMalformed) {
		t.Errorf("expected depth error, got %v", err)
	}
	if _, err := Unmarshal(in, MaxDepth(5)); err != nil {
		t.Errorf("depth 5: %v", err)
	}
}

func TestDecoderStream(t *testing.T) {
	buf := &bytes.Buffer{}
	docs := []*doc.Node{doc.FromInt(1), sample(), doc.FromString("last")}
	for _, n := range docs {
		if err := Encode(n, buf); err != nil {
			t.Fatal(err)
		}
	}
	dec := NewDecoder(buf)
	for i, want := range docs {
		b := doc.NewBuilder()
		if err := dec.Decode(b); err != nil {
			t.Fatalf("doc %d: %v", i, err)
		}
		got, err := b.Result()
		if err != nil {
			t.Fatal(err)
		}
		if !doc.Equal(got, want) {
			t.Errorf("doc %d: got %v", i, doc.ToAny(got))
		}
	}
	if err := dec.Decode(doc.NewBuilder()); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

type recorder struct {
	events []string
}

func (r *recorder) StartObject() error    { r.events = append(r.events, "{"); return nil }
func (r *recorder) EndObject() error      { r.events = append(r.events, "}"); return nil }
func (r *recorder) StartArray() error     { r.events = append(r.events, "["); return nil }
func (r *recorder) EndArray() error       { r.events = append(r.events, "]"); return nil }
func (r *recorder) Name(n string) error   { r.events = append(r.events, "name:"+n); return nil }
func (r *recorder) Index(i int) error     { r.events = append(r.events, "index"); return nil }
func (r *recorder) Value(*doc.Node) error { r.events = append(r.events, "value"); return nil }

func TestObserverEvents(t *testing.T) {
	n := doc.FromMap(map[string]*doc.Node{
		"a": doc.FromSlice([]*doc.Node{doc.FromInt(1), doc.FromInt(2)}),
	})
	d, err := Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	r := &recorder{}
	if err := NewDecoder(bytes.NewReader(d)).Decode(r); err != nil {
		t.Fatal(err)
	}
	want := []string{"{", "name:a", "[", "index", "value", "index", "value", "]", "}"}
	if len(r.events) != len(want) {
		t.Fatalf("got %v", r.events)
	}
	for i := range want {
		if r.events[i] != want[i] {
			t.Errorf("event %d: got %s want %s", i, r.events[i], want[i])
		}
	}
}

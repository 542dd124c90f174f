package doc

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"
)

func TestMappingOverwrite(t *testing.T) {
	n := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
	})
	if n.Size() != 1 {
		t.Fatalf("size %d", n.Size())
	}
	v, err := n.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(v, FromInt(2)) {
		t.Errorf("got %d", v.Int64)
	}
}

func TestMappingSorted(t *testing.T) {
	n := FromKeyVals([]KeyVal{
		{Key: "zeta", Val: Null()},
		{Key: "alpha", Val: Null()},
		{Key: "Beta", Val: Null()},
		{Key: "10", Val: Null()},
		{Key: "2", Val: Null()},
	})
	want := []string{"10", "2", "Beta", "alpha", "zeta"}
	if !slices.Equal(n.Fields, want) {
		t.Errorf("got %v want %v", n.Fields, want)
	}
	if err := n.Set("b", FromBool(true)); err != nil {
		t.Fatal(err)
	}
	if !slices.IsSorted(n.Fields) {
		t.Errorf("unsorted after Set: %v", n.Fields)
	}
}

func TestGetAndField(t *testing.T) {
	n := Object()
	if _, err := n.Get("missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
	if n.Size() != 0 {
		t.Errorf("Get modified node")
	}
	child, err := n.Field("missing")
	if err != nil {
		t.Fatal(err)
	}
	if !child.IsObject() || !child.Empty() {
		t.Errorf("expected empty object, got %s", child.Type)
	}
	if n.Size() != 1 {
		t.Errorf("Field did not insert")
	}
	if err := child.Set("x", FromInt(1)); err != nil {
		t.Fatal(err)
	}
	got, err := n.Get("missing")
	if err != nil {
		t.Fatal(err)
	}
	if got.Size() != 1 {
		t.Errorf("Field returned a copy")
	}
	if _, err := FromInt(1).Get("a"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}
	if _, err := FromInt(1).Field("a"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestIndex(t *testing.T) {
	a := FromSlice([]*Node{FromInt(1), FromString("x"), FromInt(1)})
	v, err := a.Index(1)
	if err != nil {
		t.Fatal(err)
	}
	if v.String != "x" {
		t.Errorf("got %q", v.String)
	}
	for _, i := range []int{-1, 3, 100} {
		if _, err := a.Index(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Index(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
		if err := a.SetIndex(i, Null()); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SetIndex(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
	if a.Size() != 3 {
		t.Errorf("SetIndex extended array to %d", a.Size())
	}
	if err := a.SetIndex(2, FromBool(false)); err != nil {
		t.Fatal(err)
	}
	if err := a.Append(Null()); err != nil {
		t.Fatal(err)
	}
	if a.Size() != 4 || !a.Values[2].IsBoolean() || !a.Values[3].IsNull() {
		t.Errorf("unexpected array %v", ToAny(a))
	}
}

func TestDelete(t *testing.T) {
	n := FromMap(map[string]*Node{"a": FromInt(1), "b": FromInt(2)})
	ok, err := n.Delete("a")
	if err != nil || !ok {
		t.Fatalf("delete a: %v %v", ok, err)
	}
	ok, err = n.Delete("a")
	if err != nil || ok {
		t.Fatalf("second delete a: %v %v", ok, err)
	}
	if n.Has("a") || !n.Has("b") {
		t.Errorf("fields %v", n.Fields)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		n    *Node
		tag  Tag
		pred func(*Node) bool
	}{
		{Null(), NullTag, (*Node).IsNull},
		{FromBool(true), BooleanTag, (*Node).IsBoolean},
		{FromInt(42), Int32Tag, (*Node).IsInteger},
		{FromInt(math.MaxInt32 + 1), Int64Tag, (*Node).IsInteger},
		{FromInt(math.MinInt64), Int64Tag, (*Node).IsInteger},
		{FromFloat(1.5), NumberTag, (*Node).IsNumber},
		{FromString("s"), StringTag, (*Node).IsString},
		{FromMillis(0), DateTag, (*Node).IsTimestamp},
		{Object(), ObjectTag, (*Node).IsObject},
		{Array(), ArrayTag, (*Node).IsArray},
	}
	for _, tt := range tests {
		if got := tt.n.Tag(); got != tt.tag {
			t.Errorf("%s: tag %s want %s", tt.n.Type, got, tt.tag)
		}
		if !tt.pred(tt.n) {
			t.Errorf("%s: predicate false", tt.n.Type)
		}
	}
	if FromInt(1).IsNumber() {
		t.Error("integer reports IsNumber")
	}
	if FromFloat(1).IsInteger() {
		t.Error("number reports IsInteger")
	}
}

func TestEmptyIsNotNull(t *testing.T) {
	if Equal(Object(), Null()) || Equal(Array(), Null()) || Equal(Object(), Array()) {
		t.Error("empty container equals null")
	}
	if !Object().Empty() || Null().Empty() {
		t.Error("Empty")
	}
}

func TestTypedExtraction(t *testing.T) {
	if _, err := FromInt(1).AsFloat(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AsFloat on int: %v", err)
	}
	if _, err := FromFloat(1).AsInt(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AsInt on float: %v", err)
	}
	if _, err := FromString("1").AsBool(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AsBool on string: %v", err)
	}
	if _, err := FromInt(1).AsTime(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AsTime on int: %v", err)
	}
	now := time.Date(2024, 2, 29, 12, 30, 15, 123_456_789, time.UTC)
	got, err := FromTime(now).AsTime()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(now.Truncate(time.Millisecond)) {
		t.Errorf("got %s", got)
	}
	s, err := FromString("hi").AsString()
	if err != nil || s != "hi" {
		t.Errorf("AsString: %q %v", s, err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromMap(map[string]*Node{
		"a": FromSlice([]*Node{FromInt(1)}),
	})
	c := orig.Clone()
	a, _ := c.Get("a")
	a.Append(FromInt(2))
	a.Values[0].Int64 = 9
	oa, _ := orig.Get("a")
	if oa.Size() != 1 || oa.Values[0].Int64 != 1 {
		t.Errorf("clone shares children with original")
	}
}

func TestVisit(t *testing.T) {
	n := FromMap(map[string]*Node{
		"a": FromSlice([]*Node{FromInt(1), FromInt(2)}),
		"b": Null(),
	})
	pre, post := 0, 0
	err := n.Visit(func(_ *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 5 || post != 5 {
		t.Errorf("pre %d post %d", pre, post)
	}
}

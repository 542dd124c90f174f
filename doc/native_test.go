package doc

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestToAny(t *testing.T) {
	n := FromMap(map[string]*Node{
		"i":    FromInt(1),
		"f":    FromFloat(2.5),
		"s":    FromString("x"),
		"b":    FromBool(true),
		"z":    Null(),
		"d":    FromMillis(1000),
		"list": FromSlice([]*Node{FromInt(1), Object()}),
	})
	want := map[string]any{
		"i":    int64(1),
		"f":    2.5,
		"s":    "x",
		"b":    true,
		"z":    nil,
		"d":    time.Unix(1, 0).UTC(),
		"list": []any{int64(1), map[string]any{}},
	}
	if diff := cmp.Diff(want, ToAny(n)); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAny(t *testing.T) {
	type named map[string]string
	in := map[string]any{
		"u8":    uint8(3),
		"i32":   int32(-4),
		"f32":   float32(0.5),
		"named": named{"k": "v"},
		"ints":  []int{1, 2},
		"ptr":   (*int)(nil),
		"when":  time.UnixMilli(5).UTC(),
	}
	n, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	want := FromMap(map[string]*Node{
		"u8":    FromInt(3),
		"i32":   FromInt(-4),
		"f32":   FromFloat(0.5),
		"named": FromMap(map[string]*Node{"k": FromString("v")}),
		"ints":  FromSlice([]*Node{FromInt(1), FromInt(2)}),
		"ptr":   Null(),
		"when":  FromMillis(5),
	})
	if !Equal(n, want) {
		t.Errorf("got %v", ToAny(n))
	}
	back, err := FromAny(ToAny(want))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(back, want) {
		t.Errorf("round trip through ToAny: %v", ToAny(back))
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	tests := []any{
		uint64(math.MaxUint64),
		map[int]any{1: 2},
		make(chan int),
		[]any{func() {}},
	}
	for _, v := range tests {
		if _, err := FromAny(v); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%T: expected ErrUnsupported, got %v", v, err)
		}
	}
}

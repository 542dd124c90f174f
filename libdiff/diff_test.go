package libdiff

import (
	"strings"
	"testing"

	"github.com/signadot/docwire/doc"
	"github.com/signadot/docwire/json"
	"github.com/signadot/docwire/patch"
)

func mustJSON(t *testing.T, s string) *doc.Node {
	t.Helper()
	n, err := json.Unmarshal([]byte(s))
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	return n
}

func TestDiffApplies(t *testing.T) {
	tests := []struct {
		from, to string
	}{
		{`{"a":1}`, `{"a":1}`},
		{`{"a":1}`, `{"a":2}`},
		{`{"a":1}`, `{"a":1.0}`},
		{`{"a":1,"b":2}`, `{"b":2,"c":3}`},
		{`{"a/b":1,"c~d":2}`, `{"a/b":3}`},
		{`{"a":[1,2,3]}`, `{"a":[1,3]}`},
		{`{"a":[1,2,3]}`, `{"a":[0,1,2,3,4]}`},
		{`{"a":[1,2,3]}`, `{"a":[3,2,1]}`},
		{`{"a":[1,"x",{"k":1},[2]]}`, `{"a":["x",{"k":2},[2,3],true]}`},
		{`{"a":[]}`, `{"a":[{"b":null}]}`},
		{`{"a":[1,2,3,4,5]}`, `{"a":["a","b"]}`},
		{`{"a":{"b":{"c":[1,{"d":"e"}]}}}`, `{"a":{"b":{"c":[1,{"d":"f"}],"x":[]}}}`},
		{`{"a":"x"}`, `{"a":{"x":1}}`},
		{`[1,2,3]`, `[2,3,4]`},
	}
	for _, tt := range tests {
		from, to := mustJSON(t, tt.from), mustJSON(t, tt.to)
		ops := Diff(from, to)
		got, err := patch.Apply(from, ops)
		if err != nil {
			t.Errorf("%s -> %s: %v (ops %v)", tt.from, tt.to, err, doc.ToAny(ops))
			continue
		}
		if !doc.Equal(got, to) {
			t.Errorf("%s -> %s: got %v with ops %v", tt.from, tt.to, doc.ToAny(got), doc.ToAny(ops))
		}
		if !doc.Equal(from, mustJSON(t, tt.from)) {
			t.Errorf("%s: input modified", tt.from)
		}
	}
}

func TestDiffOps(t *testing.T) {
	tests := []struct {
		from, to, want string
	}{
		{`{"a":1}`, `{"a":1}`, `[]`},
		{`{"a":1}`, `{}`, `[{"op":"remove","path":"/a"}]`},
		{`{}`, `{"a/b":1}`, `[{"op":"add","path":"/a~1b","value":1}]`},
		{`{"a":[1,2,3]}`, `{"a":[1,3]}`, `[{"op":"remove","path":"/a/1"}]`},
		{`{"a":[1,3]}`, `{"a":[1,2,3]}`, `[{"op":"add","path":"/a/1","value":2}]`},
		{`{"a":[{"x":1}]}`, `{"a":[{"x":2}]}`, `[{"op":"replace","path":"/a/0/x","value":2}]`},
	}
	for _, tt := range tests {
		got := Diff(mustJSON(t, tt.from), mustJSON(t, tt.to))
		if want := mustJSON(t, tt.want); !doc.Equal(got, want) {
			t.Errorf("%s -> %s: got %v", tt.from, tt.to, doc.ToAny(got))
		}
	}
}

func TestPaths(t *testing.T) {
	if got := FieldPath("/a", "b/c~d"); got != "/a/b~1c~0d" {
		t.Errorf("got %s", got)
	}
	if got := IndexPath("", 3); got != "/3" {
		t.Errorf("got %s", got)
	}
}

func TestLines(t *testing.T) {
	out, err := Lines(mustJSON(t, `{"a":1,"b":2}`), mustJSON(t, `{"a":1,"b":3}`), false)
	if err != nil {
		t.Fatal(err)
	}
	want := " {\n   \"a\": 1,\n-  \"b\": 2\n+  \"b\": 3\n }\n"
	if out != want {
		t.Errorf("got\n%s", out)
	}
	same, err := Lines(mustJSON(t, `[1]`), mustJSON(t, `[1]`), false)
	if err != nil {
		t.Fatal(err)
	}
	if strings.ContainsAny(same[:1], "+-") {
		t.Errorf("equal documents: %q", same)
	}
}

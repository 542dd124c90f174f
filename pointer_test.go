package docwire

import (
	"errors"
	"testing"

	"github.com/signadot/docwire/doc"
	"github.com/signadot/docwire/encode"
)

type pointerTest struct {
	Path string
	Doc  string
	Res  string
}

var pointerTests = []pointerTest{
	{Path: "", Doc: `null`, Res: `null`},
	{Path: "/f", Doc: `{"f":1}`, Res: `1`},
	{Path: "/0", Doc: `[1,2,3]`, Res: `1`},
	{Path: "", Doc: `[1,2,3]`, Res: `[1,2,3]`},
	{Path: "/a/1/b", Doc: `{"a":[0,{"b":"x"}]}`, Res: `"x"`},
	{Path: "/a~1b/m~0n", Doc: `{"a/b":{"m~n":true}}`, Res: `true`},
	{Path: "/", Doc: `{"":7}`, Res: `7`},
}

func TestGet(t *testing.T) {
	for _, tt := range pointerTests {
		got, err := Get(mustJSON(t, tt.Doc), tt.Path)
		if err != nil {
			t.Errorf("%q on %s: %v", tt.Path, tt.Doc, err)
			continue
		}
		if s := encode.MustString(got); s != tt.Res {
			t.Errorf("%q on %s: got %s want %s", tt.Path, tt.Doc, s, tt.Res)
		}
	}
}

func TestGetErrors(t *testing.T) {
	n := mustJSON(t, `{"a":[1,2],"s":"x"}`)
	tests := []struct {
		path string
		want error
	}{
		{"a", doc.ErrMalformed},
		{"/b", doc.ErrKeyNotFound},
		{"/a/2", doc.ErrIndexOutOfRange},
		{"/a/01", doc.ErrMalformed},
		{"/a/-", doc.ErrMalformed},
		{"/s/0", doc.ErrTypeMismatch},
	}
	for _, tt := range tests {
		if _, err := Get(n, tt.path); !errors.Is(err, tt.want) {
			t.Errorf("%q: got %v want %v", tt.path, err, tt.want)
		}
	}
}

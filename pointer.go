package docwire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/docwire/doc"
)

// Get resolves the RFC 6901 JSON Pointer ptr against n. The empty pointer
// is n itself.
func Get(n *doc.Node, ptr string) (*doc.Node, error) {
	if ptr == "" {
		return n, nil
	}
	if ptr[0] != '/' {
		return nil, fmt.Errorf("%w: pointer %q does not start with '/'", doc.ErrMalformed, ptr)
	}
	cur := n
	for _, tok := range strings.Split(ptr[1:], "/") {
		tok = strings.ReplaceAll(tok, "~1", "/")
		tok = strings.ReplaceAll(tok, "~0", "~")
		var err error
		switch cur.Type {
		case doc.ObjectType:
			cur, err = cur.Get(tok)
		case doc.ArrayType:
			i, perr := arrayIndex(tok)
			if perr != nil {
				return nil, fmt.Errorf("%w: pointer %q: %w", doc.ErrMalformed, ptr, perr)
			}
			cur, err = cur.Index(i)
		default:
			err = fmt.Errorf("%w: %s has no children", doc.ErrTypeMismatch, cur.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("pointer %q: %w", ptr, err)
		}
	}
	return cur, nil
}

// arrayIndex parses a pointer array index: decimal digits without leading
// zeros.
func arrayIndex(tok string) (int, error) {
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return 0, fmt.Errorf("bad index %q", tok)
	}
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("bad index %q", tok)
		}
	}
	return strconv.Atoi(tok)
}

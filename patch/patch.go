// Package patch applies RFC 6902 JSON Patch and RFC 7386 JSON Merge Patch
// documents to doc.Node trees using github.com/evanphx/json-patch.
//
// Trees cross into the patch library as JSON text, so the integer/number
// distinction survives but dates come back as integer milliseconds.
package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/docwire/debug"
	"github.com/signadot/docwire/doc"
	"github.com/signadot/docwire/json"
)

// Apply applies the JSON Patch ops, an array of operation objects, to n and
// returns the patched tree. n is not modified.
func Apply(n, ops *doc.Node) (*doc.Node, error) {
	if !ops.IsArray() {
		return nil, fmt.Errorf("%w: patch: operations must be an array, got %s", doc.ErrTypeMismatch, ops.Type)
	}
	p, err := json.Marshal(ops)
	if err != nil {
		return nil, err
	}
	return ApplyJSON(n, p)
}

// ApplyJSON is like Apply with the operations given as JSON text.
func ApplyJSON(n *doc.Node, ops []byte) (*doc.Node, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: patch: %w", doc.ErrMalformed, err)
	}
	d, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("applying %d ops to %v\n", len(p), n)
	}
	out, err := p.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	return json.Unmarshal(out)
}

// Merge applies the merge patch mp to n.
func Merge(n, mp *doc.Node) (*doc.Node, error) {
	d, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	m, err := json.Marshal(mp)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merging %v into %v\n", mp, n)
	}
	out, err := jsonpatch.MergePatch(d, m)
	if err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	return json.Unmarshal(out)
}

// MergeDiff returns a merge patch which turns from into to. Both must be
// objects.
func MergeDiff(from, to *doc.Node) (*doc.Node, error) {
	if !from.IsObject() || !to.IsObject() {
		return nil, fmt.Errorf("%w: patch: merge diff of %s and %s", doc.ErrTypeMismatch, from.Type, to.Type)
	}
	a, err := json.Marshal(from)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(to)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	return json.Unmarshal(out)
}

// Equal reports whether a and b are equal as JSON documents.
func Equal(a, b *doc.Node) bool {
	x, err := json.Marshal(a)
	if err != nil {
		return false
	}
	y, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return jsonpatch.Equal(x, y)
}

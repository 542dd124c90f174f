package json

import (
	"fmt"

	"github.com/signadot/docwire/doc"
)

// SyntaxError describes a grammar violation. Line and Col are 1 based,
// Col counting runes; Offset counts bytes.
type SyntaxError struct {
	Msg    string
	Offset int64
	Line   int
	Col    int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("json: %s at %d:%d (offset %d)", e.Msg, e.Line, e.Col, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return doc.ErrMalformed
}

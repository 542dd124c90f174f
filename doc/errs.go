package doc

import "errors"

var (
	ErrMalformed       = errors.New("malformed input")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrKeyNotFound     = errors.New("key not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnsupported     = errors.New("unsupported")
)

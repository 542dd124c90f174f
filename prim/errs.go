package prim

import "errors"

var (
	ErrTruncated = errors.New("truncated primitive")
	ErrOverflow  = errors.New("varint overflows 64 bits")
	ErrBadBool   = errors.New("bad boolean byte")
	ErrTooLong   = errors.New("string length exceeds limit")
	ErrNotASCII  = errors.New("terminated strings must be non-empty ascii")
)

package prim

import (
	"fmt"
	"io"
)

const (
	// MaxLen is the longest encoding of a 64-bit integer.
	MaxLen = 10

	endBit    = 0x80
	groupMask = 0x7f
)

// UintLen returns the number of bytes AppendUint uses for v.
func UintLen(v uint64) int {
	for n := 1; n < MaxLen; n++ {
		if v < 1<<(7*n) {
			return n
		}
	}
	return MaxLen
}

// IntLen returns the number of bytes AppendInt uses for v: n bytes hold
// exactly the values in [-2^(7n-1), 2^(7n-1)).
func IntLen(v int64) int {
	for n := 1; n < MaxLen; n++ {
		lim := int64(1) << (7*n - 1)
		if v >= -lim && v < lim {
			return n
		}
	}
	return MaxLen
}

func AppendUint(dst []byte, v uint64) []byte {
	n := UintLen(v)
	for i := n - 1; i > 0; i-- {
		dst = append(dst, byte(v>>(7*i))&groupMask)
	}
	return append(dst, byte(v)&groupMask|endBit)
}

func AppendInt(dst []byte, v int64) []byte {
	n := IntLen(v)
	for i := n - 1; i > 0; i-- {
		dst = append(dst, byte(v>>(7*i))&groupMask)
	}
	return append(dst, byte(v)&groupMask|endBit)
}

// readGroups reads 7-bit groups up to and including the one with the end
// bit set.
func readGroups(r io.ByteReader) (uint64, int, byte, error) {
	var (
		u     uint64
		first byte
	)
	for n := 1; ; n++ {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, 0, 0, fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		if n > MaxLen {
			return 0, 0, 0, ErrOverflow
		}
		if n == 1 {
			first = c & groupMask
		}
		u = u<<7 | uint64(c&groupMask)
		if c&endBit != 0 {
			return u, n, first, nil
		}
	}
}

func ReadUint(r io.ByteReader) (uint64, error) {
	u, n, first, err := readGroups(r)
	if err != nil {
		return 0, err
	}
	if n == MaxLen && first > 1 {
		return 0, ErrOverflow
	}
	return u, nil
}

func ReadInt(r io.ByteReader) (int64, error) {
	u, n, first, err := readGroups(r)
	if err != nil {
		return 0, err
	}
	if n == MaxLen {
		if first != 0 && first != groupMask {
			return 0, ErrOverflow
		}
		return int64(u), nil
	}
	shift := 64 - 7*n
	return int64(u<<shift) >> shift, nil
}

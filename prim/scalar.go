package prim

import (
	"fmt"
	"io"
	"math"
)

// MaxStringLen bounds the length prefix accepted by ReadString.
const MaxStringLen = 1 << 30

func AppendFloat(dst []byte, f float64) []byte {
	return AppendUint(dst, math.Float64bits(f))
}

func ReadFloat(r io.ByteReader) (float64, error) {
	u, err := ReadUint(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

func ReadBool(r io.ByteReader) (bool, error) {
	c, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return false, fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	switch c {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: 0x%02x", ErrBadBool, c)
	}
}

// AppendTime appends a timestamp given in milliseconds since the Unix
// epoch.
func AppendTime(dst []byte, ms int64) []byte {
	return AppendInt(dst, ms)
}

func ReadTime(r io.ByteReader) (int64, error) {
	return ReadInt(r)
}

// AppendTermString appends s with the top bit of its last byte set.
func AppendTermString(dst []byte, s string) ([]byte, error) {
	if s == "" {
		return dst, ErrNotASCII
	}
	for i := 0; i < len(s); i++ {
		if s[i]&endBit != 0 {
			return dst, fmt.Errorf("%w: byte 0x%02x at %d", ErrNotASCII, s[i], i)
		}
	}
	dst = append(dst, s[:len(s)-1]...)
	return append(dst, s[len(s)-1]|endBit), nil
}

func ReadTermString(r io.ByteReader) (string, error) {
	var buf []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		buf = append(buf, c&groupMask)
		if c&endBit != 0 {
			return string(buf), nil
		}
	}
}

// AppendString appends the length of s followed by its bytes.
func AppendString(dst []byte, s string) []byte {
	dst = AppendUint(dst, uint64(len(s)))
	return append(dst, s...)
}

func ReadString(r io.ByteReader) (string, error) {
	n, err := ReadUint(r)
	if err != nil {
		return "", err
	}
	if n > MaxStringLen {
		return "", fmt.Errorf("%w: %d", ErrTooLong, n)
	}
	buf := make([]byte, 0, min(n, 4096))
	for range n {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		buf = append(buf, c)
	}
	return string(buf), nil
}

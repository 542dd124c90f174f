package json

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/signadot/docwire/doc"
)

const hexDigits = "0123456789abcdef"

// AppendQuote appends s as a JSON string literal. Invalid UTF-8 is
// replaced by U+FFFD.
func AppendQuote(d []byte, s string) []byte {
	d = append(d, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			i++
			switch c {
			case '"':
				d = append(d, '\\', '"')
			case '\\':
				d = append(d, '\\', '\\')
			case '\b':
				d = append(d, '\\', 'b')
			case '\f':
				d = append(d, '\\', 'f')
			case '\n':
				d = append(d, '\\', 'n')
			case '\r':
				d = append(d, '\\', 'r')
			case '\t':
				d = append(d, '\\', 't')
			default:
				if c < 0x20 {
					d = append(d, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
				} else {
					d = append(d, c)
				}
			}
			continue
		}
		r, sz := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && sz == 1 {
			d = utf8.AppendRune(d, utf8.RuneError)
		} else {
			d = append(d, s[i:i+sz]...)
		}
		i += sz
	}
	return append(d, '"')
}

func Quote(s string) string {
	return string(AppendQuote(nil, s))
}

// AppendFloat appends f in a form that always reads back as a number: a
// decimal point is present even for integral values.
func AppendFloat(d []byte, f float64) ([]byte, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, &UnsupportedValueError{Value: f}
	}
	abs := math.Abs(f)
	fmtc := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtc = 'e'
	}
	start := len(d)
	d = strconv.AppendFloat(d, f, fmtc, -1, 64)
	if fmtc == 'e' {
		// 1e-07 -> 1e-7
		n := len(d)
		if n-start >= 4 && d[n-4] == 'e' && d[n-3] == '-' && d[n-2] == '0' {
			d[n-2] = d[n-1]
			d = d[:n-1]
		}
	}
	mant := d[start:]
	for i, c := range mant {
		switch c {
		case '.':
			return d, nil
		case 'e':
			exp := string(mant[i:])
			d = append(d[:start+i], ".0"...)
			return append(d, exp...), nil
		}
	}
	return append(d, ".0"...), nil
}

type UnsupportedValueError struct {
	Value float64
}

func (e *UnsupportedValueError) Error() string {
	return "json: unsupported value " + strconv.FormatFloat(e.Value, 'g', -1, 64)
}

func (e *UnsupportedValueError) Unwrap() error {
	return doc.ErrUnsupported
}

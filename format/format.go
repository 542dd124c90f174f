package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	JSONFormat Format = iota
	BSONFormat
	FSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"b":    BSONFormat,
		"bson": BSONFormat,
		"f":    FSONFormat,
		"fson": FSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case BSONFormat:
		return []byte("bson"), nil
	case FSONFormat:
		return []byte("fson"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsBSON() bool { return f == BSONFormat }
func (f Format) IsFSON() bool { return f == FSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// IsBinary reports whether documents in f are not text.
func (f Format) IsBinary() bool {
	return f == BSONFormat || f == FSONFormat
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case BSONFormat:
		return ".bson"
	case FSONFormat:
		return ".fson"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// FromSuffix returns the format whose Suffix is s.
func FromSuffix(s string) (Format, error) {
	for _, f := range AllFormats() {
		if f.Suffix() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: no format for suffix %q", ErrBadFormat, s)
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, BSONFormat, FSONFormat, YAMLFormat}
}

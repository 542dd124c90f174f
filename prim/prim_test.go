package prim

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestUintLen(t *testing.T) {
	for n := 1; n < MaxLen; n++ {
		lim := uint64(1) << (7 * n)
		if got := UintLen(lim - 1); got != n {
			t.Errorf("UintLen(2^%d-1) = %d, want %d", 7*n, got, n)
		}
		if got := UintLen(lim); got != n+1 {
			t.Errorf("UintLen(2^%d) = %d, want %d", 7*n, got, n+1)
		}
	}
	if got := UintLen(math.MaxUint64); got != MaxLen {
		t.Errorf("UintLen(max) = %d", got)
	}
}

func TestIntLen(t *testing.T) {
	if IntLen(-64) != 1 || IntLen(63) != 1 || IntLen(64) != 2 || IntLen(-65) != 2 {
		t.Error("one byte range is [-64, 64)")
	}
	for n := 1; n < MaxLen; n++ {
		lim := int64(1) << (7*n - 1)
		for _, tc := range []struct {
			v    int64
			want int
		}{
			{-lim, n},
			{lim - 1, n},
			{lim, n + 1},
			{-lim - 1, n + 1},
		} {
			if got := IntLen(tc.v); got != tc.want {
				t.Errorf("IntLen(%d) = %d, want %d", tc.v, got, tc.want)
			}
		}
	}
	if IntLen(math.MinInt64) != MaxLen || IntLen(math.MaxInt64) != MaxLen {
		t.Error("extremes need MaxLen bytes")
	}
}

func TestEncodingBytes(t *testing.T) {
	tests := []struct {
		name string
		got  []byte
		want []byte
	}{
		{"uint 0", AppendUint(nil, 0), []byte{0x80}},
		{"uint 5", AppendUint(nil, 5), []byte{0x85}},
		{"uint 127", AppendUint(nil, 127), []byte{0xff}},
		{"uint 128", AppendUint(nil, 128), []byte{0x01, 0x80}},
		{"uint 300", AppendUint(nil, 300), []byte{0x02, 0xac}},
		{"int -1", AppendInt(nil, -1), []byte{0xff}},
		{"int -64", AppendInt(nil, -64), []byte{0xc0}},
		{"int 63", AppendInt(nil, 63), []byte{0xbf}},
		{"int 64", AppendInt(nil, 64), []byte{0x00, 0xc0}},
		{"int -65", AppendInt(nil, -65), []byte{0x7f, 0xbf}},
		{"bool true", AppendBool(nil, true), []byte{0x01}},
		{"bool false", AppendBool(nil, false), []byte{0x00}},
	}
	for _, tt := range tests {
		if !bytes.Equal(tt.got, tt.want) {
			t.Errorf("%s: got % x want % x", tt.name, tt.got, tt.want)
		}
	}
}

func TestOnlyLastByteTerminates(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 1 << 20, -(1 << 40), math.MaxInt64, math.MinInt64} {
		d := AppendInt(nil, v)
		for i, c := range d {
			last := i == len(d)-1
			if (c&0x80 != 0) != last {
				t.Errorf("%d: byte %d = 0x%02x", v, i, c)
			}
		}
	}
}

func TestIntRoundTrip(t *testing.T) {
	vals := []int64{
		0, 1, -1, 63, 64, -64, -65, 127, 128, -128,
		1 << 55, -(1 << 55), 1<<55 - 1, -(1 << 55) - 1,
		36028797018963968, -36028797018963968,
		1 << 62, -(1 << 62), 1<<62 - 1, -(1 << 62) - 1,
		math.MaxInt32, math.MinInt32,
		math.MaxInt64, math.MinInt64,
	}
	for _, v := range vals {
		d := AppendInt(nil, v)
		if len(d) != IntLen(v) {
			t.Errorf("%d: len %d want %d", v, len(d), IntLen(v))
		}
		r := bytes.NewReader(d)
		got, err := ReadInt(r)
		if err != nil {
			t.Fatalf("%d: %v", v, err)
		}
		if got != v {
			t.Errorf("got %d want %d (% x)", got, v, d)
		}
		if r.Len() != 0 {
			t.Errorf("%d: %d bytes left", v, r.Len())
		}
	}
}

func TestUintRoundTrip(t *testing.T) {
	vals := []uint64{0, 1, 127, 128, 1<<14 - 1, 1 << 14, 1 << 56, 1<<63 - 1, 1 << 63, math.MaxUint64}
	for _, v := range vals {
		got, err := ReadUint(bytes.NewReader(AppendUint(nil, v)))
		if err != nil {
			t.Fatalf("%d: %v", v, err)
		}
		if got != v {
			t.Errorf("got %d want %d", got, v)
		}
	}
}

func TestFloatAndTime(t *testing.T) {
	for _, f := range []float64{0, -0.0, 1.5, -2.25e300, math.Inf(1), math.SmallestNonzeroFloat64} {
		got, err := ReadFloat(bytes.NewReader(AppendFloat(nil, f)))
		if err != nil {
			t.Fatal(err)
		}
		if math.Float64bits(got) != math.Float64bits(f) {
			t.Errorf("got %v want %v", got, f)
		}
	}
	nan, err := ReadFloat(bytes.NewReader(AppendFloat(nil, math.NaN())))
	if err != nil || !math.IsNaN(nan) {
		t.Errorf("NaN: %v %v", nan, err)
	}
	ms := int64(-62135596800000)
	got, err := ReadTime(bytes.NewReader(AppendTime(nil, ms)))
	if err != nil || got != ms {
		t.Errorf("time: %d %v", got, err)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		read func(*bytes.Reader) error
		want error
	}{
		{"empty uint", nil, func(r *bytes.Reader) error { _, err := ReadUint(r); return err }, ErrTruncated},
		{"unterminated int", []byte{0x01, 0x02}, func(r *bytes.Reader) error { _, err := ReadInt(r); return err }, ErrTruncated},
		{"eleven groups", bytes.Repeat([]byte{0}, 11), func(r *bytes.Reader) error { _, err := ReadUint(r); return err }, ErrOverflow},
		{"uint 65 bits", append([]byte{0x02}, append(bytes.Repeat([]byte{0}, 8), 0x80)...), func(r *bytes.Reader) error { _, err := ReadUint(r); return err }, ErrOverflow},
		{"int bad sign group", append([]byte{0x05}, append(bytes.Repeat([]byte{0}, 8), 0x80)...), func(r *bytes.Reader) error { _, err := ReadInt(r); return err }, ErrOverflow},
		{"bool 2", []byte{2}, func(r *bytes.Reader) error { _, err := ReadBool(r); return err }, ErrBadBool},
		{"bool empty", nil, func(r *bytes.Reader) error { _, err := ReadBool(r); return err }, ErrTruncated},
		{"term string", []byte{'a', 'b'}, func(r *bytes.Reader) error { _, err := ReadTermString(r); return err }, ErrTruncated},
		{"string short", []byte{0x85, 'a'}, func(r *bytes.Reader) error { _, err := ReadString(r); return err }, ErrTruncated},
	}
	for _, tt := range tests {
		if err := tt.read(bytes.NewReader(tt.in)); !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v want %v", tt.name, err, tt.want)
		}
	}
}

func TestTermString(t *testing.T) {
	d, err := AppendTermString(nil, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d, []byte{'a', 'b', 'c' | 0x80}) {
		t.Errorf("got % x", d)
	}
	s, err := ReadTermString(bytes.NewReader(d))
	if err != nil || s != "abc" {
		t.Errorf("got %q %v", s, err)
	}
	for _, bad := range []string{"", "héllo"} {
		if _, err := AppendTermString(nil, bad); !errors.Is(err, ErrNotASCII) {
			t.Errorf("%q: %v", bad, err)
		}
	}
}

func TestString(t *testing.T) {
	for _, s := range []string{"", "a", "héllo wörld", "\x00\xff", string(bytes.Repeat([]byte("x"), 300))} {
		d := AppendString(nil, s)
		r := bytes.NewReader(d)
		got, err := ReadString(r)
		if err != nil {
			t.Fatal(err)
		}
		if got != s || r.Len() != 0 {
			t.Errorf("got %q want %q", got, s)
		}
	}
	huge := AppendUint(nil, MaxStringLen+1)
	if _, err := ReadString(bytes.NewReader(huge)); !errors.Is(err, ErrTooLong) {
		t.Errorf("huge length: %v", err)
	}
}

package docwire

import (
	"errors"
	"io"

	"github.com/signadot/docwire/encode"
	"github.com/signadot/docwire/format"
	"github.com/signadot/docwire/parse"
)

// Convert reads every document in r as from and writes it to w in the
// format given by opts. Text formats get a newline after each document.
// It returns the number of documents converted.
func Convert(w io.Writer, r io.Reader, from format.Format, opts ...encode.EncodeOption) (int, error) {
	dec, err := parse.NewDecoder(r, parse.ParseFormat(from))
	if err != nil {
		return 0, err
	}
	to := encode.FormatFromOpts(opts...)
	n := 0
	for {
		node, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if to.IsYAML() && n > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return n, err
			}
		}
		if err := encode.Encode(node, w, opts...); err != nil {
			return n, err
		}
		if to.IsJSON() {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return n, err
			}
		}
		n++
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/docwire/doc"
	"github.com/signadot/docwire/encode"
	"github.com/signadot/docwire/format"
	"github.com/signadot/docwire/parse"

	"github.com/scott-cotton/cli"
)

func suffixFormat(path string) (format.Format, bool) {
	ext := filepath.Ext(path)
	if ext == ".yml" {
		ext = ".yaml"
	}
	f, err := format.FromSuffix(ext)
	if err != nil {
		return 0, false
	}
	return f, true
}

func openInput(cc *cli.Context, path string) (io.Reader, func() error, error) {
	if path == "-" {
		return cc.In, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	return f, f.Close, nil
}

// inputs returns the file arguments, or stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// eachDoc calls fn with every document in path.
func eachDoc(cfg *MainConfig, cc *cli.Context, path string, fn func(i int, n *doc.Node) error) error {
	r, closer, err := openInput(cc, path)
	if err != nil {
		return err
	}
	defer closer()
	dec, err := parse.NewDecoder(r, cfg.parseOpts(path)...)
	if err != nil {
		return err
	}
	for i := 0; ; i++ {
		n, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if err := fn(i, n); err != nil {
			return err
		}
	}
}

// getObjFile reads the single document in path.
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*doc.Node, error) {
	r, closer, err := openInput(cc, path)
	if err != nil {
		return nil, err
	}
	defer closer()
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, cfg.parseOpts(path)...)
}

// getish reads a document given on the command line, either inline or
// from a file.
func getish(cfg *MainConfig, s, f bool, cc *cli.Context, arg string) (*doc.Node, error) {
	if s && f {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if f {
		return getObjFile(cfg, cc, arg)
	}
	return parse.Parse([]byte(arg), cfg.parseOpts("")...)
}

// docWriter separates successive output documents the way Convert does.
type docWriter struct {
	cfg *MainConfig
	w   io.Writer
	n   int
}

func (dw *docWriter) write(n *doc.Node) error {
	f := dw.cfg.outFormat()
	if f.IsYAML() && dw.n > 0 {
		if _, err := io.WriteString(dw.w, "---\n"); err != nil {
			return err
		}
	}
	if err := encode.Encode(n, dw.w, dw.cfg.encOpts(dw.w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if f.IsJSON() {
		if _, err := io.WriteString(dw.w, "\n"); err != nil {
			return err
		}
	}
	dw.n++
	return nil
}

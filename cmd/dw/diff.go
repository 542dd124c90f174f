package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/docwire/doc"
	"github.com/signadot/docwire/libdiff"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		from, to = to, from
	}
	differs, err := diffInputs(cfg, cc, from, to)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, from, to *doc.Node) (bool, error) {
	if doc.Equal(from, to) {
		return false, nil
	}
	if cfg.Text {
		s, err := libdiff.Lines(from, to, cfg.colored(cc.Out))
		if err != nil {
			return false, err
		}
		_, err = io.WriteString(cc.Out, s)
		return true, err
	}
	ops := libdiff.Diff(from, to)
	w := &docWriter{cfg: cfg.MainConfig, w: cc.Out}
	return true, w.write(ops)
}

func (cfg *DiffConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

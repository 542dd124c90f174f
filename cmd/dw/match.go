package main

import (
	"fmt"

	"github.com/signadot/docwire"
	"github.com/signadot/docwire/doc"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match object", cli.ErrUsage)
	}
	m, err := getish(cfg.MainConfig, cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding match: %w", err)
	}
	w := &docWriter{cfg: cfg.MainConfig, w: cc.Out}
	for _, file := range inputs(args[1:]) {
		err := eachDoc(cfg.MainConfig, cc, file, func(i int, n *doc.Node) error {
			ok, err := docwire.Match(n, m)
			if err != nil {
				return fmt.Errorf("error matching document %d: %w", i, err)
			}
			if !ok {
				return nil
			}
			if cfg.Trim {
				n = docwire.Trim(m, n)
			}
			return w.write(n)
		})
		if err != nil {
			return fmt.Errorf("error matching %s: %w", file, err)
		}
	}
	if w.n == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

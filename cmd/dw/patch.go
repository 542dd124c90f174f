package main

import (
	"fmt"

	"github.com/signadot/docwire/doc"
	"github.com/signadot/docwire/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch object, and optionally files to which to apply it", cli.ErrUsage)
	}
	p, err := getish(cfg.MainConfig, cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	apply := patch.Apply
	if cfg.Merge {
		apply = patch.Merge
	}
	w := &docWriter{cfg: cfg.MainConfig, w: cc.Out}
	for _, file := range inputs(args[1:]) {
		err := eachDoc(cfg.MainConfig, cc, file, func(i int, n *doc.Node) error {
			res, err := apply(n, p)
			if err != nil {
				return fmt.Errorf("error patching document %d: %w", i, err)
			}
			return w.write(res)
		})
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

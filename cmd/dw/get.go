package main

import (
	"fmt"

	"github.com/signadot/docwire"
	"github.com/signadot/docwire/doc"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a json pointer", cli.ErrUsage)
	}
	ptr := args[0]
	w := &docWriter{cfg: cfg.MainConfig, w: cc.Out}
	for _, file := range inputs(args[1:]) {
		err := eachDoc(cfg.MainConfig, cc, file, func(i int, n *doc.Node) error {
			v, err := docwire.Get(n, ptr)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			return w.write(v)
		})
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", file, ptr, err)
		}
	}
	return nil
}

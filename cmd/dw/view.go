package main

import (
	"fmt"

	"github.com/signadot/docwire/doc"
	"github.com/signadot/docwire/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	// view always renders json
	jsonFmt := format.JSONFormat
	mCfg := *cfg.MainConfig
	mCfg.OutFormat = &jsonFmt
	w := &docWriter{cfg: &mCfg, w: cc.Out}
	for _, file := range inputs(args) {
		if err := eachDoc(&mCfg, cc, file, func(_ int, n *doc.Node) error {
			return w.write(n)
		}); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

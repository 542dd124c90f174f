package main

import (
	"fmt"

	"github.com/signadot/docwire"

	"github.com/scott-cotton/cli"
)

func conv(cfg *ConvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Conv.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range inputs(args) {
		r, closer, err := openInput(cc, file)
		if err != nil {
			return err
		}
		_, err = docwire.Convert(cc.Out, r, cfg.inFormat(file), opts...)
		closer()
		if err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
	}
	return nil
}

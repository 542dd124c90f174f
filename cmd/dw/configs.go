package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/docwire/encode"
	"github.com/signadot/docwire/format"
	"github.com/signadot/docwire/json"
	"github.com/signadot/docwire/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode json with color'"`
	WireOut bool `cli:"name=wire desc='output json in compact format'"`
	Verbose bool `cli:"name=v desc='log decoder events to stderr'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	logger *zap.Logger

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat returns the input format for path. An explicit -I wins, then
// -j/-y, then the file suffix, then JSON.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	switch {
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	if f, ok := suffixFormat(path); ok {
		return f
	}
	return format.JSONFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Y {
		return format.YAMLFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat(path)),
	}
	if l := cfg.getLogger(); l != nil {
		res = append(res, parse.ParseLogger(l))
	}
	return res
}

func (cfg *MainConfig) getLogger() *zap.Logger {
	if !cfg.Verbose {
		return nil
	}
	if cfg.logger != nil {
		return cfg.logger
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return nil
	}
	cfg.logger = l
	return l
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	f := cfg.outFormat()
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
	}
	if !f.IsJSON() {
		return res
	}
	if !cfg.WireOut {
		res = append(res, encode.EncodeIndent(2))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(json.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	file, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(file.Fd()) {
		res = append(res, encode.EncodeColors(json.NewColors()))
	}
	return res
}

type ConvConfig struct {
	*MainConfig

	Conv *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider match a string argument'"`
	File   bool `cli:"name=f desc='consider match a file path'"`
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=text desc='show a line diff of the json text'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='treat the patch as a json merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

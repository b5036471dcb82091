package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/jsonc-format/jsoncfmt/encode"
	"github.com/jsonc-format/jsoncfmt/format"
)

const version = "0.1.0"

type MainConfig struct {
	Strip   bool `cli:"name=s aliases=strip-comments desc='remove comments and trailing commas'"`
	Write   bool `cli:"name=w desc='write result back to source file instead of stdout'"`
	List    bool `cli:"name=l desc='list files whose formatting differs'"`
	Diff    bool `cli:"name=d aliases=diff desc='display diffs instead of rewriting files'"`
	Color   bool `cli:"name=color desc='force colorized output'"`
	Version bool `cli:"name=version desc='print version and exit'"`

	Main *cli.Command
}

func (cfg *MainConfig) formatOpts(w io.Writer) []format.Option {
	var res []format.Option
	if cfg.Strip {
		res = append(res, format.Strip())
	}
	if cfg.useColor(w) {
		res = append(res, format.WithColors(encode.DefaultColors()))
	}
	return res
}

// useColor reports whether output destined for w should be
// colorized: forced by --color, otherwise only when printing to a
// terminal. Output that is written back to files or compared is
// never colorized.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Write || cfg.List || cfg.Diff {
		return false
	}
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

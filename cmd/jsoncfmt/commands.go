package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "jsoncfmt").
		WithSynopsis("jsoncfmt [opts] [files]").
		WithDescription("jsoncfmt formats jsonc (JSON with comments) documents, " +
			"preserving comments, trailing commas, and blank line structure. " +
			"With no files, it reads from standard input.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jsoncfmtMain(cfg, cc, args)
		})
}

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jsonc-format/jsoncfmt/debug"
	"github.com/jsonc-format/jsoncfmt/format"
	"github.com/jsonc-format/jsoncfmt/parse"
	"github.com/jsonc-format/jsoncfmt/token"
)

func jsoncfmtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Version {
		fmt.Fprintf(cc.Out, "jsoncfmt %s\n", version)
		return nil
	}
	if cfg.Color {
		color.NoColor = false
	}
	if len(args) == 0 {
		if cfg.Write || cfg.List {
			return fmt.Errorf("%w: -w and -l require file arguments", cli.ErrUsage)
		}
		return formatStdin(cfg, cc)
	}
	for _, file := range args {
		if err := formatFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func formatStdin(cfg *MainConfig, cc *cli.Context) error {
	src, err := io.ReadAll(cc.In)
	if err != nil {
		return fmt.Errorf("error reading stdin: %w", err)
	}
	res, err := formatSource(cfg, cc.Out, "<stdin>", src)
	if err != nil {
		return err
	}
	if cfg.Diff {
		printDiff(cc.Out, "<stdin>", src, res)
		return nil
	}
	_, err = cc.Out.Write(res)
	return err
}

func formatFile(cfg *MainConfig, cc *cli.Context, file string) error {
	if file == "-" {
		return formatStdin(cfg, cc)
	}
	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	res, err := formatSource(cfg, cc.Out, file, src)
	if err != nil {
		return err
	}
	changed := !bytes.Equal(src, res)
	if cfg.List && changed {
		fmt.Fprintln(cc.Out, file)
	}
	if cfg.Diff && changed {
		printDiff(cc.Out, file, src, res)
	}
	if cfg.Write {
		if !changed {
			return nil
		}
		st, err := os.Stat(file)
		if err != nil {
			return err
		}
		if err := os.WriteFile(file, res, st.Mode().Perm()); err != nil {
			return fmt.Errorf("could not write %q: %w", file, err)
		}
		return nil
	}
	if !cfg.List && !cfg.Diff {
		if _, err := cc.Out.Write(res); err != nil {
			return err
		}
	}
	return nil
}

func formatSource(cfg *MainConfig, w io.Writer, name string, src []byte) ([]byte, error) {
	if debug.Tokens() {
		if toks, err := token.Tokenize(nil, src); err == nil {
			debug.Logf("tokens %s:\n%v", name, toks)
		}
	}
	if debug.Tree() {
		if n, err := parse.Parse(src, parse.ParseStrip(cfg.Strip)); err == nil {
			debug.Logf("tree %s:\n%v", name, n)
		}
	}
	res, err := format.Source(src, cfg.formatOpts(w)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return res, nil
}

func printDiff(w io.Writer, name string, before, after []byte) {
	if bytes.Equal(before, after) {
		return
	}
	fmt.Fprintf(w, "diff %s jsoncfmt/%s\n", name, name)
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(before), string(after), false)
	if !color.NoColor {
		fmt.Fprint(w, dmp.DiffPrettyText(diffs))
		return
	}
	fmt.Fprint(w, dmp.PatchToText(dmp.PatchMake(string(before), diffs)))
}

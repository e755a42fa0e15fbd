package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treebind/treebind/dump"
	"github.com/treebind/treebind/node"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	printer := dump.NewPrinter(cfg.colors(cc.Out))
	for _, file := range inputs(args) {
		n, err := readTree(file)
		if err != nil {
			return err
		}
		spans := node.ScanErrors(n)
		if cfg.Strict && len(spans) > 0 {
			return fmt.Errorf("%s: tree contains %d parse errors", file, len(spans))
		}
		if err := printer.Fprint(cc.Out, n); err != nil {
			return err
		}
		if cfg.Spans {
			for _, sp := range spans {
				fmt.Fprintf(cc.Out, "error at %d:%d-%d:%d\n",
					sp.Start.Row, sp.Start.Column, sp.End.Row, sp.End.Column)
			}
		}
	}
	return nil
}

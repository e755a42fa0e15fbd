package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treebind/treebind/dump"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly 2 arguments", cli.ErrUsage)
	}
	a, err := readTree(args[0])
	if err != nil {
		return err
	}
	b, err := readTree(args[1])
	if err != nil {
		return err
	}
	d := dump.Diff(a, b)
	if d == "" {
		return nil
	}
	fmt.Fprint(cc.Out, d)
	return cli.ExitCodeErr(1)
}

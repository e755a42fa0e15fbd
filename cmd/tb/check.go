package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/treebind/treebind"
	"github.com/treebind/treebind/shape"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Shape == "" {
		return fmt.Errorf("%w: check requires -s <shape-file>", cli.ErrUsage)
	}
	data, err := os.ReadFile(cfg.Shape)
	if err != nil {
		return fmt.Errorf("could not read shape %q: %w", cfg.Shape, err)
	}
	s, err := shape.FromYAML(data)
	if err != nil {
		return fmt.Errorf("shape %s: %w", cfg.Shape, err)
	}
	failed := false
	for _, file := range inputs(args) {
		n, err := readTree(file)
		if err != nil {
			return err
		}
		v, err := treebind.Value(n, s, treebind.CheckErrors(cfg.Strict))
		if err != nil {
			failed = true
			fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
			continue
		}
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding result for %s: %w", file, err)
		}
		cc.Out.Write(out)
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

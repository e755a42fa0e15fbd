package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/treebind/treebind/dump"
	"github.com/treebind/treebind/sexp"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='force colored output'"`
	Strict bool `cli:"name=strict desc='refuse trees containing parse error markers'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) colors(w io.Writer) *dump.Colors {
	if cfg.Color {
		return dump.NewColors()
	}
	return dump.Auto(w)
}

// readTree reads and parses one tree file; "-" means stdin.
func readTree(file string) (*sexp.Node, error) {
	var r io.Reader
	if file == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	n, err := sexp.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", file, err)
	}
	return n, nil
}

// inputs defaults to stdin when no files were given.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

type ViewConfig struct {
	*MainConfig

	Spans bool `cli:"name=spans desc='include parse error spans'"`
	View  *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Shape string `cli:"name=s desc='shape document (YAML file)'"`
	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

// Package treebind decodes concrete syntax trees into typed Go values, driven
// by shape descriptors rather than by inspecting tree content.
//
// The typical entry point is Unmarshal, which derives the descriptor from the
// target type:
//
//	type Root struct {
//	    Name shape.Name `tree:"root"`
//	    A    uint64     `tree:"a"`
//	    B    string     `tree:"b"`
//	}
//
//	var v Root
//	err := treebind.Unmarshal(root, &v)
//
// Decode and Value take an explicit descriptor, for shapes built by hand or
// loaded from YAML. Trees come from any producer implementing node.Node; the
// sitter package adapts tree-sitter, and the sexp package provides a
// self-contained notation for tests and tooling.
package treebind

import (
	"fmt"
	"reflect"

	"github.com/treebind/treebind/debug"
	"github.com/treebind/treebind/decode"
	"github.com/treebind/treebind/node"
	"github.com/treebind/treebind/shape"
)

// Option adjusts a decode call.
type Option func(*config)

type config struct {
	checkErrors bool
	opts        decode.Opts
}

// CheckErrors toggles the strict pre-decode scan for parser error markers.
// When on, a tree containing any marker fails with decode.TreeError before
// decoding begins. Off by default; trusted trees can skip the extra pass.
func CheckErrors(on bool) Option {
	return func(c *config) { c.checkErrors = on }
}

// CopyStrings makes decoded strings independent of the source buffer. By
// default string values are views into it.
func CopyStrings(on bool) Option {
	return func(c *config) { c.opts.CopyStrings = on }
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *config) prescan(n node.Node) error {
	if !c.checkErrors {
		return nil
	}
	spans := node.ScanErrors(n)
	if debug.Scan() {
		debug.Logf("prescan found %d error markers: %s\n", len(spans), debug.JSON(spans))
	}
	if len(spans) > 0 {
		return &decode.TreeError{Spans: spans}
	}
	return nil
}

// Unmarshal decodes n into the value pointed to by v, deriving the shape
// descriptor from v's type via shape.Of.
func Unmarshal(n node.Node, v any, opts ...Option) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("treebind: target must be a non-nil pointer, got %T", v)
	}
	s, err := shape.Of(rv.Type().Elem())
	if err != nil {
		return err
	}
	c := newConfig(opts)
	if err := c.prescan(n); err != nil {
		return err
	}
	return decode.Into(n, s, rv.Elem(), &c.opts)
}

// Decode decodes n against an explicit descriptor into the value pointed to
// by v.
func Decode(n node.Node, s *shape.Shape, v any, opts ...Option) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("treebind: target must be a non-nil pointer, got %T", v)
	}
	c := newConfig(opts)
	if err := c.prescan(n); err != nil {
		return err
	}
	return decode.Into(n, s, rv.Elem(), &c.opts)
}

// Value decodes n against an explicit descriptor into a generic value.
func Value(n node.Node, s *shape.Shape, opts ...Option) (any, error) {
	c := newConfig(opts)
	if err := c.prescan(n); err != nil {
		return nil, err
	}
	return decode.Value(n, s, &c.opts)
}

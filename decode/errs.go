package decode

import (
	"errors"
	"fmt"

	"github.com/treebind/treebind/node"
	"github.com/treebind/treebind/shape"
)

// The error set is closed: every failure the engine can produce is one of the
// types below. Errors are pure data — no logging, no side effects — so tests
// and callers can assert on them directly. The engine fails fast on the first
// error and propagates it unmodified.

// ArityError reports a wrong number of positional children for a tuple,
// option or wrapper payload.
type ArityError struct {
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("child count does not match: expected=%d, actual=%d", e.Expected, e.Actual)
}

// FieldArityError reports a wrong number of tagged children for a named
// field. It is deliberately distinct from ArityError so callers can report
// field context differently from positional context.
type FieldArityError struct {
	Field    string
	Expected int
	Actual   int
}

func (e *FieldArityError) Error() string {
	return fmt.Sprintf("child count does not match (field=%s): expected=%d, actual=%d",
		e.Field, e.Expected, e.Actual)
}

// NodeKindError reports a node whose kind does not match the declared record
// or wrapper name.
type NodeKindError struct {
	Expected string
	Actual   string
}

func (e *NodeKindError) Error() string {
	return fmt.Sprintf("node kind does not match: expected=%s, actual=%s", e.Expected, e.Actual)
}

// UnsupportedShapeError reports a requested shape that is structurally
// inexpressible against a node.
type UnsupportedShapeError struct {
	Shape string

	// Wrapper names the enclosing wrapper when the shape was requested as
	// a wrapper payload.
	Wrapper string
}

func (e *UnsupportedShapeError) Error() string {
	if e.Wrapper != "" {
		return fmt.Sprintf("shape %s is not supported inside wrapper %s", e.Shape, e.Wrapper)
	}
	return fmt.Sprintf("shape %s is not supported", e.Shape)
}

// NumberError wraps a failed numeric conversion of node text.
type NumberError struct {
	Atom shape.Atom
	Err  error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Atom, e.Err)
}

func (e *NumberError) Unwrap() error {
	return e.Err
}

// BoolError wraps a failed boolean conversion of node text.
type BoolError struct {
	Err error
}

func (e *BoolError) Error() string {
	return fmt.Sprintf("parsing bool: %v", e.Err)
}

func (e *BoolError) Unwrap() error {
	return e.Err
}

// TreeError reports parser error markers found by the strict pre-scan. It
// carries every marker's span so a diagnostic can be built without walking
// the tree again.
type TreeError struct {
	Spans []node.Span
}

func (e *TreeError) Error() string {
	if len(e.Spans) == 1 {
		s := e.Spans[0]
		return fmt.Sprintf("tree contains a parse error at %d:%d", s.Start.Row, s.Start.Column)
	}
	return fmt.Sprintf("tree contains %d parse errors", len(e.Spans))
}

// CustomError is the escape hatch for caller-side shape producers (variant
// resolvers, constraints) reporting their own violated preconditions.
type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func customf(format string, args ...any) *CustomError {
	return &CustomError{Message: fmt.Sprintf(format, args...)}
}

// resolverErr passes through errors that already belong to the taxonomy and
// folds everything else into CustomError.
func resolverErr(err error) error {
	var (
		arity   *ArityError
		farity  *FieldArityError
		kind    *NodeKindError
		unsup   *UnsupportedShapeError
		num     *NumberError
		boolerr *BoolError
		tree    *TreeError
		custom  *CustomError
	)
	switch {
	case errors.As(err, &arity),
		errors.As(err, &farity),
		errors.As(err, &kind),
		errors.As(err, &unsup),
		errors.As(err, &num),
		errors.As(err, &boolerr),
		errors.As(err, &tree),
		errors.As(err, &custom):
		return err
	}
	return &CustomError{Message: err.Error()}
}

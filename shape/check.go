package shape

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Check is a compiled predicate over a decoded atom value. The expression
// sees the value under the name "value" and must evaluate to a boolean:
//
//	s := shape.AtomOf(shape.U32).WithCheck(shape.MustCheck("value > 0"))
//
// A failing check surfaces from the engine as its caller-precondition error.
type Check struct {
	Source string

	prog *vm.Program
}

func NewCheck(src string) (*Check, error) {
	prog, err := expr.Compile(src,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
		expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling check %q: %w", src, err)
	}
	return &Check{Source: src, prog: prog}, nil
}

func MustCheck(src string) *Check {
	c, err := NewCheck(src)
	if err != nil {
		panic(err)
	}
	return c
}

// Verify runs the predicate against a decoded value.
func (c *Check) Verify(v any) error {
	out, err := expr.Run(c.prog, map[string]any{"value": v})
	if err != nil {
		return fmt.Errorf("check %q: %w", c.Source, err)
	}
	if ok, _ := out.(bool); !ok {
		return fmt.Errorf("check %q failed for value %v", c.Source, v)
	}
	return nil
}

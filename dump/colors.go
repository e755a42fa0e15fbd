package dump

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type Colors struct {
	Kind  func(string, ...any) string
	Field func(string, ...any) string
	Text  func(string, ...any) string
	Error func(string, ...any) string
}

func NewColors() *Colors {
	c := &Colors{
		Kind:  color.RGB(74, 92, 138).SprintfFunc(),
		Field: color.RGB(196, 96, 16).SprintfFunc(),
		Text:  color.RGB(8, 196, 16).SprintfFunc(),
		Error: color.New(color.FgRed, color.Bold).SprintfFunc(),
	}
	c.Kind = escaped(c.Kind)
	c.Field = escaped(c.Field)
	c.Text = escaped(c.Text)
	c.Error = escaped(c.Error)
	return c
}

func escaped(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.Replace(v, "%", "%%", -1))
	}
}

var plainColors = &Colors{
	Kind:  colorDefault,
	Field: colorDefault,
	Text:  colorDefault,
	Error: colorDefault,
}

func colorDefault(v string, _ ...any) string { return v }

// Auto returns colors when w is a terminal, nil otherwise.
func Auto(w io.Writer) *Colors {
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return nil
}

// Package dump renders parse trees for inspection. The output is one line per
// named node, indented by depth, with the node's field tag, kind and text:
//
//	root
//	  a: uint_value "17"
//	  b: string_value "hello"
//
// Output is for humans; nothing parses it back.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/treebind/treebind/node"
)

type Printer struct {
	Colors *Colors
	Indent string
}

func NewPrinter(colors *Colors) *Printer {
	return &Printer{Colors: colors, Indent: "  "}
}

func (p *Printer) Fprint(w io.Writer, n node.Node) error {
	colors := p.Colors
	if colors == nil {
		colors = plainColors
	}
	return p.print(w, n, "", 0, colors)
}

// Sprint renders n to a string without color.
func Sprint(n node.Node) string {
	var b strings.Builder
	NewPrinter(nil).Fprint(&b, n)
	return b.String()
}

func (p *Printer) print(w io.Writer, n node.Node, field string, depth int, colors *Colors) error {
	var line strings.Builder
	line.WriteString(strings.Repeat(p.Indent, depth))
	if field != "" {
		line.WriteString(colors.Field(field))
		line.WriteString(": ")
	}
	kind := colors.Kind
	if m, ok := n.(node.ErrorMarker); ok && m.IsError() {
		kind = colors.Error
	}
	line.WriteString(kind(n.Kind()))
	if t := n.Text(); t != "" {
		line.WriteString(" ")
		line.WriteString(colors.Text(fmt.Sprintf("%q", t)))
	}
	if _, err := fmt.Fprintln(w, line.String()); err != nil {
		return err
	}
	tagger, _ := n.(node.FieldTagger)
	for i, k := range n.NamedChildren() {
		tag := ""
		if tagger != nil {
			tag = tagger.FieldTag(i)
		}
		if err := p.print(w, k, tag, depth+1, colors); err != nil {
			return err
		}
	}
	return nil
}

// Package sexp parses a small s-expression notation into trees implementing
// node.Node. It exists so the decoder can be driven, inspected and tested
// without linking a real grammar:
//
//	(root "src" a:(uint_value "17") b:(string_value "hello"))
//
// Each list is one node: the head is the node kind, an optional string
// literal is the node's text, and the remaining elements are children. A
// child may carry a field tag (`a:`) and may be marked unnamed with a leading
// tilde, mirroring purely structural grammar children. A node of kind ERROR
// is a parse-error marker for the strict pre-decode scan.
package sexp

import (
	"fmt"
	"strings"

	"github.com/treebind/treebind/node"
)

// Node is one parsed s-expression node. It implements node.Node,
// node.FieldTagger and node.ErrorMarker.
type Node struct {
	kind     string
	text     string
	named    bool
	span     node.Span
	children []*Node
	fields   []string
}

const errorKind = "ERROR"

func (n *Node) Kind() string { return n.kind }
func (n *Node) Text() string { return n.text }

func (n *Node) NamedChildCount() int {
	c := 0
	for _, k := range n.children {
		if k.named {
			c++
		}
	}
	return c
}

func (n *Node) NamedChild(i int) node.Node {
	for _, k := range n.children {
		if !k.named {
			continue
		}
		if i == 0 {
			return k
		}
		i--
	}
	return nil
}

func (n *Node) NamedChildren() []node.Node {
	out := make([]node.Node, 0, len(n.children))
	for _, k := range n.children {
		if k.named {
			out = append(out, k)
		}
	}
	return out
}

func (n *Node) ChildrenByField(name string) []node.Node {
	var out []node.Node
	for i, k := range n.children {
		if n.fields[i] == name {
			out = append(out, k)
		}
	}
	return out
}

// FieldTag returns the field tag of the i-th named child, or "".
func (n *Node) FieldTag(i int) string {
	for j, k := range n.children {
		if !k.named {
			continue
		}
		if i == 0 {
			return n.fields[j]
		}
		i--
	}
	return ""
}

func (n *Node) IsError() bool { return n.kind == errorKind }

func (n *Node) HasError() bool {
	if n.IsError() {
		return true
	}
	for _, k := range n.children {
		if k.HasError() {
			return true
		}
	}
	return false
}

func (n *Node) AllChildren() []node.Node {
	out := make([]node.Node, len(n.children))
	for i, k := range n.children {
		out[i] = k
	}
	return out
}

func (n *Node) Span() node.Span { return n.span }

// Parse parses a single s-expression document.
func Parse(src []byte) (*Node, error) {
	p := &parser{src: string(src)}
	p.ws()
	n, err := p.node(true)
	if err != nil {
		return nil, err
	}
	p.ws()
	if p.off != len(p.src) {
		return nil, p.errf("trailing input")
	}
	return n, nil
}

// MustParse is Parse for literals in tests and examples.
func MustParse(src string) *Node {
	n, err := Parse([]byte(src))
	if err != nil {
		panic(err)
	}
	return n
}

type parser struct {
	src string
	off int
	row int
	col int
}

func (p *parser) errf(format string, args ...any) error {
	return fmt.Errorf("%d:%d: %s", p.row, p.col, fmt.Sprintf(format, args...))
}

func (p *parser) peek() byte {
	if p.off >= len(p.src) {
		return 0
	}
	return p.src[p.off]
}

func (p *parser) advance() byte {
	c := p.src[p.off]
	p.off++
	if c == '\n' {
		p.row++
		p.col = 0
	} else {
		p.col++
	}
	return c
}

func (p *parser) ws() {
	for p.off < len(p.src) {
		switch p.peek() {
		case ' ', '\t', '\n', '\r':
			p.advance()
		default:
			return
		}
	}
}

func (p *parser) point() node.Point {
	return node.Point{Row: p.row, Column: p.col}
}

// node parses `'(' kind [string] child* ')'` where each child may be
// preceded by `field:` and marked unnamed by `~`.
func (p *parser) node(named bool) (*Node, error) {
	start := p.point()
	startByte := p.off
	if p.peek() != '(' {
		return nil, p.errf("expected '('")
	}
	p.advance()
	kind := p.ident()
	if kind == "" {
		return nil, p.errf("expected node kind")
	}
	n := &Node{kind: kind, named: named}
	p.ws()
	if p.peek() == '"' {
		t, err := p.string()
		if err != nil {
			return nil, err
		}
		n.text = t
		p.ws()
	}
	for {
		p.ws()
		switch p.peek() {
		case ')':
			p.advance()
			n.span = node.Span{
				StartByte: startByte,
				EndByte:   p.off,
				Start:     start,
				End:       p.point(),
			}
			return n, nil
		case 0:
			return nil, p.errf("unexpected end of input in (%s", kind)
		}
		field := ""
		if isIdentByte(p.peek()) {
			field = p.ident()
			if p.peek() != ':' {
				return nil, p.errf("expected ':' after field tag %q", field)
			}
			p.advance()
		}
		childNamed := true
		if p.peek() == '~' {
			p.advance()
			childNamed = false
		}
		k, err := p.node(childNamed)
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, k)
		n.fields = append(n.fields, field)
	}
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_'
}

func (p *parser) ident() string {
	start := p.off
	for p.off < len(p.src) && isIdentByte(p.peek()) {
		p.advance()
	}
	return p.src[start:p.off]
}

func (p *parser) string() (string, error) {
	p.advance() // opening quote
	var b strings.Builder
	for {
		if p.off >= len(p.src) {
			return "", p.errf("unterminated string")
		}
		c := p.advance()
		switch c {
		case '"':
			return b.String(), nil
		case '\\':
			if p.off >= len(p.src) {
				return "", p.errf("unterminated escape")
			}
			e := p.advance()
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"', '\\':
				b.WriteByte(e)
			default:
				return "", p.errf("unrecognized escape \\%c", e)
			}
		default:
			b.WriteByte(c)
		}
	}
}

// Package sitter adapts tree-sitter parse trees to the decoder's node
// interface. The grammar itself is linked by the caller (tree-sitter grammars
// are cgo packages); this package only bridges an already-parsed tree.
//
//	parser := ts.NewParser()
//	parser.SetLanguage(mylang.GetLanguage())
//	tree, _ := parser.ParseCtx(ctx, nil, src)
//	root := sitter.Wrap(tree.RootNode(), src)
package sitter

import (
	ts "github.com/smacker/go-tree-sitter"

	"github.com/treebind/treebind/node"
)

// Wrap adapts a tree-sitter node together with the source buffer it was
// parsed from. The returned node and all nodes reached through it stay valid
// only as long as the tree and buffer do.
func Wrap(n *ts.Node, src []byte) node.Node {
	return &tsNode{n: n, src: src}
}

type tsNode struct {
	n   *ts.Node
	src []byte
}

func (t *tsNode) wrap(n *ts.Node) *tsNode {
	return &tsNode{n: n, src: t.src}
}

func (t *tsNode) Kind() string { return t.n.Type() }

func (t *tsNode) Text() string { return t.n.Content(t.src) }

func (t *tsNode) NamedChildCount() int { return int(t.n.NamedChildCount()) }

func (t *tsNode) NamedChild(i int) node.Node {
	return t.wrap(t.n.NamedChild(i))
}

func (t *tsNode) NamedChildren() []node.Node {
	out := make([]node.Node, t.NamedChildCount())
	for i := range out {
		out[i] = t.wrap(t.n.NamedChild(i))
	}
	return out
}

func (t *tsNode) ChildrenByField(name string) []node.Node {
	var out []node.Node
	for i := 0; i < int(t.n.ChildCount()); i++ {
		if t.n.FieldNameForChild(i) == name {
			out = append(out, t.wrap(t.n.Child(i)))
		}
	}
	return out
}

// FieldTag implements node.FieldTagger.
func (t *tsNode) FieldTag(i int) string {
	for j := 0; j < int(t.n.ChildCount()); j++ {
		if !t.n.Child(j).IsNamed() {
			continue
		}
		if i == 0 {
			return t.n.FieldNameForChild(j)
		}
		i--
	}
	return ""
}

func (t *tsNode) IsError() bool { return t.n.IsError() }

func (t *tsNode) HasError() bool { return t.n.HasError() }

func (t *tsNode) AllChildren() []node.Node {
	out := make([]node.Node, t.n.ChildCount())
	for i := range out {
		out[i] = t.wrap(t.n.Child(i))
	}
	return out
}

func (t *tsNode) Span() node.Span {
	sp, ep := t.n.StartPoint(), t.n.EndPoint()
	return node.Span{
		StartByte: int(t.n.StartByte()),
		EndByte:   int(t.n.EndByte()),
		Start:     node.Point{Row: int(sp.Row), Column: int(sp.Column)},
		End:       node.Point{Row: int(ep.Row), Column: int(ep.Column)},
	}
}

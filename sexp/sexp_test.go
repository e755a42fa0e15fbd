package sexp

import (
	"reflect"
	"testing"

	"github.com/treebind/treebind/node"
)

func TestParseBasics(t *testing.T) {
	n := MustParse(`(root "src" a:(uint_value "17") b:(string_value "hello"))`)
	if n.Kind() != "root" {
		t.Errorf("kind: got %q", n.Kind())
	}
	if n.Text() != "src" {
		t.Errorf("text: got %q", n.Text())
	}
	if n.NamedChildCount() != 2 {
		t.Fatalf("named children: got %d", n.NamedChildCount())
	}
	a := n.ChildrenByField("a")
	if len(a) != 1 || a[0].Kind() != "uint_value" || a[0].Text() != "17" {
		t.Errorf("field a: got %v", a)
	}
	if got := n.FieldTag(1); got != "b" {
		t.Errorf("field tag 1: got %q", got)
	}
}

func TestParseUnnamedChildren(t *testing.T) {
	n := MustParse(`(root (x "1") ~(comma) (x "2"))`)
	if got := n.NamedChildCount(); got != 2 {
		t.Errorf("named children: got %d", got)
	}
	if got := len(n.AllChildren()); got != 3 {
		t.Errorf("all children: got %d", got)
	}
	if got := n.NamedChild(1).Text(); got != "2" {
		t.Errorf("named child 1: got %q", got)
	}
}

func TestParseDuplicateFieldTags(t *testing.T) {
	n := MustParse(`(root a:(x "1") (y) a:(x "2"))`)
	a := n.ChildrenByField("a")
	if len(a) != 2 {
		t.Fatalf("field a: got %d children", len(a))
	}
	if a[0].Text() != "1" || a[1].Text() != "2" {
		t.Errorf("field a order: got %q, %q", a[0].Text(), a[1].Text())
	}
}

func TestParseStringEscapes(t *testing.T) {
	n := MustParse(`(s "a\"b\\c\nd\te")`)
	if got, want := n.Text(), "a\"b\\c\nd\te"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		``,
		`(`,
		`()`,
		`(a`,
		`(a "x`,
		`(a "x\q")`,
		`(a) trailing`,
		`(a b(c))`,
	} {
		if _, err := Parse([]byte(src)); err == nil {
			t.Errorf("Parse(%q): expected error", src)
		}
	}
}

func TestErrorMarkers(t *testing.T) {
	n := MustParse(`(root (a "1") (b (ERROR "?")))`)
	if n.IsError() {
		t.Error("root should not be a marker")
	}
	if !n.HasError() {
		t.Error("root should report a nested marker")
	}
	spans := node.ScanErrors(n)
	if len(spans) != 1 {
		t.Fatalf("spans: got %d", len(spans))
	}

	clean := MustParse(`(root (a "1"))`)
	if got := node.ScanErrors(clean); len(got) != 0 {
		t.Errorf("clean tree: got %v", got)
	}
}

func TestSpans(t *testing.T) {
	n := MustParse("(root\n  (a \"1\"))")
	kid := n.NamedChild(0)
	sp := kid.(*Node).Span()
	want := node.Span{
		StartByte: 8,
		EndByte:   15,
		Start:     node.Point{Row: 1, Column: 2},
		End:       node.Point{Row: 1, Column: 9},
	}
	if !reflect.DeepEqual(sp, want) {
		t.Errorf("span: got %+v, want %+v", sp, want)
	}
}

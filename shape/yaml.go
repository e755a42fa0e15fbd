package shape

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// FromYAML builds a descriptor from a YAML document, for callers that declare
// shapes outside Go code (the CLI's check command, test fixtures). Exactly one
// shape key must be set per document node:
//
//	record: root
//	fields:
//	  - name: a
//	    shape: {atom: u64}
//	  - name: b
//	    shape: {atom: string}
//
// Wrappers use `wrapper: name` plus `inner:`; unions map node kinds to
// variants:
//
//	union:
//	  null_value: {unit: true}
//	  int_value:  {newtype: {atom: i64}}
//
// YAML-declared shapes carry no Go type information; decoding against them
// produces generic values.
func FromYAML(d []byte) (*Shape, error) {
	var ys yamlShape
	if err := yaml.Unmarshal(d, &ys); err != nil {
		return nil, fmt.Errorf("parsing shape document: %w", err)
	}
	return ys.shape()
}

type yamlShape struct {
	Atom    string                  `yaml:"atom"`
	Option  *yamlShape              `yaml:"option"`
	Seq     *yamlShape              `yaml:"seq"`
	Tuple   []*yamlShape            `yaml:"tuple"`
	Wrapper string                  `yaml:"wrapper"`
	Inner   *yamlShape              `yaml:"inner"`
	Record  string                  `yaml:"record"`
	Fields  []yamlField             `yaml:"fields"`
	Union   map[string]*yamlVariant `yaml:"union"`
	Check   string                  `yaml:"check"`
}

type yamlField struct {
	Name  string     `yaml:"name"`
	Shape *yamlShape `yaml:"shape"`
}

type yamlVariant struct {
	Unit    bool         `yaml:"unit"`
	Newtype *yamlShape   `yaml:"newtype"`
	Tuple   []*yamlShape `yaml:"tuple"`
	Record  []yamlField  `yaml:"record"`
}

func (ys *yamlShape) shape() (*Shape, error) {
	if ys == nil {
		return nil, fmt.Errorf("missing shape")
	}
	var s *Shape
	switch {
	case ys.Atom != "":
		var a Atom
		if err := a.UnmarshalText([]byte(ys.Atom)); err != nil {
			return nil, err
		}
		s = AtomOf(a)
	case ys.Option != nil:
		inner, err := ys.Option.shape()
		if err != nil {
			return nil, err
		}
		s = Option(inner)
	case ys.Seq != nil:
		inner, err := ys.Seq.shape()
		if err != nil {
			return nil, err
		}
		s = Seq(inner)
	case ys.Tuple != nil:
		elems, err := shapes(ys.Tuple)
		if err != nil {
			return nil, err
		}
		s = Tuple(elems...)
	case ys.Wrapper != "":
		inner, err := ys.Inner.shape()
		if err != nil {
			return nil, fmt.Errorf("wrapper %s: %w", ys.Wrapper, err)
		}
		s = Wrapper(ys.Wrapper, inner)
	case ys.Record != "":
		fields, err := yamlFields(ys.Fields)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", ys.Record, err)
		}
		s = Record(ys.Record, fields...)
	case ys.Union != nil:
		vm := VariantMap{}
		for tag, yv := range ys.Union {
			v, err := yv.variant()
			if err != nil {
				return nil, fmt.Errorf("variant %s: %w", tag, err)
			}
			vm[tag] = v
		}
		s = Union(vm)
	default:
		return nil, fmt.Errorf("shape document sets none of atom/option/seq/tuple/wrapper/record/union")
	}
	if ys.Check != "" {
		c, err := NewCheck(ys.Check)
		if err != nil {
			return nil, err
		}
		s = s.WithCheck(c)
	}
	return s, nil
}

func (yv *yamlVariant) variant() (*Variant, error) {
	switch {
	case yv.Unit:
		return &Variant{Kind: UnitVariant}, nil
	case yv.Newtype != nil:
		inner, err := yv.Newtype.shape()
		if err != nil {
			return nil, err
		}
		return &Variant{Kind: NewtypeVariant, Elem: inner}, nil
	case yv.Tuple != nil:
		elems, err := shapes(yv.Tuple)
		if err != nil {
			return nil, err
		}
		return &Variant{Kind: TupleVariant, Elems: elems}, nil
	case yv.Record != nil:
		fields, err := yamlFields(yv.Record)
		if err != nil {
			return nil, err
		}
		return &Variant{Kind: RecordVariant, Fields: fields}, nil
	}
	return nil, fmt.Errorf("variant sets none of unit/newtype/tuple/record")
}

func shapes(ys []*yamlShape) ([]*Shape, error) {
	res := make([]*Shape, len(ys))
	for i, y := range ys {
		s, err := y.shape()
		if err != nil {
			return nil, err
		}
		res[i] = s
	}
	return res, nil
}

func yamlFields(yf []yamlField) ([]Field, error) {
	fields := make([]Field, len(yf))
	for i, f := range yf {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d has no name", i)
		}
		fs, err := f.Shape.shape()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		fields[i] = Field{Name: f.Name, Shape: fs}
	}
	return fields, nil
}

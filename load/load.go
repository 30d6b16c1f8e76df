package load

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/redlinehq/redline/ir"
)

var ErrLoad = errors.New("cannot load document")

var validate = validator.New()

// Load reads one interchange document.
func Load(r io.Reader) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return Bytes(d)
}

// File loads an interchange document from a file.
func File(path string) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	doc, err := Bytes(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	return doc, nil
}

// Bytes parses an interchange document. The input is YAML; JSON parses
// too, being a YAML subset.
func Bytes(d []byte) (*ir.Node, error) {
	var spec docSpec
	if err := yaml.Unmarshal(d, &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if err := validate.Struct(&spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return spec.build()
}

type docSpec struct {
	Parts []partSpec `yaml:"parts" validate:"required,min=1,dive"`
}

type partSpec struct {
	Name   string      `yaml:"name" validate:"required"`
	Blocks []blockSpec `yaml:"blocks" validate:"dive"`
}

// blockSpec is a union: exactly one member may be set.
type blockSpec struct {
	Para     *paraSpec  `yaml:"para,omitempty"`
	Table    *tableSpec `yaml:"table,omitempty"`
	TextBox  *boxSpec   `yaml:"textbox,omitempty"`
	Footnote *boxSpec   `yaml:"footnote,omitempty"`
	Endnote  *boxSpec   `yaml:"endnote,omitempty"`
}

type paraSpec struct {
	ID    string            `yaml:"id,omitempty"`
	Props map[string]string `yaml:"props,omitempty"`
	Runs  []runSpec         `yaml:"runs,omitempty"`
}

// runSpec is either a text run or an object reference, not both.
type runSpec struct {
	Text   string            `yaml:"text,omitempty"`
	Object string            `yaml:"object,omitempty"`
	Props  map[string]string `yaml:"props,omitempty"`
}

type tableSpec struct {
	ID    string            `yaml:"id,omitempty"`
	Props map[string]string `yaml:"props,omitempty"`
	Rows  []rowSpec         `yaml:"rows" validate:"required,min=1,dive"`
}

type rowSpec struct {
	ID    string            `yaml:"id,omitempty"`
	Props map[string]string `yaml:"props,omitempty"`
	Cells []cellSpec        `yaml:"cells" validate:"required,min=1,dive"`
}

type cellSpec struct {
	ID     string            `yaml:"id,omitempty"`
	Props  map[string]string `yaml:"props,omitempty"`
	Blocks []blockSpec       `yaml:"blocks,omitempty" validate:"dive"`
}

type boxSpec struct {
	ID     string            `yaml:"id,omitempty"`
	Props  map[string]string `yaml:"props,omitempty"`
	Blocks []blockSpec       `yaml:"blocks,omitempty" validate:"dive"`
}

func (s *docSpec) build() (*ir.Node, error) {
	doc := ir.Doc()
	seen := map[string]bool{}
	for i := range s.Parts {
		p := &s.Parts[i]
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: duplicate part %q", ErrLoad, p.Name)
		}
		seen[p.Name] = true
		part := ir.Part(p.Name)
		if err := appendBlocks(part, p.Blocks); err != nil {
			return nil, fmt.Errorf("%w in part %q", err, p.Name)
		}
		doc.Append(part)
	}
	return doc, nil
}

func appendBlocks(dst *ir.Node, blocks []blockSpec) error {
	for i := range blocks {
		n, err := blocks[i].build()
		if err != nil {
			return err
		}
		dst.Append(n)
	}
	return nil
}

func (b *blockSpec) build() (*ir.Node, error) {
	set := 0
	for _, p := range []bool{b.Para != nil, b.Table != nil, b.TextBox != nil,
		b.Footnote != nil, b.Endnote != nil} {
		if p {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: block must set exactly one of para, table, textbox, footnote, endnote", ErrLoad)
	}
	switch {
	case b.Para != nil:
		return b.Para.build()
	case b.Table != nil:
		return b.Table.build()
	case b.TextBox != nil:
		return b.TextBox.build(ir.KindTextBox)
	case b.Footnote != nil:
		return b.Footnote.build(ir.KindFootnote)
	default:
		return b.Endnote.build(ir.KindEndnote)
	}
}

func (s *paraSpec) build() (*ir.Node, error) {
	p := ir.Para().WithID(s.ID).SetProps(ir.Props(s.Props))
	for i := range s.Runs {
		r := &s.Runs[i]
		switch {
		case r.Object != "" && r.Text != "":
			return nil, fmt.Errorf("%w: run sets both text and object", ErrLoad)
		case r.Object != "":
			p.Append(ir.Object(r.Object, ir.Props(r.Props)))
		default:
			p.Append(ir.Run(ir.Props(r.Props), r.Text))
		}
	}
	return p, nil
}

func (s *tableSpec) build() (*ir.Node, error) {
	t := ir.Tbl().WithID(s.ID).SetProps(ir.Props(s.Props))
	for i := range s.Rows {
		rs := &s.Rows[i]
		row := ir.Row().WithID(rs.ID).SetProps(ir.Props(rs.Props))
		for j := range rs.Cells {
			cs := &rs.Cells[j]
			cell := ir.Cell().WithID(cs.ID).SetProps(ir.Props(cs.Props))
			if err := appendBlocks(cell, cs.Blocks); err != nil {
				return nil, err
			}
			row.Append(cell)
		}
		t.Append(row)
	}
	return t, nil
}

func (s *boxSpec) build(kind ir.Kind) (*ir.Node, error) {
	var n *ir.Node
	switch kind {
	case ir.KindTextBox:
		n = ir.TextBox()
	case ir.KindFootnote:
		n = ir.Footnote()
	default:
		n = ir.Endnote()
	}
	n.WithID(s.ID).SetProps(ir.Props(s.Props))
	if err := appendBlocks(n, s.Blocks); err != nil {
		return nil, err
	}
	return n, nil
}

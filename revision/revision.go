// Package revision flattens an annotated comparison tree into ordered,
// reviewable change records, with expression filtering and character-level
// deltas for reporting.
package revision

import (
	"fmt"
	"strings"
	"time"

	"github.com/redlinehq/redline/ir"
)

// Type classifies a revision record.
type Type int

const (
	Inserted Type = iota
	Deleted
	Moved
	FormatChanged
)

var typeNames = map[Type]string{
	Inserted:      "inserted",
	Deleted:       "deleted",
	Moved:         "moved",
	FormatChanged: "formatChanged",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("type(%d)", int(t))
}

func (t Type) MarshalText() ([]byte, error) {
	s, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("invalid revision type %d", int(t))
	}
	return []byte(s), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	s := string(d)
	for tt, name := range typeNames {
		if name == s {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("invalid revision type %q", s)
}

// Revision is one flattened change record, in document order.
type Revision struct {
	Type   Type      `json:"type"`
	Author string    `json:"author,omitempty"`
	Date   time.Time `json:"date,omitzero"`

	// Text is the plain text the record covers. Paragraph marks render as
	// a pilcrow; objects contribute no text.
	Text string `json:"text,omitempty"`

	// MoveName groups the two records of one move; IsMoveSource marks the
	// origin side.
	MoveName     string `json:"moveName,omitempty"`
	IsMoveSource bool   `json:"isMoveSource,omitempty"`

	// Format is set on FormatChanged records.
	Format *FormatChange `json:"format,omitempty"`
}

// Extract flattens the annotated tree into document-ordered revision
// records. A container carrying its own revision yields one record for
// its whole subtree. Inside a paragraph, adjacent markup of one revision
// coalesces into one record, and the paragraph mark folds into a trailing
// record of the same revision.
func Extract(tree *ir.Node) ([]Revision, error) {
	x := &extractor{}
	if err := x.walk(tree); err != nil {
		return nil, err
	}
	return x.revs, nil
}

type extractor struct {
	revs []Revision
}

func (x *extractor) walk(n *ir.Node) error {
	switch {
	case n.Kind == ir.KindParagraph:
		return x.paragraph(n)
	case n.Kind == ir.KindMoveRangeStart || n.Kind == ir.KindMoveRangeEnd:
		// Range brackets carry no content of their own.
		return nil
	case n.Kind.Container():
		if n.Rev != nil {
			if n.Rev.Kind != ir.RevPropChange {
				return x.container(n)
			}
			// A container that kept its content but changed properties
			// records the format change and still walks its kids.
			if err := x.containerFormat(n); err != nil {
				return err
			}
		}
		for _, kid := range n.Kids {
			if err := x.walk(kid); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unexpected %s at %s", n.Kind, n.Path())
	}
}

// container records a wholly inserted or deleted subtree as one revision.
func (x *extractor) container(n *ir.Node) error {
	t, err := typeOf(n.Rev)
	if err != nil {
		return fmt.Errorf("%v at %s", err, n.Path())
	}
	x.revs = append(x.revs, Revision{
		Type:         t,
		Author:       n.Rev.Author,
		Date:         n.Rev.Date,
		Text:         n.PlainText(),
		MoveName:     n.Rev.MoveName,
		IsMoveSource: n.Rev.Source,
	})
	return nil
}

// containerFormat records a property change on a container: a row
// height, cell span or similar. The record covers no text of its own.
func (x *extractor) containerFormat(n *ir.Node) error {
	fc, err := formatChange(n.Rev.OldProps, n.Props)
	if err != nil {
		return fmt.Errorf("%v at %s", err, n.Path())
	}
	x.revs = append(x.revs, Revision{
		Type:   FormatChanged,
		Author: n.Rev.Author,
		Date:   n.Rev.Date,
		Format: fc,
	})
	return nil
}

func (x *extractor) paragraph(p *ir.Node) error {
	var pend *Revision
	var pendKind ir.RevKind
	flush := func() {
		if pend != nil {
			x.revs = append(x.revs, *pend)
			pend = nil
		}
	}

	for _, kid := range p.Kids {
		switch kid.Kind {
		case ir.KindRun, ir.KindObject:
			if kid.Rev == nil {
				flush()
				continue
			}
			if kid.Rev.Kind != ir.RevPropChange {
				return fmt.Errorf("unexpected %s revision at %s", kid.Rev.Kind, kid.Path())
			}
			flush()
			fc, err := formatChange(kid.Rev.OldProps, kid.Props)
			if err != nil {
				return fmt.Errorf("%v at %s", err, kid.Path())
			}
			x.revs = append(x.revs, Revision{
				Type:   FormatChanged,
				Author: kid.Rev.Author,
				Date:   kid.Rev.Date,
				Text:   kid.Text,
				Format: fc,
			})
		case ir.KindIns, ir.KindDel, ir.KindMoveFrom, ir.KindMoveTo:
			t, err := typeOf(kid.Rev)
			if err != nil {
				return fmt.Errorf("%v at %s", err, kid.Path())
			}
			text := wrapperText(kid)
			if pend != nil && pendKind == kid.Rev.Kind &&
				pend.Author == kid.Rev.Author && pend.MoveName == kid.Rev.MoveName {
				pend.Text += text
				continue
			}
			flush()
			pend = &Revision{
				Type:         t,
				Author:       kid.Rev.Author,
				Date:         kid.Rev.Date,
				Text:         text,
				MoveName:     kid.Rev.MoveName,
				IsMoveSource: kid.Rev.Source,
			}
			pendKind = kid.Rev.Kind
		default:
			return fmt.Errorf("unexpected %s at %s", kid.Kind, kid.Path())
		}
	}

	m := p.MarkRev
	if m == nil {
		flush()
		return nil
	}
	if m.Kind == ir.RevPropChange {
		flush()
		fc, err := formatChange(m.OldProps, p.Props)
		if err != nil {
			return fmt.Errorf("%v at %s", err, p.Path())
		}
		x.revs = append(x.revs, Revision{
			Type:   FormatChanged,
			Author: m.Author,
			Date:   m.Date,
			Text:   "¶",
			Format: fc,
		})
		return nil
	}
	if pend != nil && pendKind == m.Kind && pend.Author == m.Author && pend.MoveName == m.MoveName {
		pend.Text += "¶"
		flush()
		return nil
	}
	flush()
	t, err := typeOf(m)
	if err != nil {
		return fmt.Errorf("%v at %s", err, p.Path())
	}
	x.revs = append(x.revs, Revision{
		Type:         t,
		Author:       m.Author,
		Date:         m.Date,
		Text:         "¶",
		MoveName:     m.MoveName,
		IsMoveSource: m.Source,
	})
	return nil
}

func typeOf(r *ir.Rev) (Type, error) {
	if r == nil {
		return 0, fmt.Errorf("markup without revision")
	}
	switch r.Kind {
	case ir.RevIns:
		return Inserted, nil
	case ir.RevDel:
		return Deleted, nil
	case ir.RevMoveFrom, ir.RevMoveTo:
		return Moved, nil
	case ir.RevPropChange:
		return FormatChanged, nil
	}
	return 0, fmt.Errorf("invalid revision kind %s", r.Kind)
}

func wrapperText(w *ir.Node) string {
	var sb strings.Builder
	for _, kid := range w.Kids {
		if kid.Kind == ir.KindRun {
			sb.WriteString(kid.Text)
		}
	}
	return sb.String()
}

package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/redlinehq/redline/ir"
)

var ErrEncoding = errors.New("cannot encode node")

type EncState struct {
	depth, indent int

	Color func(ir.RevKind, ColorAttr, string) string
}

// Encode renders the document tree as indented text: one line per block
// element, run content inline in its paragraph line, revision markup as
// kind[id] markers. The rendering is for review output, debug traces and
// test assertions, not for round-tripping.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(n *ir.Node, w io.Writer, es *EncState) error {
	switch {
	case n.Kind == ir.KindParagraph:
		ln, err := paragraphLine(n, es)
		if err != nil {
			return err
		}
		return writeLine(w, es, ln)
	case n.Kind == ir.KindMoveRangeStart || n.Kind == ir.KindMoveRangeEnd:
		return writeLine(w, es, headerLine(n, es))
	case n.Kind.Container():
		if err := writeLine(w, es, headerLine(n, es)); err != nil {
			return err
		}
		es.depth++
		for _, kid := range n.Kids {
			if err := encode(kid, w, es); err != nil {
				return err
			}
		}
		es.depth--
		return nil
	default:
		s, err := inline(n, nil, es)
		if err != nil {
			return err
		}
		return writeLine(w, es, s)
	}
}

func headerLine(n *ir.Node, es *EncState) string {
	s := applyColor(es, NoRev, KindColor, n.Kind.String())
	if n.Name != "" {
		s += " " + applyColor(es, NoRev, NameColor, n.Name)
	}
	if n.Rev != nil {
		s += " " + marker(n.Rev, es)
	}
	return s
}

func paragraphLine(n *ir.Node, es *EncState) (string, error) {
	parts := []string{applyColor(es, NoRev, KindColor, n.Kind.String())}
	if n.Rev != nil {
		parts = append(parts, marker(n.Rev, es))
	}
	for _, kid := range n.Kids {
		s, err := inline(kid, nil, es)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	mark, rev := "¶", NoRev
	if n.MarkRev != nil {
		mark = markerText(n.MarkRev) + "¶"
		rev = n.MarkRev.Kind
	}
	parts = append(parts, applyColor(es, rev, MarkColor, mark))
	return strings.Join(parts, " "), nil
}

// inline renders run-level content. under is the enclosing markup's
// revision, so wrapped text takes the wrapper's color.
func inline(n *ir.Node, under *ir.Rev, es *EncState) (string, error) {
	switch n.Kind {
	case ir.KindRun:
		v := applyColor(es, revKindOf(n.Rev, under), ValueColor, strconv.Quote(n.Text))
		if n.Rev != nil {
			return marker(n.Rev, es) + "{" + v + "}", nil
		}
		return v, nil
	case ir.KindObject:
		v := applyColor(es, revKindOf(n.Rev, under), NameColor, "("+n.Name+")")
		if n.Rev != nil {
			return marker(n.Rev, es) + "{" + v + "}", nil
		}
		return v, nil
	case ir.KindIns, ir.KindDel, ir.KindMoveFrom, ir.KindMoveTo:
		if n.Rev == nil {
			return "", fmt.Errorf("%w: %s without revision", ErrEncoding, n.Kind)
		}
		parts := make([]string, 0, len(n.Kids))
		for _, kid := range n.Kids {
			s, err := inline(kid, n.Rev, es)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return marker(n.Rev, es) + "{" + strings.Join(parts, " ") + "}", nil
	}
	return "", fmt.Errorf("%w: %s as inline content", ErrEncoding, n.Kind)
}

func revKindOf(own, under *ir.Rev) ir.RevKind {
	if own != nil {
		return own.Kind
	}
	if under != nil {
		return under.Kind
	}
	return NoRev
}

func markerText(r *ir.Rev) string {
	s := r.Kind.String() + "[" + strconv.Itoa(r.ID)
	if r.MoveName != "" {
		s += " " + r.MoveName
	}
	return s + "]"
}

func marker(r *ir.Rev, es *EncState) string {
	return applyColor(es, r.Kind, MarkerColor, markerText(r))
}

func applyColor(es *EncState, rev ir.RevKind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(rev, attr, v)
}

func writeLine(w io.Writer, es *EncState, s string) error {
	pad := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	_, err := w.Write([]byte(pad + s + "\n"))
	return err
}

package unit

import (
	"fmt"

	"github.com/redlinehq/redline/ir"
)

// Side names the two inputs of a comparison.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Atom is the smallest comparable unit: one word or punctuation token of a
// run, one opaque object, or one paragraph mark. The Exact digest covers
// text and formatting; the Content digest covers text only, so atoms still
// match when only formatting changed.
type Atom struct {
	// Kind is KindRun for word tokens, KindObject for opaque objects and
	// KindParagraph for paragraph marks.
	Kind ir.Kind

	// Text is the token text. Empty for objects and marks.
	Text string

	// Sig is the formatting signature of the source element.
	Sig string

	// Node is the source element the atom was cut from: the run, the
	// object, or the paragraph whose mark this is.
	Node *ir.Node

	// Ancestors holds the stable ids of the enclosing containers,
	// outermost part first, innermost container last. Mark atoms include
	// their own paragraph.
	Ancestors []string

	Exact   ir.Digest
	Content ir.Digest
}

// Mark reports whether the atom is a paragraph mark.
func (a *Atom) Mark() bool {
	return a.Kind == ir.KindParagraph
}

func (a *Atom) String() string {
	switch a.Kind {
	case ir.KindObject:
		return fmt.Sprintf("object(%s)", a.Node.Name)
	case ir.KindParagraph:
		return "¶"
	default:
		return fmt.Sprintf("%q", a.Text)
	}
}

// Group represents one container of the input tree together with its
// comparison units: kid groups for nested containers, atoms for paragraph
// content. Digests are computed bottom-up at build time.
type Group struct {
	// Node is the source container. Its StableID is assigned by Build.
	Node *ir.Node

	// Groups holds the kid groups of container kids, in order. Empty for
	// paragraphs.
	Groups []*Group

	// Atoms holds the direct atoms of a paragraph, the mark atom last.
	// Empty for other containers.
	Atoms []*Atom

	// Ancestors holds the stable ids of the enclosing containers and the
	// group's own, outermost first, the same chain its atoms carry.
	Ancestors []string

	Exact   ir.Digest
	Content ir.Digest
}

// Kind returns the kind of the underlying container.
func (g *Group) Kind() ir.Kind {
	return g.Node.Kind
}

// ID returns the stable id of the underlying container.
func (g *Group) ID() string {
	return g.Node.StableID
}

// AllAtoms returns the atoms of the whole subtree in document order.
func (g *Group) AllAtoms() []*Atom {
	if len(g.Groups) == 0 {
		return g.Atoms
	}
	var res []*Atom
	for _, kid := range g.Groups {
		res = append(res, kid.AllAtoms()...)
	}
	return res
}

// AtomCount returns the number of atoms in the subtree.
func (g *Group) AtomCount() int {
	if len(g.Groups) == 0 {
		return len(g.Atoms)
	}
	res := 0
	for _, kid := range g.Groups {
		res += kid.AtomCount()
	}
	return res
}

func (g *Group) String() string {
	return fmt.Sprintf("%s(%s)", g.Kind(), g.Exact.Short())
}

package unit

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/redlinehq/redline/ir"
)

// BuildOptions configures unit building for one comparison.
type BuildOptions struct {
	// Fold case-folds text into digests, so case differences do not
	// count as changes.
	Fold bool
}

// Build converts one document part into its comparison-unit group and
// registers every container in reg. Containers lacking a stable id are
// assigned one in place; existing ids are preserved. The resulting group
// hierarchy is immutable for the rest of the comparison.
func Build(reg *Registry, side Side, part *ir.Node, opts BuildOptions) (*Group, error) {
	if !part.Kind.Container() {
		return nil, fmt.Errorf("%w: cannot build units from %s node", ir.ErrMalformed, part.Kind)
	}
	return build(reg, side, part, nil, opts)
}

func build(reg *Registry, side Side, n *ir.Node, outer []string, opts BuildOptions) (*Group, error) {
	if n.StableID == "" {
		n.StableID = uuid.NewString()
	}
	if _, err := reg.add(side, n); err != nil {
		return nil, fmt.Errorf("%s: %w", n.Path(), err)
	}

	chain := make([]string, len(outer)+1)
	copy(chain, outer)
	chain[len(outer)] = n.StableID

	g := &Group{Node: n, Ancestors: chain}
	if n.Kind == ir.KindParagraph {
		for _, kid := range n.Kids {
			switch {
			case kid.Kind == ir.KindRun:
				sig := kid.Props.Signature()
				for _, tok := range tokenize(kid.Text) {
					a := &Atom{Kind: ir.KindRun, Text: tok, Sig: sig, Node: kid, Ancestors: chain}
					a.digest(opts.Fold)
					g.Atoms = append(g.Atoms, a)
				}
			case kid.Kind == ir.KindObject:
				a := &Atom{Kind: ir.KindObject, Sig: kid.Props.Signature(), Node: kid, Ancestors: chain}
				a.digest(opts.Fold)
				g.Atoms = append(g.Atoms, a)
			default:
				return nil, fmt.Errorf("%w: %s inside paragraph at %s", ir.ErrMalformed, kid.Kind, kid.Path())
			}
		}
		// The paragraph mark is an atom of its own paragraph, always
		// last, so mark formatting changes and paired empty paragraphs
		// fall out of ordinary atom alignment.
		mark := &Atom{Kind: ir.KindParagraph, Sig: n.Props.Signature(), Node: n, Ancestors: chain}
		mark.digest(opts.Fold)
		g.Atoms = append(g.Atoms, mark)
	} else {
		for _, kid := range n.Kids {
			if !kid.Kind.Container() {
				return nil, fmt.Errorf("%w: %s inside %s at %s", ir.ErrMalformed, kid.Kind, n.Kind, kid.Path())
			}
			kg, err := build(reg, side, kid, chain, opts)
			if err != nil {
				return nil, err
			}
			g.Groups = append(g.Groups, kg)
		}
	}
	g.digest()
	return g, nil
}

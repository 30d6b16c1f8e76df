package redline

import (
	"fmt"

	"github.com/redlinehq/redline/ir"
)

// verifyTree checks the revision-id invariants on a reconstructed
// document before it is returned: every revision id is positive and used
// once, except that a move range pair shares one id between its start and
// end marker, and every range start is closed under the same parent. A
// failure here is a reconstruction bug.
func verifyTree(doc *ir.Node) error {
	v := &verifier{seen: map[int]string{}}
	return v.walk(doc, doc.Kind.String())
}

type verifier struct {
	// seen maps each claimed revision id to the path of its first use.
	seen map[int]string
}

func (v *verifier) claim(id int, path string) error {
	if id <= 0 {
		return fmt.Errorf("%w: revision id %d at %s", ErrInternal, id, path)
	}
	if first, ok := v.seen[id]; ok {
		return fmt.Errorf("%w: revision id %d at %s already used at %s",
			ErrInternal, id, path, first)
	}
	v.seen[id] = path
	return nil
}

func (v *verifier) walk(n *ir.Node, path string) error {
	if n.Rev != nil {
		if err := v.claim(n.Rev.ID, path); err != nil {
			return err
		}
	}
	if n.MarkRev != nil {
		if err := v.claim(n.MarkRev.ID, path+"/mark"); err != nil {
			return err
		}
	}

	open := map[int]string{}
	for i, kid := range n.Kids {
		kidPath := fmt.Sprintf("%s/%s[%d]", path, kid.Kind, i)
		switch kid.Kind {
		case ir.KindMoveRangeStart:
			if kid.Rev == nil {
				return fmt.Errorf("%w: move range start without revision at %s", ErrInternal, kidPath)
			}
			// The pair claims its shared id once, at the start marker.
			if err := v.claim(kid.Rev.ID, kidPath); err != nil {
				return err
			}
			open[kid.Rev.ID] = kidPath
		case ir.KindMoveRangeEnd:
			if kid.Rev == nil {
				return fmt.Errorf("%w: move range end without revision at %s", ErrInternal, kidPath)
			}
			if _, ok := open[kid.Rev.ID]; !ok {
				return fmt.Errorf("%w: move range end %d without start at %s",
					ErrInternal, kid.Rev.ID, kidPath)
			}
			delete(open, kid.Rev.ID)
		default:
			if err := v.walk(kid, kidPath); err != nil {
				return err
			}
		}
	}
	for id, at := range open {
		return fmt.Errorf("%w: move range %d opened at %s never closed", ErrInternal, id, at)
	}
	return nil
}

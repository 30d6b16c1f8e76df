package unit

import (
	"errors"
	"fmt"

	"github.com/redlinehq/redline/ir"
)

var ErrConflict = errors.New("conflicting stable ids")

// Rec is one registry entry: the container a stable id names on one side,
// or on both once correlation has paired the two sides' containers.
type Rec struct {
	// ID is the canonical id: side A's id after unification.
	ID   string
	Kind ir.Kind

	A, B *ir.Node
}

// Element returns the container the record names, preferring the revised
// side. Reconstruction opens shells from these.
func (rec *Rec) Element() *ir.Node {
	if rec.B != nil {
		return rec.B
	}
	return rec.A
}

// Side returns the record's container on one side, or nil.
func (rec *Rec) Side(s Side) *ir.Node {
	if s == SideA {
		return rec.A
	}
	return rec.B
}

// Registry is the per-comparison arena of container records. Each side
// keys its own records: adapters may carry one id namespace across both
// document versions, so the same id can name an element on each side
// without those two being the same unit. Only correlation pairs records.
// Atoms refer to containers through ids rather than pointers; the
// registry resolves them, per side, during reconstruction.
type Registry struct {
	recs [2]map[string]*Rec
}

func NewRegistry() *Registry {
	return &Registry{recs: [2]map[string]*Rec{{}, {}}}
}

// Lookup returns the record the id names on the given side, or nil. A
// unified record resolves from both sides, each under its own id.
func (r *Registry) Lookup(side Side, id string) *Rec {
	return r.recs[side][id]
}

func (r *Registry) add(side Side, n *ir.Node) (*Rec, error) {
	if r.recs[side][n.StableID] != nil {
		return nil, fmt.Errorf("%w: %q used twice on side %s", ErrConflict, n.StableID, side)
	}
	rec := &Rec{ID: n.StableID, Kind: n.Kind}
	if side == SideA {
		rec.A = n
	} else {
		rec.B = n
	}
	r.recs[side][n.StableID] = rec
	return rec, nil
}

// Unify merges the records of a correlated pair: the pair's atoms then
// resolve their ancestor ids, each from its own side, to one shared
// record. The A-side id becomes canonical. Unifying an already-merged
// pair is a no-op; re-pairing either record with anything else is a
// correlation bug.
func (r *Registry) Unify(aID, bID string) error {
	ra, rb := r.recs[SideA][aID], r.recs[SideB][bID]
	if ra == nil || rb == nil {
		return fmt.Errorf("%w: unify %q with %q: unknown id", ErrConflict, aID, bID)
	}
	if ra == rb {
		return nil
	}
	if ra.Kind != rb.Kind {
		return fmt.Errorf("%w: unify %s %q with %s %q", ErrConflict, ra.Kind, aID, rb.Kind, bID)
	}
	if ra.B != nil || rb.A != nil {
		return fmt.Errorf("%w: %q or %q already paired", ErrConflict, aID, bID)
	}
	ra.B = rb.B
	r.recs[SideB][bID] = ra
	return nil
}

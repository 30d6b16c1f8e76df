package redline

import (
	"fmt"

	"github.com/redlinehq/redline/align"
	"github.com/redlinehq/redline/debug"
	"github.com/redlinehq/redline/ir"
	"github.com/redlinehq/redline/unit"
)

// op annotates one atom of the correlated sequence.
type op int

const (
	opEqual op = iota
	opDel
	opIns
)

func (o op) String() string {
	switch o {
	case opEqual:
		return "equal"
	case opDel:
		return "del"
	default:
		return "ins"
	}
}

// item is one atom of the final correlated sequence, the working record
// between correlation and reconstruction. Equal items carry both sides'
// atoms, deletions only the original, insertions only the revised.
type item struct {
	op   op
	a, b *unit.Atom

	// shell marks the presence of a container with no atoms anywhere
	// beneath it (an empty cell, note or text box). The item carries no
	// atom; it only opens the container's frames, so the container
	// survives into the output.
	shell *unit.Group

	// fmtChange marks an equal pair whose formatting signatures differ.
	fmtChange bool
}

// atom returns the side that drives reconstruction: the revised atom for
// equal and inserted items, the original for deletions. Nil for shells.
func (it *item) atom() *unit.Atom {
	if it.op == opDel {
		return it.a
	}
	return it.b
}

// side names the input the item's driving atom or shell came from; its
// ancestor ids resolve in that side of the registry.
func (it *item) side() unit.Side {
	if it.op == opDel {
		return unit.SideA
	}
	return unit.SideB
}

// delItems and insItems flatten a one-sided group into items in document
// order: one per atom, plus a shell item for every childless container,
// so empty containers keep their place in the output.
func delItems(g *unit.Group) []*item { return groupItems(g, opDel) }
func insItems(g *unit.Group) []*item { return groupItems(g, opIns) }

func groupItems(g *unit.Group, o op) []*item {
	if len(g.Groups) == 0 && len(g.Atoms) == 0 {
		return []*item{{op: o, shell: g}}
	}
	if len(g.Groups) == 0 {
		res := make([]*item, len(g.Atoms))
		for i, a := range g.Atoms {
			it := &item{op: o}
			if o == opDel {
				it.a = a
			} else {
				it.b = a
			}
			res[i] = it
		}
		return res
	}
	var res []*item
	for _, kid := range g.Groups {
		res = append(res, groupItems(kid, o)...)
	}
	return res
}

func delAtoms(atoms []*unit.Atom) []*item {
	res := make([]*item, len(atoms))
	for i, a := range atoms {
		res[i] = &item{op: opDel, a: a}
	}
	return res
}

func insAtoms(atoms []*unit.Atom) []*item {
	res := make([]*item, len(atoms))
	for i, a := range atoms {
		res[i] = &item{op: opIns, b: a}
	}
	return res
}

// correlateGroups aligns two sibling sequences of groups by exact digest
// and refines whatever does not line up. This is the recursive driver:
// tables, rows, cells, text boxes and notes all descend through it.
func (cc *cmpCtx) correlateGroups(gsA, gsB []*unit.Group) ([]*item, error) {
	spans := align.Align(len(gsA), len(gsB), func(i, j int) bool {
		return gsA[i].Exact == gsB[j].Exact
	})
	if debug.Correlate() {
		for _, sp := range spans {
			debug.Logf("correlate %v\n", sp)
		}
	}
	var res []*item
	for _, sp := range spans {
		switch sp.Status {
		case align.Equal:
			for k := 0; k < sp.ALen(); k++ {
				items, err := cc.pairGroups(gsA[sp.A0+k], gsB[sp.B0+k], true)
				if err != nil {
					return nil, err
				}
				res = append(res, items...)
			}
		case align.Deleted:
			for _, g := range gsA[sp.A0:sp.A1] {
				res = append(res, delItems(g)...)
			}
		case align.Inserted:
			for _, g := range gsB[sp.B0:sp.B1] {
				res = append(res, insItems(g)...)
			}
		case align.Unknown:
			items, err := cc.refineGap(gsA[sp.A0:sp.A1], gsB[sp.B0:sp.B1])
			if err != nil {
				return nil, err
			}
			res = append(res, items...)
		}
	}
	return res, nil
}

// refineGap handles a two-sided gap: groups that exist on both sides but
// did not match exactly. A lone same-kind pair is taken as related and
// refined one level down; longer gaps first recover repositioned or
// reformatted siblings by content digest, then pair leftovers by kind.
func (cc *cmpCtx) refineGap(gsA, gsB []*unit.Group) ([]*item, error) {
	if len(gsA) == 1 && len(gsB) == 1 && gsA[0].Kind() == gsB[0].Kind() {
		return cc.refinePair(gsA[0], gsB[0])
	}
	spans := align.Align(len(gsA), len(gsB), func(i, j int) bool {
		return gsA[i].Content == gsB[j].Content
	})
	var res []*item
	for _, sp := range spans {
		switch sp.Status {
		case align.Equal:
			for k := 0; k < sp.ALen(); k++ {
				items, err := cc.pairGroups(gsA[sp.A0+k], gsB[sp.B0+k], false)
				if err != nil {
					return nil, err
				}
				res = append(res, items...)
			}
		case align.Deleted:
			for _, g := range gsA[sp.A0:sp.A1] {
				res = append(res, delItems(g)...)
			}
		case align.Inserted:
			for _, g := range gsB[sp.B0:sp.B1] {
				res = append(res, insItems(g)...)
			}
		case align.Unknown:
			items, err := cc.kindGap(gsA[sp.A0:sp.A1], gsB[sp.B0:sp.B1])
			if err != nil {
				return nil, err
			}
			res = append(res, items...)
		}
	}
	return res, nil
}

// kindGap pairs what it can by element kind and splits the rest into
// independent deletions and insertions.
func (cc *cmpCtx) kindGap(gsA, gsB []*unit.Group) ([]*item, error) {
	spans := align.Align(len(gsA), len(gsB), func(i, j int) bool {
		return gsA[i].Kind() == gsB[j].Kind()
	})
	var res []*item
	for _, sp := range spans {
		switch sp.Status {
		case align.Equal:
			for k := 0; k < sp.ALen(); k++ {
				items, err := cc.refinePair(gsA[sp.A0+k], gsB[sp.B0+k])
				if err != nil {
					return nil, err
				}
				res = append(res, items...)
			}
		default:
			for _, g := range gsA[sp.A0:sp.A1] {
				res = append(res, delItems(g)...)
			}
			for _, g := range gsB[sp.B0:sp.B1] {
				res = append(res, insItems(g)...)
			}
		}
	}
	return res, nil
}

// refinePair refines one same-kind container pair that is related but not
// equal. Paragraphs go through the word-level detail pass; tables decide
// between positional row pairing, the row matcher and plain recursion;
// the remaining container kinds descend into their members.
func (cc *cmpCtx) refinePair(gA, gB *unit.Group) ([]*item, error) {
	if gA.Kind() != gB.Kind() {
		return nil, fmt.Errorf("%w: refining %s against %s", ErrInternal, gA.Kind(), gB.Kind())
	}
	if gA.Kind() == ir.KindParagraph {
		return cc.pairParagraphs(gA, gB)
	}
	if err := cc.reg.Unify(gA.ID(), gB.ID()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	cc.notePropChange(gA, gB)
	if len(gA.Groups) == 0 && len(gB.Groups) == 0 {
		return []*item{{op: opEqual, shell: gB}}, nil
	}
	if gA.Kind() == ir.KindTable {
		return cc.refineTable(gA, gB)
	}
	return cc.correlateGroups(gA.Groups, gB.Groups)
}

// refineTable aligns the rows of a correlated table pair. Differing row
// counts go through ordinary group correlation. Equal counts pair rows
// positionally, which keeps small tables with ambiguous row semantics
// stable, unless the sequences look reshuffled enough for the row
// matcher to take over.
func (cc *cmpCtx) refineTable(gA, gB *unit.Group) ([]*item, error) {
	rowsA, rowsB := gA.Groups, gB.Groups
	if !allRows(rowsA) || !allRows(rowsB) || len(rowsA) != len(rowsB) {
		return cc.correlateGroups(rowsA, rowsB)
	}
	if rowMatcherApplies(rowsA, rowsB) {
		return cc.matchRows(rowsA, rowsB)
	}
	var res []*item
	for i := range rowsA {
		var items []*item
		var err error
		if rowsA[i].Exact == rowsB[i].Exact {
			items, err = cc.pairGroups(rowsA[i], rowsB[i], true)
		} else {
			items, err = cc.refinePair(rowsA[i], rowsB[i])
		}
		if err != nil {
			return nil, err
		}
		res = append(res, items...)
	}
	return res, nil
}

// pairGroups unifies a correlated pair and zips their members. Exact
// pairs are digest-identical; content pairs may differ in formatting, so
// their atoms carry format-change flags. The two sides must have the
// same unit shape, which equal digests guarantee short of a collision.
func (cc *cmpCtx) pairGroups(gA, gB *unit.Group, exact bool) ([]*item, error) {
	if gA.Kind() != gB.Kind() ||
		len(gA.Groups) != len(gB.Groups) || len(gA.Atoms) != len(gB.Atoms) {
		return nil, fmt.Errorf("%w: digest pairing of unlike groups %s and %s",
			ErrInternal, gA, gB)
	}
	if err := cc.reg.Unify(gA.ID(), gB.ID()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !exact {
		cc.notePropChange(gA, gB)
	}
	if len(gA.Groups) == 0 && len(gA.Atoms) == 0 {
		return []*item{{op: opEqual, shell: gB}}, nil
	}
	var res []*item
	for i := range gA.Groups {
		items, err := cc.pairGroups(gA.Groups[i], gB.Groups[i], exact)
		if err != nil {
			return nil, err
		}
		res = append(res, items...)
	}
	for i := range gA.Atoms {
		aa, ba := gA.Atoms[i], gB.Atoms[i]
		res = append(res, &item{op: opEqual, a: aa, b: ba, fmtChange: !exact && aa.Sig != ba.Sig})
	}
	return res, nil
}

// pairParagraphs runs the word-level pass over one correlated paragraph
// pair: align atoms exactly, then recover format-only changes inside the
// gaps by content digest. The changed-atom ratio against the detail
// threshold decides between one embedded-change paragraph and a full
// delete plus insert; only the embedded form unifies the paragraphs.
func (cc *cmpCtx) pairParagraphs(pA, pB *unit.Group) ([]*item, error) {
	aAtoms, bAtoms := pA.Atoms, pB.Atoms
	spans := align.Align(len(aAtoms), len(bAtoms), func(i, j int) bool {
		return aAtoms[i].Exact == bAtoms[j].Exact
	})

	var res []*item
	changed := 0
	for _, sp := range spans {
		switch sp.Status {
		case align.Equal:
			for k := 0; k < sp.ALen(); k++ {
				res = append(res, &item{op: opEqual, a: aAtoms[sp.A0+k], b: bAtoms[sp.B0+k]})
			}
		case align.Deleted:
			res = append(res, delAtoms(aAtoms[sp.A0:sp.A1])...)
			changed += sp.ALen()
		case align.Inserted:
			res = append(res, insAtoms(bAtoms[sp.B0:sp.B1])...)
			changed += sp.BLen()
		case align.Unknown:
			gapA, gapB := aAtoms[sp.A0:sp.A1], bAtoms[sp.B0:sp.B1]
			sub := align.Align(len(gapA), len(gapB), func(i, j int) bool {
				return gapA[i].Content == gapB[j].Content
			})
			for _, ss := range sub {
				switch ss.Status {
				case align.Equal:
					for k := 0; k < ss.ALen(); k++ {
						aa, ba := gapA[ss.A0+k], gapB[ss.B0+k]
						res = append(res, &item{op: opEqual, a: aa, b: ba, fmtChange: aa.Sig != ba.Sig})
					}
				case align.Deleted:
					res = append(res, delAtoms(gapA[ss.A0:ss.A1])...)
					changed += ss.ALen()
				case align.Inserted:
					res = append(res, insAtoms(gapB[ss.B0:ss.B1])...)
					changed += ss.BLen()
				case align.Unknown:
					res = append(res, delAtoms(gapA[ss.A0:ss.A1])...)
					res = append(res, insAtoms(gapB[ss.B0:ss.B1])...)
					changed += ss.ALen() + ss.BLen()
				}
			}
		}
	}

	total := len(aAtoms) + len(bAtoms)
	ratio := 0.0
	if total > 0 {
		ratio = float64(changed) / float64(total)
	}
	if debug.Correlate() {
		debug.Logf("paragraph pair %s~%s changed %d/%d ratio %.3f\n",
			pA.ID(), pB.ID(), changed, total, ratio)
	}
	if changed > 0 && ratio >= cc.set.DetailThreshold {
		// Too different to embed: report the whole pair as a delete
		// plus insert and leave the paragraphs uncorrelated, so move
		// detection may still claim them.
		return append(delAtoms(aAtoms), insAtoms(bAtoms)...), nil
	}
	if err := cc.reg.Unify(pA.ID(), pB.ID()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return res, nil
}

func allRows(gs []*unit.Group) bool {
	for _, g := range gs {
		if g.Kind() != ir.KindRow {
			return false
		}
	}
	return true
}

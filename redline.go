// Package redline compares two versions of a structured document and
// produces a third, annotated with every difference as an insertion,
// deletion, move or formatting change. The annotated tree is suitable
// for re-serialization as a tracked-changes document; the flat revision
// list for reports and review tooling.
//
// The engine is synchronous and allocation-only: no I/O, no goroutines,
// no package state. Callers may run independent comparisons concurrently.
package redline

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redlinehq/redline/ir"
	"github.com/redlinehq/redline/revision"
	"github.com/redlinehq/redline/unit"
)

var (
	// ErrSettings reports invalid comparison settings, before any work.
	ErrSettings = errors.New("invalid comparison settings")
	// ErrInput reports input trees the engine cannot compare.
	ErrInput = errors.New("invalid input document")
	// ErrInternal reports a violated internal invariant. It indicates a
	// bug in the engine, not bad input; no partial result is returned.
	ErrInternal = errors.New("internal comparison error")
)

// Settings configures one comparison. The zero value is not useful; start
// from NewSettings.
type Settings struct {
	// Author and Date stamp every revision the comparison produces.
	Author string
	Date   time.Time

	// DetailThreshold decides how different two correlated paragraphs may
	// be and still be reported as one paragraph with embedded word-level
	// changes. The changed fraction of their atoms is compared against
	// it: at or above, the pair reports as a full delete plus insert.
	// With a threshold of zero any textual change splits the pair;
	// format-only changes always embed.
	DetailThreshold float64 `validate:"gte=0,lte=1"`

	// CaseInsensitive makes text correlation ignore case.
	CaseInsensitive bool

	// DetectMoves reclassifies matching delete/insert paragraph pairs as
	// moves.
	DetectMoves             bool
	MoveSimilarityThreshold float64 `validate:"gte=0,lte=1"`
	MoveMinimumWordCount    int     `validate:"gte=0"`
}

// NewSettings returns the default comparison settings.
func NewSettings() *Settings {
	return &Settings{
		Author:                  "redline",
		DetailThreshold:         0.15,
		DetectMoves:             true,
		MoveSimilarityThreshold: 0.8,
		MoveMinimumWordCount:    3,
	}
}

// Result is the output of one comparison.
type Result struct {
	// Tree is the reconstructed document: the union of both inputs with
	// revision annotations. The caller owns it.
	Tree *ir.Node

	// Revisions is the flat revision list extracted from Tree, in
	// document order.
	Revisions []revision.Revision
}

var validate = validator.New()

// Compare diffs the revised document against the original. Both inputs
// must be document nodes; neither is modified. A nil settings compares
// with NewSettings.
func Compare(original, revised *ir.Node, settings *Settings) (*Result, error) {
	if settings == nil {
		settings = NewSettings()
	}
	if err := validate.Struct(settings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSettings, err)
	}
	if original == nil || revised == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInput)
	}
	if original.Kind != ir.KindDocument || revised.Kind != ir.KindDocument {
		return nil, fmt.Errorf("%w: comparison inputs must be documents, got %s and %s",
			ErrInput, original.Kind, revised.Kind)
	}

	set := *settings
	if set.Date.IsZero() {
		set.Date = time.Now().UTC()
	}

	// The engine works on private clones: it assigns stable ids and
	// reuses subtrees in the output.
	a, b := original.Clone(), revised.Clone()
	cc := newCmpCtx(&set)

	works, err := cc.comparePartsOf(a, b)
	if err != nil {
		return nil, err
	}
	if set.DetectMoves {
		cc.detectMoves(works)
	}

	out := b.Shell()
	for _, w := range works {
		part := w.identical
		if part == nil {
			part, err = cc.rebuild(w.rec, w.items)
			if err != nil {
				return nil, err
			}
		}
		out.Append(part)
	}
	if err := verifyTree(out); err != nil {
		return nil, err
	}

	revs, err := revision.Extract(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return &Result{Tree: out, Revisions: revs}, nil
}

// partWork is the comparison state of one document part.
type partWork struct {
	name  string
	rec   *unit.Rec
	items []*item

	// identical short-circuits reconstruction when both sides of the
	// part hash equal.
	identical *ir.Node
}

// comparePartsOf pairs parts by name and correlates each pair. Parts
// present on only one side compare against nothing: everything in them is
// deleted or inserted.
func (cc *cmpCtx) comparePartsOf(a, b *ir.Node) ([]*partWork, error) {
	type pair struct {
		name string
		a, b *ir.Node
	}
	var pairs []*pair
	byName := map[string]*pair{}
	for _, part := range a.Kids {
		p := &pair{name: part.Name, a: part}
		pairs = append(pairs, p)
		byName[part.Name] = p
	}
	// A revised-only part keeps its revised position: it lands right
	// after the nearest preceding part both sides share.
	at := 0
	for _, part := range b.Kids {
		if p := byName[part.Name]; p != nil {
			p.b = part
			at = slices.Index(pairs, p) + 1
			continue
		}
		pairs = slices.Insert(pairs, at, &pair{name: part.Name, b: part})
		at++
	}

	var works []*partWork
	for _, p := range pairs {
		w, err := cc.comparePart(p.name, p.a, p.b)
		if err != nil {
			return nil, err
		}
		works = append(works, w)
	}
	return works, nil
}

func (cc *cmpCtx) comparePart(name string, a, b *ir.Node) (*partWork, error) {
	// Identical parts short-circuit: the revised side passes through
	// with no revisions. Folded comparisons skip this, since node
	// digests are case-sensitive.
	if a != nil && b != nil && !cc.fold && a.Digest() == b.Digest() {
		return &partWork{name: name, identical: b}, nil
	}

	var gA, gB *unit.Group
	var err error
	if a != nil {
		if gA, err = unit.Build(cc.reg, unit.SideA, a, cc.buildOpts()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInput, err)
		}
	}
	if b != nil {
		if gB, err = unit.Build(cc.reg, unit.SideB, b, cc.buildOpts()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInput, err)
		}
	}

	w := &partWork{name: name}
	switch {
	case gA != nil && gB != nil:
		if err := cc.reg.Unify(gA.ID(), gB.ID()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		w.rec = cc.reg.Lookup(unit.SideA, gA.ID())
		if w.items, err = cc.correlateGroups(gA.Groups, gB.Groups); err != nil {
			return nil, err
		}
	case gA != nil:
		w.rec = cc.reg.Lookup(unit.SideA, gA.ID())
		for _, g := range gA.Groups {
			w.items = append(w.items, delItems(g)...)
		}
	default:
		w.rec = cc.reg.Lookup(unit.SideB, gB.ID())
		for _, g := range gB.Groups {
			w.items = append(w.items, insItems(g)...)
		}
	}
	return w, nil
}

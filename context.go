package redline

import (
	"github.com/redlinehq/redline/ir"
	"github.com/redlinehq/redline/unit"
)

// cmpCtx threads the per-comparison state: settings, the stable-id
// registry, the revision-id allocator and move annotations. One context
// per Compare call, never shared.
type cmpCtx struct {
	set  *Settings
	reg  *unit.Registry
	fold bool

	revSeq  int
	moveSeq int
	moveOf  map[*unit.Rec]*moveMark

	// propsOld holds the original property set of correlated containers
	// whose formatting changed, keyed by the unified record.
	propsOld map[*unit.Rec]ir.Props
}

func newCmpCtx(set *Settings) *cmpCtx {
	return &cmpCtx{
		set:      set,
		reg:      unit.NewRegistry(),
		fold:     set.CaseInsensitive,
		moveOf:   map[*unit.Rec]*moveMark{},
		propsOld: map[*unit.Rec]ir.Props{},
	}
}

func (cc *cmpCtx) buildOpts() unit.BuildOptions {
	return unit.BuildOptions{Fold: cc.fold}
}

// nextRevID allocates the next revision id. Ids are strictly increasing
// across all parts of one comparison; only a move bracket pair ever
// shares one, by reusing the allocation for both ends.
func (cc *cmpCtx) nextRevID() int {
	cc.revSeq++
	return cc.revSeq
}

// newRev builds a revision annotation stamped with the comparison's
// author and date.
func (cc *cmpCtx) newRev(kind ir.RevKind) *ir.Rev {
	return &ir.Rev{Kind: kind, ID: cc.nextRevID(), Author: cc.set.Author, Date: cc.set.Date}
}

// notePropChange records a correlated container pair whose own properties
// differ; reconstruction stamps the change when it opens the shared
// frame. Paragraph formatting travels on the mark atom instead.
func (cc *cmpCtx) notePropChange(gA, gB *unit.Group) {
	if gA.Kind() == ir.KindParagraph {
		return
	}
	if gA.Node.Props.Signature() == gB.Node.Props.Signature() {
		return
	}
	if rec := cc.reg.Lookup(unit.SideA, gA.ID()); rec != nil {
		cc.propsOld[rec] = gA.Node.Props
	}
}

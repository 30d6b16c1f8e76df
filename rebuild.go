package redline

import (
	"fmt"
	"strings"

	"github.com/redlinehq/redline/debug"
	"github.com/redlinehq/redline/ir"
	"github.com/redlinehq/redline/unit"
)

// rebuild reconstructs one part from its annotated atom stream. Nesting
// comes strictly from each atom's ancestor chain resolved through the
// registry: equal and inserted atoms emit the revised side's containers,
// deleted atoms the original side's, and correlated containers resolve to
// one shared record, so both sides' atoms interleave inside it.
func (cc *cmpCtx) rebuild(partRec *unit.Rec, items []*item) (*ir.Node, error) {
	rb := &rebuilder{cc: cc, part: partRec, opened: map[*unit.Rec]bool{}}
	if err := rb.open(frameDesc{rec: partRec}); err != nil {
		return nil, err
	}
	for _, it := range items {
		if err := rb.emit(it); err != nil {
			return nil, err
		}
	}
	rb.closeTo(1)
	return rb.stack[0].node, nil
}

// frameDesc names a target frame: a registered container, or a paragraph
// synthesized around atoms whose ancestry did not resolve.
type frameDesc struct {
	rec      *unit.Rec
	synthSrc *ir.Node
}

// frame is one open container during reconstruction.
type frame struct {
	rec      *unit.Rec
	synthSrc *ir.Node
	node     *ir.Node

	// mv is set on paragraph frames reclassified as move sides.
	mv *moveMark
	// endBracket closes the move range after this frame's node.
	endBracket *ir.Rev
}

func (f *frame) matches(d frameDesc) bool {
	if d.rec != nil {
		return f.rec == d.rec
	}
	return f.rec == nil && f.synthSrc == d.synthSrc
}

// pending accumulates consecutive run atoms cut from one source run with
// one annotation, so reconstruction coalesces them back into whole runs.
type pending struct {
	op        op
	src       *ir.Node
	oldSig    string
	oldProps  ir.Props
	fmtChange bool
	mv        *moveMark
	text      strings.Builder
}

type rebuilder struct {
	cc     *cmpCtx
	part   *unit.Rec
	stack  []*frame
	opened map[*unit.Rec]bool
	pend   *pending
}

func (rb *rebuilder) top() *frame {
	return rb.stack[len(rb.stack)-1]
}

func (rb *rebuilder) emit(it *item) error {
	if it.shell != nil {
		// A childless container: opening its frames is the whole emit.
		return rb.seek(rb.shellChain(it.shell, it.side()))
	}
	if err := rb.seek(rb.chainOf(it)); err != nil {
		return err
	}
	atom := it.atom()
	switch atom.Kind {
	case ir.KindParagraph:
		rb.flush()
		f := rb.top()
		if f.node.Kind != ir.KindParagraph {
			return fmt.Errorf("%w: paragraph mark lands in %s", ErrInternal, f.node.Kind)
		}
		f.node.MarkRev = rb.markRev(it, f.mv)
	case ir.KindObject:
		rb.flush()
		rb.emitObject(it)
	default:
		rb.bufferRun(it)
	}
	return nil
}

// chainOf resolves the atom's ancestor chain to frame descriptors. An
// unresolvable or truncated chain degrades the atom into a synthesized
// paragraph at the innermost level that did resolve.
func (rb *rebuilder) chainOf(it *item) []frameDesc {
	atom := it.atom()
	side := it.side()
	descs := make([]frameDesc, 0, len(atom.Ancestors))
	for _, id := range atom.Ancestors {
		rec := rb.cc.reg.Lookup(side, id)
		if rec == nil {
			if debug.Rebuild() {
				debug.Logf("dangling ancestor %q under %s\n", id, atom)
			}
			return rb.degrade(descs, atom)
		}
		descs = append(descs, frameDesc{rec: rec})
	}
	if len(descs) == 0 || descs[len(descs)-1].rec.Kind != ir.KindParagraph {
		return rb.degrade(descs, atom)
	}
	return descs
}

// shellChain resolves a childless container's own chain. The ids were
// all registered at build time; a dangling one still degrades to a
// synthesized shell rather than failing.
func (rb *rebuilder) shellChain(g *unit.Group, side unit.Side) []frameDesc {
	descs := make([]frameDesc, 0, len(g.Ancestors))
	for _, id := range g.Ancestors {
		rec := rb.cc.reg.Lookup(side, id)
		if rec == nil {
			if debug.Rebuild() {
				debug.Logf("dangling ancestor %q under %s\n", id, g)
			}
			if len(descs) == 0 {
				descs = append(descs, frameDesc{rec: rb.part})
			}
			return append(descs, frameDesc{synthSrc: g.Node})
		}
		descs = append(descs, frameDesc{rec: rec})
	}
	return descs
}

func (rb *rebuilder) degrade(prefix []frameDesc, atom *unit.Atom) []frameDesc {
	if len(prefix) == 0 {
		prefix = append(prefix, frameDesc{rec: rb.part})
	}
	src := atom.Node
	if atom.Kind != ir.KindParagraph && src.Parent != nil {
		src = src.Parent
	}
	return append(prefix, frameDesc{synthSrc: src})
}

// seek aligns the open container stack with the target chain, closing
// finished frames and opening missing ones.
func (rb *rebuilder) seek(descs []frameDesc) error {
	if descs[0].rec != rb.part {
		return fmt.Errorf("%w: atom emitted into wrong part %s", ErrInternal, rb.part.ID)
	}
	n := 0
	for n < len(rb.stack) && n < len(descs) && rb.stack[n].matches(descs[n]) {
		n++
	}
	rb.closeTo(n)
	for _, d := range descs[n:] {
		if err := rb.open(d); err != nil {
			return err
		}
	}
	return nil
}

func (rb *rebuilder) closeTo(n int) {
	for len(rb.stack) > n {
		rb.flush()
		f := rb.stack[len(rb.stack)-1]
		rb.stack = rb.stack[:len(rb.stack)-1]
		if f.endBracket != nil {
			rb.top().node.Append(ir.Markup(ir.KindMoveRangeEnd, f.endBracket.Clone()))
		}
	}
}

func (rb *rebuilder) open(d frameDesc) error {
	rb.flush()
	if d.rec == nil {
		node := d.synthSrc.Shell()
		rb.top().node.Append(node)
		rb.stack = append(rb.stack, &frame{synthSrc: d.synthSrc, node: node})
		return nil
	}

	rec := d.rec
	if rb.opened[rec] {
		return fmt.Errorf("%w: container %s reopened, its atoms are not contiguous", ErrInternal, rec.ID)
	}
	rb.opened[rec] = true

	f := &frame{rec: rec, node: rec.Element().Shell()}
	oneSided := rec.A == nil || rec.B == nil
	if rec.Kind == ir.KindParagraph {
		if f.mv = rb.cc.moveOf[rec]; f.mv != nil {
			kind := ir.RevMoveTo
			if f.mv.source {
				kind = ir.RevMoveFrom
			}
			br := rb.cc.newRev(kind)
			br.MoveName = f.mv.name
			br.Source = f.mv.source
			rb.top().node.Append(ir.Markup(ir.KindMoveRangeStart, br))
			f.endBracket = br
		}
	} else if oneSided {
		kind := ir.RevIns
		if rec.B == nil {
			kind = ir.RevDel
		}
		f.node.Rev = rb.cc.newRev(kind)
	} else if old, ok := rb.cc.propsOld[rec]; ok {
		rev := rb.cc.newRev(ir.RevPropChange)
		rev.OldProps = old.Clone()
		f.node.Rev = rev
	}
	if len(rb.stack) > 0 {
		rb.top().node.Append(f.node)
	}
	rb.stack = append(rb.stack, f)
	return nil
}

func (rb *rebuilder) bufferRun(it *item) {
	atom := it.atom()
	oldSig := ""
	if it.op == opEqual {
		oldSig = it.a.Sig
	}
	if p := rb.pend; p != nil && p.op == it.op && p.src == atom.Node && p.oldSig == oldSig {
		p.text.WriteString(atom.Text)
		return
	}
	rb.flush()
	p := &pending{op: it.op, src: atom.Node, oldSig: oldSig, fmtChange: it.fmtChange, mv: rb.top().mv}
	if it.fmtChange {
		p.oldProps = it.a.Node.Props
	}
	p.text.WriteString(atom.Text)
	rb.pend = p
}

// flush materializes the pending run into the current frame, wrapped in
// revision markup when it is not shared content.
func (rb *rebuilder) flush() {
	p := rb.pend
	if p == nil {
		return
	}
	rb.pend = nil
	run := ir.Run(p.src.Props.Clone(), p.text.String())
	f := rb.top()
	if p.op == opEqual {
		if p.fmtChange {
			rev := rb.cc.newRev(ir.RevPropChange)
			rev.OldProps = p.oldProps.Clone()
			run.Rev = rev
		}
		f.node.Append(run)
		return
	}
	f.node.Append(ir.Markup(wrapKind(p.op, p.mv), rb.wrapRev(p.op, p.mv), run))
}

func (rb *rebuilder) emitObject(it *item) {
	atom := it.atom()
	node := atom.Node.Shell()
	f := rb.top()
	if it.op == opEqual {
		if it.fmtChange {
			rev := rb.cc.newRev(ir.RevPropChange)
			rev.OldProps = it.a.Node.Props.Clone()
			node.Rev = rev
		}
		f.node.Append(node)
		return
	}
	f.node.Append(ir.Markup(wrapKind(it.op, f.mv), rb.wrapRev(it.op, f.mv), node))
}

func (rb *rebuilder) markRev(it *item, mv *moveMark) *ir.Rev {
	switch it.op {
	case opDel, opIns:
		r := rb.wrapRev(it.op, mv)
		return r
	default:
		if !it.fmtChange {
			return nil
		}
		r := rb.cc.newRev(ir.RevPropChange)
		r.OldProps = it.a.Node.Props.Clone()
		return r
	}
}

func wrapKind(o op, mv *moveMark) ir.Kind {
	if o == opDel {
		if mv != nil {
			return ir.KindMoveFrom
		}
		return ir.KindDel
	}
	if mv != nil {
		return ir.KindMoveTo
	}
	return ir.KindIns
}

func (rb *rebuilder) wrapRev(o op, mv *moveMark) *ir.Rev {
	var r *ir.Rev
	switch {
	case o == opDel && mv != nil:
		r = rb.cc.newRev(ir.RevMoveFrom)
	case o == opDel:
		r = rb.cc.newRev(ir.RevDel)
	case mv != nil:
		r = rb.cc.newRev(ir.RevMoveTo)
	default:
		r = rb.cc.newRev(ir.RevIns)
	}
	if mv != nil {
		r.MoveName = mv.name
		r.Source = mv.source
	}
	return r
}

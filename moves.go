package redline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/redlinehq/redline/debug"
	"github.com/redlinehq/redline/ir"
	"github.com/redlinehq/redline/unit"
)

// moveMark annotates a paragraph record reclassified as one side of a
// move. Reconstruction renders its runs as move markup instead of plain
// deletion or insertion and brackets the paragraph with a range pair.
type moveMark struct {
	name   string
	source bool
}

// moveCand is one side's candidate paragraph: fully deleted or fully
// inserted, with its word profile.
type moveCand struct {
	rec   *unit.Rec
	words map[string]bool
	count int
	order int
}

// detectMoves pairs deleted paragraphs with inserted ones by Jaccard
// similarity over their word sets, greedily by descending similarity and
// then document order. It runs over the combined item stream of all
// parts, so relocations across parts pair too. Only whole one-sided
// paragraphs qualify; pairs embedded as word-level changes are never
// reconsidered. Detection annotates paragraph records and changes no
// item: downstream, only the marker kinds differ.
func (cc *cmpCtx) detectMoves(works []*partWork) {
	var dels, inss []*moveCand
	delBy := map[*unit.Rec]*moveCand{}
	insBy := map[*unit.Rec]*moveCand{}

	order := 0
	for _, w := range works {
		for _, it := range w.items {
			order++
			if it.op == opEqual || it.shell != nil {
				continue
			}
			rec := cc.paragraphOf(it)
			if rec == nil {
				continue
			}
			var cand *moveCand
			if it.op == opDel {
				if cand = delBy[rec]; cand == nil {
					cand = &moveCand{rec: rec, words: map[string]bool{}, order: order}
					delBy[rec] = cand
					dels = append(dels, cand)
				}
			} else {
				if cand = insBy[rec]; cand == nil {
					cand = &moveCand{rec: rec, words: map[string]bool{}, order: order}
					insBy[rec] = cand
					inss = append(inss, cand)
				}
			}
			atom := it.atom()
			if atom.Mark() || !unit.IsWord(atom.Text) {
				continue
			}
			word := strings.TrimSpace(atom.Text)
			if cc.fold {
				word = strings.ToLower(word)
			}
			cand.words[word] = true
			cand.count++
		}
	}

	minWords := cc.set.MoveMinimumWordCount
	type pairing struct {
		sim  float64
		d, i *moveCand
	}
	var pairs []pairing
	for _, d := range dels {
		if d.count < minWords {
			continue
		}
		for _, i := range inss {
			if i.count < minWords {
				continue
			}
			sim := jaccard(d.words, i.words)
			if sim >= cc.set.MoveSimilarityThreshold {
				pairs = append(pairs, pairing{sim: sim, d: d, i: i})
			}
		}
	}
	sort.Slice(pairs, func(x, y int) bool {
		if pairs[x].sim != pairs[y].sim {
			return pairs[x].sim > pairs[y].sim
		}
		if pairs[x].d.order != pairs[y].d.order {
			return pairs[x].d.order < pairs[y].d.order
		}
		return pairs[x].i.order < pairs[y].i.order
	})

	for _, p := range pairs {
		if cc.moveOf[p.d.rec] != nil || cc.moveOf[p.i.rec] != nil {
			continue
		}
		cc.moveSeq++
		name := fmt.Sprintf("move%d", cc.moveSeq)
		cc.moveOf[p.d.rec] = &moveMark{name: name, source: true}
		cc.moveOf[p.i.rec] = &moveMark{name: name, source: false}
		if debug.Moves() {
			debug.Logf("move %s: %s -> %s similarity %.3f\n", name, p.d.rec.ID, p.i.rec.ID, p.sim)
		}
	}
}

// paragraphOf resolves the item's enclosing paragraph if, and only if, it
// qualifies as a move candidate: the paragraph exists on one side only
// and is the outermost one-sided unit, so the move markup lands in
// content both document versions share.
func (cc *cmpCtx) paragraphOf(it *item) *unit.Rec {
	chain := it.atom().Ancestors
	if len(chain) < 2 {
		return nil
	}
	side := it.side()
	rec := cc.reg.Lookup(side, chain[len(chain)-1])
	if rec == nil || rec.Kind != ir.KindParagraph {
		return nil
	}
	if rec.A != nil && rec.B != nil {
		return nil
	}
	parent := cc.reg.Lookup(side, chain[len(chain)-2])
	if parent == nil || parent.A == nil || parent.B == nil {
		return nil
	}
	return rec
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if b[w] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

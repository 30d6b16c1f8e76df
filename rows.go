package redline

import (
	"github.com/redlinehq/redline/align"
	"github.com/redlinehq/redline/debug"
	"github.com/redlinehq/redline/ir"
	"github.com/redlinehq/redline/unit"
)

// The row matcher only engages on tables large enough for row identity to
// be unambiguous; small tables with merged cells or floating objects pair
// positionally instead.
const rowMatcherMinRows = 7

// rowMatcherApplies reports whether two equal-length row sequences should
// be re-aligned by content: enough rows, more than a third of positions
// mismatching, and at least half the original rows' content digests still
// present on the revised side.
func rowMatcherApplies(rowsA, rowsB []*unit.Group) bool {
	n := len(rowsA)
	if n < rowMatcherMinRows || n != len(rowsB) {
		return false
	}
	mismatch := 0
	for i := range rowsA {
		if rowsA[i].Content != rowsB[i].Content {
			mismatch++
		}
	}
	if 3*mismatch <= n {
		return false
	}
	inB := map[ir.Digest]bool{}
	for _, r := range rowsB {
		inB[r.Content] = true
	}
	shared := 0
	for _, r := range rowsA {
		if inB[r.Content] {
			shared++
		}
	}
	return 2*shared >= n
}

// matchRows recovers the true row-level edit script of a reshuffled
// table: an LCS over row content digests, refined at cell level for the
// matched rows. The script's two sides may end up unequal in count even
// though the input row counts matched.
func (cc *cmpCtx) matchRows(rowsA, rowsB []*unit.Group) ([]*item, error) {
	if debug.Correlate() {
		debug.Logf("row matcher over %d rows\n", len(rowsA))
	}
	spans := align.Align(len(rowsA), len(rowsB), func(i, j int) bool {
		return rowsA[i].Content == rowsB[j].Content
	})
	var res []*item
	for _, sp := range spans {
		switch sp.Status {
		case align.Equal:
			for k := 0; k < sp.ALen(); k++ {
				items, err := cc.pairGroups(rowsA[sp.A0+k], rowsB[sp.B0+k], false)
				if err != nil {
					return nil, err
				}
				res = append(res, items...)
			}
		case align.Deleted:
			for _, g := range rowsA[sp.A0:sp.A1] {
				res = append(res, delItems(g)...)
			}
		case align.Inserted:
			for _, g := range rowsB[sp.B0:sp.B1] {
				res = append(res, insItems(g)...)
			}
		case align.Unknown:
			// Rows that match nothing on the other side: pair head to
			// head at cell level and split the overhang.
			gapA, gapB := rowsA[sp.A0:sp.A1], rowsB[sp.B0:sp.B1]
			n := len(gapA)
			if len(gapB) < n {
				n = len(gapB)
			}
			for k := 0; k < n; k++ {
				items, err := cc.refinePair(gapA[k], gapB[k])
				if err != nil {
					return nil, err
				}
				res = append(res, items...)
			}
			for _, g := range gapA[n:] {
				res = append(res, delItems(g)...)
			}
			for _, g := range gapB[n:] {
				res = append(res, insItems(g)...)
			}
		}
	}
	return res, nil
}

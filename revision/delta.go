package revision

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type DeltaOp int

const (
	DeltaEqual DeltaOp = iota
	DeltaDelete
	DeltaInsert
)

func (o DeltaOp) String() string {
	switch o {
	case DeltaDelete:
		return "delete"
	case DeltaInsert:
		return "insert"
	default:
		return "equal"
	}
}

// DeltaSpan is one stretch of a character-level text difference.
type DeltaSpan struct {
	Op   DeltaOp
	Text string
}

// Delta renders the character-level difference between two texts, for
// summary views of replaced content. Spans come back in reading order
// with semantic cleanup applied.
func Delta(old, new string) []DeltaSpan {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(old, new, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	res := make([]DeltaSpan, 0, len(diffs))
	for i := range diffs {
		span := DeltaSpan{Text: diffs[i].Text}
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			span.Op = DeltaDelete
		case diffpatch.DiffInsert:
			span.Op = DeltaInsert
		default:
			span.Op = DeltaEqual
		}
		res = append(res, span)
	}
	return res
}

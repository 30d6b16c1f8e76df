package ir

import "fmt"

// Kind identifies the kind of a document tree node. The set is closed:
// comparison, reconstruction and encoding all dispatch over it exhaustively.
type Kind int

const (
	KindDocument Kind = iota
	KindPart
	KindParagraph
	KindTable
	KindRow
	KindCell
	KindTextBox
	KindFootnote
	KindEndnote
	KindRun
	KindObject

	// Revision markup kinds appear only in reconstructed output trees.
	KindIns
	KindDel
	KindMoveFrom
	KindMoveTo
	KindMoveRangeStart
	KindMoveRangeEnd
)

var kindNames = map[Kind]string{
	KindDocument:       "document",
	KindPart:           "part",
	KindParagraph:      "paragraph",
	KindTable:          "table",
	KindRow:            "row",
	KindCell:           "cell",
	KindTextBox:        "textbox",
	KindFootnote:       "footnote",
	KindEndnote:        "endnote",
	KindRun:            "run",
	KindObject:         "object",
	KindIns:            "ins",
	KindDel:            "del",
	KindMoveFrom:       "moveFrom",
	KindMoveTo:         "moveTo",
	KindMoveRangeStart: "moveRangeStart",
	KindMoveRangeEnd:   "moveRangeEnd",
}

func Kinds() []Kind {
	res := make([]Kind, 0, len(kindNames))
	for k := KindDocument; k <= KindMoveRangeEnd; k++ {
		res = append(res, k)
	}
	return res
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrKind, int(k))
	}
	return []byte(s), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	s := string(d)
	for kk, name := range kindNames {
		if name == s {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrKind, s)
}

// Container reports whether nodes of this kind hold block-level content and
// therefore carry a StableID through comparison. Runs, objects and revision
// markup are not containers.
func (k Kind) Container() bool {
	switch k {
	case KindDocument, KindPart, KindParagraph, KindTable, KindRow,
		KindCell, KindTextBox, KindFootnote, KindEndnote:
		return true
	}
	return false
}

// Inline reports whether nodes of this kind carry leaf content directly.
func (k Kind) Inline() bool {
	return k == KindRun || k == KindObject
}

// Markup reports whether nodes of this kind are revision markup produced by
// reconstruction rather than document content.
func (k Kind) Markup() bool {
	switch k {
	case KindIns, KindDel, KindMoveFrom, KindMoveTo,
		KindMoveRangeStart, KindMoveRangeEnd:
		return true
	}
	return false
}

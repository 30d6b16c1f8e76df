package ir

import (
	"fmt"
	"time"
)

// RevKind classifies a revision annotation.
type RevKind int

const (
	RevIns RevKind = iota
	RevDel
	RevMoveFrom
	RevMoveTo
	RevPropChange
)

var revKindNames = map[RevKind]string{
	RevIns:        "ins",
	RevDel:        "del",
	RevMoveFrom:   "moveFrom",
	RevMoveTo:     "moveTo",
	RevPropChange: "propChange",
}

func (k RevKind) String() string {
	if s, ok := revKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("revKind(%d)", int(k))
}

func (k RevKind) MarshalText() ([]byte, error) {
	s, ok := revKindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: rev kind %d", ErrKind, int(k))
	}
	return []byte(s), nil
}

func (k *RevKind) UnmarshalText(d []byte) error {
	s := string(d)
	for kk, name := range revKindNames {
		if name == s {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("%w: rev kind %q", ErrKind, s)
}

// Rev is one revision annotation: metadata for a markup node (KindIns,
// KindDel, move wrappers and brackets) or the revision membership of a
// container / paragraph mark. A move bracket pair shares one ID; all other
// ids are unique within a comparison.
type Rev struct {
	Kind   RevKind   `json:"kind"`
	ID     int       `json:"id"`
	Author string    `json:"author,omitempty"`
	Date   time.Time `json:"date,omitzero"`

	// MoveName groups the source and destination of one move; Source
	// distinguishes the two sides.
	MoveName string `json:"moveName,omitempty"`
	Source   bool   `json:"source,omitempty"`

	// OldProps holds the pre-change property set for RevPropChange.
	OldProps Props `json:"oldProps,omitempty"`
}

func (r *Rev) Clone() *Rev {
	if r == nil {
		return nil
	}
	res := *r
	res.OldProps = r.OldProps.Clone()
	return &res
}

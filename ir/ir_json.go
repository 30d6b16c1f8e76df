package ir

import (
	"encoding/json"
	"fmt"
)

type nodeJSON struct {
	Kind     Kind    `json:"kind"`
	StableID string  `json:"stableId,omitempty"`
	Name     string  `json:"name,omitempty"`
	Text     string  `json:"text,omitempty"`
	Props    Props   `json:"props,omitempty"`
	Kids     []*Node `json:"kids,omitempty"`
	Rev      *Rev    `json:"rev,omitempty"`
	MarkRev  *Rev    `json:"markRev,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(&nodeJSON{
		Kind:     n.Kind,
		StableID: n.StableID,
		Name:     n.Name,
		Text:     n.Text,
		Props:    n.Props,
		Kids:     n.Kids,
		Rev:      n.Rev,
		MarkRev:  n.MarkRev,
	})
}

func (n *Node) UnmarshalJSON(d []byte) error {
	tmp := &nodeJSON{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	n.Kind = tmp.Kind
	n.StableID = tmp.StableID
	n.Name = tmp.Name
	n.Text = tmp.Text
	n.Props = tmp.Props
	n.Kids = tmp.Kids
	n.Rev = tmp.Rev
	n.MarkRev = tmp.MarkRev

	switch n.Kind {
	case KindRun:
		if len(n.Kids) != 0 {
			return fmt.Errorf("%w: run with %d kids", ErrMalformed, len(n.Kids))
		}
	case KindObject:
		if len(n.Kids) != 0 {
			return fmt.Errorf("%w: object with %d kids", ErrMalformed, len(n.Kids))
		}
		if n.Name == "" {
			return fmt.Errorf("%w: object without a key", ErrMalformed)
		}
	case KindPart:
		if n.Name == "" {
			return fmt.Errorf("%w: part without a name", ErrMalformed)
		}
	default:
		if n.Text != "" {
			return fmt.Errorf("%w: text on %s node", ErrMalformed, n.Kind)
		}
	}
	if n.MarkRev != nil && n.Kind != KindParagraph {
		return fmt.Errorf("%w: paragraph mark revision on %s node", ErrMalformed, n.Kind)
	}
	for i, kid := range n.Kids {
		kid.Parent = n
		kid.ParentIndex = i
	}
	return nil
}

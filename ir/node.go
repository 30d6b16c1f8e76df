package ir

import (
	"strconv"
	"strings"
)

// Node is one element of a document tree: a structural container
// (document, part, paragraph, table, row, cell, text box, footnote,
// endnote), inline content (run, object), or revision markup wrapping
// the content it annotates. Markup kinds appear in reconstructed output
// trees only.
type Node struct {
	Kind        Kind
	Parent      *Node
	ParentIndex int

	// StableID identifies a container across the two sides of a
	// comparison. Assigned once per source document and preserved.
	StableID string

	// Name is the part name for KindPart (body, header-1, footnotes, ...)
	// and the identity key for KindObject (e.g. an image digest).
	Name string

	// Text is the run text for KindRun.
	Text string

	// Props holds the element's properties: run formatting for KindRun,
	// paragraph/table/row/cell properties for containers.
	Props Props

	Kids []*Node

	// Rev annotates this element's revision membership in output trees:
	// markup kinds carry their own metadata here, containers record
	// wholesale insertion/deletion/move membership.
	Rev *Rev

	// MarkRev is the paragraph mark's revision for KindParagraph: a
	// deleted mark merges the paragraph into its successor, a property
	// change records reformatting of the mark.
	MarkRev *Rev

	digest *Digest
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.StableID = n.StableID
	dst.Name = n.Name
	dst.Text = n.Text
	dst.Props = n.Props.Clone()
	dst.Rev = n.Rev.Clone()
	dst.MarkRev = n.MarkRev.Clone()
	dst.Kids = make([]*Node, len(n.Kids))
	for i, kid := range n.Kids {
		dstKid := &Node{}
		kid.CloneTo(dstKid)
		dstKid.Parent = dst
		dstKid.ParentIndex = i
		dst.Kids[i] = dstKid
	}
	return dst
}

// Shell returns a copy of n without kids, revision annotations or parent
// links. Reconstruction opens container shells and refills them.
func (n *Node) Shell() *Node {
	return &Node{
		Kind:     n.Kind,
		StableID: n.StableID,
		Name:     n.Name,
		Text:     n.Text,
		Props:    n.Props.Clone(),
	}
}

// Append adds kids to n, fixing parent links and invalidating memoized
// digests along the ancestor chain.
func (n *Node) Append(kids ...*Node) *Node {
	for _, kid := range kids {
		kid.Parent = n
		kid.ParentIndex = len(n.Kids)
		n.Kids = append(n.Kids, kid)
	}
	n.invalidate()
	return n
}

func (n *Node) SetText(text string) *Node {
	n.Text = text
	n.invalidate()
	return n
}

func (n *Node) SetProps(props Props) *Node {
	n.Props = props
	n.invalidate()
	return n
}

func (n *Node) WithID(id string) *Node {
	n.StableID = id
	return n
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Visit walks the subtree rooted at n in document order. f is called with
// isPost=false before a node's kids and isPost=true after; returning
// dive=false skips the kids.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, kid := range n.Kids {
			if err := kid.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Part returns the named part of a document node, or nil.
func (n *Node) Part(name string) *Node {
	if n.Kind != KindDocument {
		return nil
	}
	for _, kid := range n.Kids {
		if kid.Kind == KindPart && kid.Name == name {
			return kid
		}
	}
	return nil
}

// PartNames returns the document's part names in order.
func (n *Node) PartNames() []string {
	var res []string
	for _, kid := range n.Kids {
		if kid.Kind == KindPart {
			res = append(res, kid.Name)
		}
	}
	return res
}

// PlainText returns the concatenated run text of the subtree, with one
// newline per paragraph mark. Intended for diagnostics and summaries.
func (n *Node) PlainText() string {
	var sb strings.Builder
	n.Visit(func(nn *Node, isPost bool) (bool, error) {
		if isPost {
			if nn.Kind == KindParagraph {
				sb.WriteByte('\n')
			}
			return true, nil
		}
		if nn.Kind == KindRun {
			sb.WriteString(nn.Text)
		}
		return true, nil
	})
	return sb.String()
}

// Path returns a readable location of the node for error messages, e.g.
// "$.part(body).paragraph[2].run[0]".
func (n *Node) Path() string {
	if n.Parent == nil {
		return "$"
	}
	prefix := n.Parent.Path()
	switch n.Kind {
	case KindPart:
		return prefix + ".part(" + n.Name + ")"
	default:
		return prefix + "." + n.Kind.String() + "[" + strconv.Itoa(n.ParentIndex) + "]"
	}
}

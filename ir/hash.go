package ir

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest is a BLAKE3 digest of a node's content and structure.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first 8 hex digits, for logs and summaries.
func (d Digest) Short() string {
	return hex.EncodeToString(d[:4])
}

// Digest returns the structural digest of the subtree rooted at n:
// kind, name, properties, run text and the ordered digests of the kids.
// Revision annotations are excluded. Digests are memoized per node and
// invalidated by Append, SetText and SetProps.
// It panics if n is nil.
func (n *Node) Digest() Digest {
	if n == nil {
		panic("ir: Digest called on nil node")
	}
	if n.digest != nil {
		return *n.digest
	}

	h := blake3.New()
	h.Write([]byte{byte(n.Kind)})
	writeString(h, n.Name)
	writeString(h, n.Props.Signature())
	writeString(h, n.Text)
	for _, kid := range n.Kids {
		d := kid.Digest()
		h.Write(d[:])
	}

	var res Digest
	copy(res[:], h.Sum(nil))
	n.digest = &res
	return res
}

func writeString(h *blake3.Hasher, s string) {
	// Length framing keeps adjacent fields from running together.
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(len(s)))
	h.Write(b[:])
	h.Write([]byte(s))
}

func (n *Node) invalidate() {
	// A memoized ancestor implies every node below it is memoized, so the
	// walk can stop at the first node with no digest.
	for a := n; a != nil; a = a.Parent {
		a.digest = nil
		if a.Parent != nil && a.Parent.digest == nil {
			return
		}
	}
}

package unit

import (
	"encoding/binary"
	"strings"

	"github.com/redlinehq/redline/ir"
	"github.com/zeebo/blake3"
)

// Atom digests: exact covers the object key, formatting signature and
// text; content drops the signature so atoms match across formatting
// changes. With fold set, text is case-folded into both, making case
// differences invisible to correlation. Paragraph marks have no text, so
// their content digest is a constant that pairs any two marks.
func (a *Atom) digest(fold bool) {
	text := a.Text
	if fold {
		text = strings.ToLower(text)
	}
	key := ""
	if a.Kind == ir.KindObject {
		key = a.Node.Name
	}
	a.Exact = digestOf(byte(a.Kind), key, a.Sig, text)
	a.Content = digestOf(byte(a.Kind), key, text)
}

// Group digests combine kid digests bottom-up in document order: exact
// over kid exacts plus the container's own properties, content over kid
// contents alone. Neither includes the group's position among its
// siblings, so a relocated unit keeps its digests.
func (g *Group) digest() {
	he := blake3.New()
	hc := blake3.New()
	he.Write([]byte{byte(g.Kind())})
	hc.Write([]byte{byte(g.Kind())})
	writeString(he, g.Node.Name)
	writeString(hc, g.Node.Name)
	writeString(he, g.Node.Props.Signature())
	for _, kid := range g.Groups {
		he.Write(kid.Exact[:])
		hc.Write(kid.Content[:])
	}
	for _, a := range g.Atoms {
		he.Write(a.Exact[:])
		hc.Write(a.Content[:])
	}
	copy(g.Exact[:], he.Sum(nil))
	copy(g.Content[:], hc.Sum(nil))
}

func digestOf(kind byte, parts ...string) ir.Digest {
	h := blake3.New()
	h.Write([]byte{kind})
	for _, p := range parts {
		writeString(h, p)
	}
	var res ir.Digest
	copy(res[:], h.Sum(nil))
	return res
}

func writeString(h *blake3.Hasher, s string) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(len(s)))
	h.Write(b[:])
	h.Write([]byte(s))
}

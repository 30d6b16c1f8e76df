package ir

// Constructors for building document trees programmatically: adapters and
// tests use these rather than filling Node fields by hand, so parent links
// and indexes stay consistent.

func newNode(kind Kind, kids ...*Node) *Node {
	res := &Node{Kind: kind}
	res.Kids = make([]*Node, len(kids))
	for i, kid := range kids {
		kid.Parent = res
		kid.ParentIndex = i
		res.Kids[i] = kid
	}
	return res
}

// Doc builds a document node from parts.
func Doc(parts ...*Node) *Node {
	return newNode(KindDocument, parts...)
}

// Part builds a named document part (body, header-1, footer-1, footnotes,
// endnotes, ...).
func Part(name string, kids ...*Node) *Node {
	res := newNode(KindPart, kids...)
	res.Name = name
	return res
}

// Body is shorthand for the main body part.
func Body(kids ...*Node) *Node {
	return Part(PartBody, kids...)
}

const (
	PartBody      = "body"
	PartFootnotes = "footnotes"
	PartEndnotes  = "endnotes"
)

func Para(kids ...*Node) *Node {
	return newNode(KindParagraph, kids...)
}

// Text builds an unformatted run.
func Text(text string) *Node {
	res := &Node{Kind: KindRun}
	res.Text = text
	return res
}

// Run builds a formatted run.
func Run(props Props, text string) *Node {
	res := Text(text)
	res.Props = props
	return res
}

func Tbl(rows ...*Node) *Node {
	return newNode(KindTable, rows...)
}

func Row(cells ...*Node) *Node {
	return newNode(KindRow, cells...)
}

func Cell(kids ...*Node) *Node {
	return newNode(KindCell, kids...)
}

func TextBox(kids ...*Node) *Node {
	return newNode(KindTextBox, kids...)
}

func Footnote(kids ...*Node) *Node {
	return newNode(KindFootnote, kids...)
}

func Endnote(kids ...*Node) *Node {
	return newNode(KindEndnote, kids...)
}

// Object builds an opaque non-text element (image, break, field). The key
// is its identity for comparison: equal keys compare equal.
func Object(key string, props Props) *Node {
	res := &Node{Kind: KindObject}
	res.Name = key
	res.Props = props
	return res
}

// Markup builds a revision markup node wrapping kids. Used by
// reconstruction for KindIns, KindDel, KindMoveFrom, KindMoveTo and the
// empty move range brackets.
func Markup(kind Kind, rev *Rev, kids ...*Node) *Node {
	res := newNode(kind, kids...)
	res.Rev = rev
	return res
}

package ir

import (
	"strings"
	"testing"
)

func sampleDoc() *Node {
	return Doc(
		Body(
			Para(Text("Hello, "), Run(Props{"b": "1"}, "world")),
			Tbl(
				Row(Cell(Para(Text("a"))), Cell(Para(Text("b")))),
			),
		),
		Part(PartFootnotes,
			Footnote(Para(Text("a note"))),
		),
	)
}

func TestCloneIsDeep(t *testing.T) {
	orig := sampleDoc()
	cp := orig.Clone()

	if cp.Digest() != orig.Digest() {
		t.Fatalf("clone digest differs: %s vs %s", cp.Digest().Short(), orig.Digest().Short())
	}
	// Mutating the clone must not leak into the original.
	cp.Part(PartBody).Kids[0].Kids[0].SetText("bye")
	if cp.Digest() == orig.Digest() {
		t.Fatal("mutation of clone reflected in original")
	}
	if got := orig.Part(PartBody).Kids[0].Kids[0].Text; got != "Hello, " {
		t.Fatalf("original text changed: %q", got)
	}
}

func TestCloneParentLinks(t *testing.T) {
	cp := sampleDoc().Clone()
	err := cp.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		for i, kid := range n.Kids {
			if kid.Parent != n {
				t.Errorf("%s: kid %d has wrong parent", n.Path(), i)
			}
			if kid.ParentIndex != i {
				t.Errorf("%s: kid %d has index %d", n.Path(), i, kid.ParentIndex)
			}
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestShell(t *testing.T) {
	para := Para(Text("x")).WithID("p1")
	para.Rev = &Rev{Kind: RevIns, ID: 3}
	sh := para.Shell()
	if len(sh.Kids) != 0 {
		t.Fatalf("shell kept %d kids", len(sh.Kids))
	}
	if sh.Rev != nil || sh.Parent != nil {
		t.Fatal("shell kept revision or parent link")
	}
	if sh.StableID != "p1" || sh.Kind != KindParagraph {
		t.Fatalf("shell lost identity: %s %q", sh.Kind, sh.StableID)
	}
}

func TestVisitOrder(t *testing.T) {
	doc := Doc(Body(Para(Text("a"), Text("b"))))
	var trace []string
	doc.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			trace = append(trace, "/"+n.Kind.String())
		} else {
			trace = append(trace, n.Kind.String())
		}
		return true, nil
	})
	got := strings.Join(trace, " ")
	want := "document part paragraph run /run run /run /paragraph /part /document"
	if got != want {
		t.Fatalf("visit order\n got: %s\nwant: %s", got, want)
	}
}

func TestVisitSkipsKids(t *testing.T) {
	doc := Doc(Body(Para(Text("a"))))
	var kinds []string
	doc.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			kinds = append(kinds, n.Kind.String())
		}
		return n.Kind != KindPart, nil
	})
	got := strings.Join(kinds, " ")
	if got != "document part" {
		t.Fatalf("dive=false dived anyway: %s", got)
	}
}

func TestParts(t *testing.T) {
	doc := sampleDoc()
	if doc.Part(PartBody) == nil || doc.Part(PartFootnotes) == nil {
		t.Fatal("missing part")
	}
	if doc.Part("header-1") != nil {
		t.Fatal("found part that is not there")
	}
	names := doc.PartNames()
	if len(names) != 2 || names[0] != PartBody || names[1] != PartFootnotes {
		t.Fatalf("part names: %v", names)
	}
}

func TestPlainText(t *testing.T) {
	doc := Doc(Body(
		Para(Text("Hello, "), Run(Props{"b": "1"}, "world")),
		Para(Text("bye")),
	))
	if got := doc.PlainText(); got != "Hello, world\nbye\n" {
		t.Fatalf("plain text: %q", got)
	}
}

func TestPath(t *testing.T) {
	doc := sampleDoc()
	run := doc.Part(PartBody).Kids[0].Kids[1]
	if got := run.Path(); got != "$.part(body).paragraph[0].run[1]" {
		t.Fatalf("path: %s", got)
	}
	cell := doc.Part(PartBody).Kids[1].Kids[0].Kids[1]
	if got := cell.Path(); got != "$.part(body).table[1].row[0].cell[1]" {
		t.Fatalf("path: %s", got)
	}
}

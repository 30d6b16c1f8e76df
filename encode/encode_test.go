package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/redlinehq/redline/ir"
)

func TestEncode(t *testing.T) {
	delTbl := ir.Tbl(ir.Row(ir.Cell(ir.Para(ir.Text("gone")))))
	delTbl.Rev = &ir.Rev{Kind: ir.RevDel, ID: 6}

	delMark := ir.Para(ir.Text("a"))
	delMark.MarkRev = &ir.Rev{Kind: ir.RevDel, ID: 2}

	fmtRun := ir.Run(ir.Props{"b": "1"}, "bold")
	fmtRun.Rev = &ir.Rev{Kind: ir.RevPropChange, ID: 5}

	br := &ir.Rev{Kind: ir.RevMoveTo, ID: 3, MoveName: "move1"}

	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{
			name: "document",
			node: ir.Doc(ir.Body(ir.Para(ir.Text("Hello world")))),
			want: "document\n" +
				"  part body\n" +
				"    paragraph \"Hello world\" ¶\n",
		},
		{
			name: "insertion",
			node: ir.Para(
				ir.Text("stay "),
				ir.Markup(ir.KindIns, &ir.Rev{Kind: ir.RevIns, ID: 1}, ir.Text("new")),
			),
			want: "paragraph \"stay \" ins[1]{\"new\"} ¶\n",
		},
		{
			name: "deleted paragraph mark",
			node: delMark,
			want: "paragraph \"a\" del[2]¶\n",
		},
		{
			name: "format change",
			node: ir.Para(fmtRun),
			want: "paragraph propChange[5]{\"bold\"} ¶\n",
		},
		{
			name: "move range",
			node: ir.Part("body",
				ir.Markup(ir.KindMoveRangeStart, br),
				ir.Para(ir.Markup(ir.KindMoveTo,
					&ir.Rev{Kind: ir.RevMoveTo, ID: 4, MoveName: "move1"}, ir.Text("gone"))),
				ir.Markup(ir.KindMoveRangeEnd, br.Clone()),
			),
			want: "part body\n" +
				"  moveRangeStart moveTo[3 move1]\n" +
				"  paragraph moveTo[4 move1]{\"gone\"} ¶\n" +
				"  moveRangeEnd moveTo[3 move1]\n",
		},
		{
			name: "deleted table",
			node: delTbl,
			want: "table del[6]\n" +
				"  row\n" +
				"    cell\n" +
				"      paragraph \"gone\" ¶\n",
		},
		{
			name: "object",
			node: ir.Para(ir.Object("img-1", nil)),
			want: "paragraph (img-1) ¶\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(tc.node, buf); err != nil {
				t.Fatalf("encode: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tc.want)
			}
		})
	}
}

func TestEncodeRejectsBlockContentInline(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := Encode(ir.Para(ir.Tbl()), buf)
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("got %v, want ErrEncoding", err)
	}
}

func TestEncodeDepth(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(ir.Para(ir.Text("x")), buf, Depth(1)); err != nil {
		t.Fatal(err)
	}
	want := "  paragraph \"x\" ¶\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestMustString(t *testing.T) {
	got := MustString(ir.Para(ir.Text("x")))
	if got != "paragraph \"x\" ¶" {
		t.Errorf("got %q", got)
	}
}

func TestColorsFallback(t *testing.T) {
	c := NewColors()
	if c.Get(NoRev, ValueColor)("plain") != "plain" {
		t.Error("unmapped colorable should pass through")
	}
	if c.Get(ir.RevIns, ValueColor) == nil {
		t.Error("ins value should be mapped")
	}
}

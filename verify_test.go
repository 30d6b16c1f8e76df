package redline

import (
	"errors"
	"strings"
	"testing"

	"github.com/redlinehq/redline/ir"
)

func rev(kind ir.RevKind, id int) *ir.Rev {
	return &ir.Rev{Kind: kind, ID: id, Author: "reviewer"}
}

func withMark(p *ir.Node, m *ir.Rev) *ir.Node {
	p.MarkRev = m
	return p
}

func TestVerifyTree(t *testing.T) {
	bracket := rev(ir.RevMoveFrom, 1)
	bracket.MoveName = "move1"
	bracket.Source = true

	tests := []struct {
		name    string
		doc     *ir.Node
		wantErr string
	}{
		{
			"unique ids pass",
			ir.Doc(ir.Body(ir.Para(
				ir.Markup(ir.KindDel, rev(ir.RevDel, 1), ir.Text("a")),
				ir.Markup(ir.KindIns, rev(ir.RevIns, 2), ir.Text("b")),
			))),
			"",
		},
		{
			"bracket pair shares one id",
			ir.Doc(ir.Body(
				ir.Markup(ir.KindMoveRangeStart, bracket),
				withMark(ir.Para(
					ir.Markup(ir.KindMoveFrom, rev(ir.RevMoveFrom, 2), ir.Text("moved")),
				), rev(ir.RevMoveFrom, 3)),
				ir.Markup(ir.KindMoveRangeEnd, bracket.Clone()),
			)),
			"",
		},
		{
			"duplicate id",
			ir.Doc(ir.Body(ir.Para(
				ir.Markup(ir.KindDel, rev(ir.RevDel, 7), ir.Text("a")),
				ir.Markup(ir.KindDel, rev(ir.RevDel, 7), ir.Text("b")),
			))),
			"already used",
		},
		{
			"mark reuses a run id",
			ir.Doc(ir.Body(withMark(ir.Para(
				ir.Markup(ir.KindDel, rev(ir.RevDel, 4), ir.Text("a")),
			), rev(ir.RevDel, 4)))),
			"already used",
		},
		{
			"zero id",
			ir.Doc(ir.Body(ir.Para(
				ir.Markup(ir.KindDel, rev(ir.RevDel, 0), ir.Text("a")),
			))),
			"revision id 0",
		},
		{
			"unclosed range",
			ir.Doc(ir.Body(
				ir.Markup(ir.KindMoveRangeStart, rev(ir.RevMoveTo, 5)),
				ir.Para(),
			)),
			"never closed",
		},
		{
			"stray range end",
			ir.Doc(ir.Body(
				ir.Para(),
				ir.Markup(ir.KindMoveRangeEnd, rev(ir.RevMoveTo, 6)),
			)),
			"without start",
		},
	}
	for _, tc := range tests {
		err := verifyTree(tc.doc)
		if tc.wantErr == "" {
			if err != nil {
				t.Errorf("%s: %v", tc.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("%s: got %v, want %q", tc.name, err, tc.wantErr)
			continue
		}
		if !errors.Is(err, ErrInternal) {
			t.Errorf("%s: %v is not ErrInternal", tc.name, err)
		}
	}
}

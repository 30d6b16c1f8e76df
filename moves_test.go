package redline

import (
	"testing"

	"github.com/redlinehq/redline/ir"
	"github.com/redlinehq/redline/unit"
)

func words(ws ...string) map[string]bool {
	m := make(map[string]bool, len(ws))
	for _, w := range ws {
		m[w] = true
	}
	return m
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b map[string]bool
		want float64
	}{
		{"both empty", nil, nil, 0},
		{"one empty", words("a"), nil, 0},
		{"identical", words("a", "b", "c"), words("a", "b", "c"), 1},
		{"disjoint", words("a", "b"), words("c", "d"), 0},
		{"half", words("a", "b", "c"), words("b", "c", "d"), 0.5},
		{"four of five", words("a", "b", "c", "d", "e"), words("a", "b", "c", "d"), 0.8},
	}
	for _, tc := range tests {
		if got := jaccard(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

// Only whole one-sided paragraphs directly under shared containers
// qualify as move candidates; anything inside a deleted or inserted
// container already reports through that container.
func TestMoveCandidateGate(t *testing.T) {
	cc := newCmpCtx(NewSettings())
	ga, err := unit.Build(cc.reg, unit.SideA, ir.Body(ir.Para(ir.Text("moving text here"))), cc.buildOpts())
	if err != nil {
		t.Fatal(err)
	}
	gb, err := unit.Build(cc.reg, unit.SideB, ir.Body(), cc.buildOpts())
	if err != nil {
		t.Fatal(err)
	}
	if err := cc.reg.Unify(ga.ID(), gb.ID()); err != nil {
		t.Fatal(err)
	}
	items := delItems(ga.Groups[0])
	if rec := cc.paragraphOf(items[0]); rec == nil {
		t.Error("one-sided paragraph under a shared part should qualify")
	}

	deleted, err := unit.Build(cc.reg, unit.SideA,
		ir.Part("notes", ir.Tbl(ir.Row(ir.Cell(ir.Para(ir.Text("cell text")))))), cc.buildOpts())
	if err != nil {
		t.Fatal(err)
	}
	para := deleted.Groups[0].Groups[0].Groups[0].Groups[0]
	if rec := cc.paragraphOf(delItems(para)[0]); rec != nil {
		t.Error("paragraph inside a one-sided container must not qualify")
	}
}

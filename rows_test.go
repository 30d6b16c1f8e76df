package redline

import (
	"testing"

	"github.com/redlinehq/redline/ir"
	"github.com/redlinehq/redline/unit"
)

func rowGroups(t *testing.T, texts ...string) []*unit.Group {
	t.Helper()
	rows := make([]*ir.Node, len(texts))
	for i, s := range texts {
		rows[i] = ir.Row(ir.Cell(ir.Para(ir.Text(s))))
	}
	g, err := unit.Build(unit.NewRegistry(), unit.SideA, ir.Body(ir.Tbl(rows...)), unit.BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	return g.Groups[0].Groups
}

func TestRowMatcherApplies(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want bool
	}{
		{
			"reshuffled large table",
			[]string{"r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8"},
			[]string{"r1", "r3", "r4", "r5", "rx", "r6", "r7", "r8"},
			true,
		},
		{
			"small table",
			[]string{"r1", "r2", "r3"},
			[]string{"r3", "r1", "rx"},
			false,
		},
		{
			"row count differs",
			[]string{"r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8"},
			[]string{"r1", "r2", "r3", "r4", "r5", "r6", "r7"},
			false,
		},
		{
			"mostly aligned",
			[]string{"r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8"},
			[]string{"r1", "r2", "r3", "r4", "r5", "r6", "r7", "rx"},
			false,
		},
		{
			"mostly rewritten",
			[]string{"r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8"},
			[]string{"x1", "x2", "x3", "x4", "x5", "x6", "x7", "x8"},
			false,
		},
	}
	for _, tc := range tests {
		a, b := rowGroups(t, tc.a...), rowGroups(t, tc.b...)
		if got := rowMatcherApplies(a, b); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

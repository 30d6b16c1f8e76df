package align

import (
	"reflect"
	"testing"
)

func alignStrings(a, b []string) []Span {
	return Align(len(a), len(b), func(i, j int) bool { return a[i] == b[j] })
}

func TestAlign(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []Span
	}{
		{
			"both empty",
			nil, nil,
			nil,
		},
		{
			"identical",
			[]string{"a", "b", "c"}, []string{"a", "b", "c"},
			[]Span{{Equal, 0, 3, 0, 3}},
		},
		{
			"all inserted",
			nil, []string{"a", "b"},
			[]Span{{Inserted, 0, 0, 0, 2}},
		},
		{
			"all deleted",
			[]string{"a", "b"}, nil,
			[]Span{{Deleted, 0, 2, 0, 0}},
		},
		{
			"replace middle",
			[]string{"a", "x", "b"}, []string{"a", "y", "b"},
			[]Span{{Equal, 0, 1, 0, 1}, {Unknown, 1, 2, 1, 2}, {Equal, 2, 3, 2, 3}},
		},
		{
			"delete run",
			[]string{"a", "b", "c", "d"}, []string{"a", "d"},
			[]Span{{Equal, 0, 1, 0, 1}, {Deleted, 1, 3, 1, 1}, {Equal, 3, 4, 1, 2}},
		},
		{
			"insert at end",
			[]string{"a"}, []string{"a", "b"},
			[]Span{{Equal, 0, 1, 0, 1}, {Inserted, 1, 1, 1, 2}},
		},
		{
			"uneven gap",
			[]string{"a", "x", "y", "b"}, []string{"a", "z", "b"},
			[]Span{{Equal, 0, 1, 0, 1}, {Unknown, 1, 3, 1, 2}, {Equal, 3, 4, 2, 3}},
		},
		{
			// Swapping the first two elements must leave the earliest A
			// element unmatched, not the later one.
			"swap leaves earliest unmatched",
			[]string{"p1", "p2", "p3"}, []string{"p2", "p1", "p3"},
			[]Span{
				{Deleted, 0, 1, 0, 0},
				{Equal, 1, 2, 0, 1},
				{Inserted, 2, 2, 1, 2},
				{Equal, 2, 3, 2, 3},
			},
		},
		{
			// Under ties the match binds at the front and the surplus
			// element comes out inserted after it, not before.
			"duplicate binds earliest",
			[]string{"p"}, []string{"p", "p"},
			[]Span{{Equal, 0, 1, 0, 1}, {Inserted, 1, 1, 1, 2}},
		},
		{
			"duplicate deletes latest",
			[]string{"p", "p"}, []string{"p"},
			[]Span{{Equal, 0, 1, 0, 1}, {Deleted, 1, 2, 1, 1}},
		},
		{
			"nothing in common",
			[]string{"a", "b"}, []string{"c"},
			[]Span{{Unknown, 0, 2, 0, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := alignStrings(tt.a, tt.b)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got:\n%v\nwant:\n%v", got, tt.want)
			}
			checkTiling(t, got, len(tt.a), len(tt.b))
		})
	}
}

// Every alignment must tile both sequences completely and in order.
func checkTiling(t *testing.T, spans []Span, lenA, lenB int) {
	t.Helper()
	a, b := 0, 0
	for _, sp := range spans {
		if sp.A0 != a || sp.B0 != b {
			t.Fatalf("span %v does not start at (%d,%d)", sp, a, b)
		}
		if sp.A1 < sp.A0 || sp.B1 < sp.B0 {
			t.Fatalf("span %v runs backwards", sp)
		}
		switch sp.Status {
		case Equal:
			if sp.ALen() != sp.BLen() || sp.ALen() == 0 {
				t.Fatalf("bad equal span %v", sp)
			}
		case Deleted:
			if sp.BLen() != 0 || sp.ALen() == 0 {
				t.Fatalf("bad deleted span %v", sp)
			}
		case Inserted:
			if sp.ALen() != 0 || sp.BLen() == 0 {
				t.Fatalf("bad inserted span %v", sp)
			}
		case Unknown:
			if sp.ALen() == 0 || sp.BLen() == 0 {
				t.Fatalf("bad unknown span %v", sp)
			}
		}
		a, b = sp.A1, sp.B1
	}
	if a != lenA || b != lenB {
		t.Fatalf("spans end at (%d,%d), want (%d,%d)", a, b, lenA, lenB)
	}
}

func TestAlignDeterministic(t *testing.T) {
	a := []string{"a", "b", "a", "b", "a"}
	b := []string{"b", "a", "b", "a", "b"}
	first := alignStrings(a, b)
	for n := 0; n < 10; n++ {
		if got := alignStrings(a, b); !reflect.DeepEqual(got, first) {
			t.Fatalf("alignment varies: %v vs %v", got, first)
		}
	}
	checkTiling(t, first, len(a), len(b))
}

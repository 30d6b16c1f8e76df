// Package align provides the sequence-alignment primitive of the
// comparison engine: a dynamic-programming longest-common-subsequence
// over a caller-supplied equality predicate. The same routine aligns
// block elements by digest and atoms by exact equality; the caller picks
// the granularity through the predicate.
package align

import "fmt"

// Status tags one span of a correlated sequence.
type Status int

const (
	// Equal spans pair A0+k with B0+k for k in [0, A1-A0).
	Equal Status = iota
	// Deleted spans cover material of A only.
	Deleted
	// Inserted spans cover material of B only.
	Inserted
	// Unknown spans pair a non-empty A range with a non-empty B range
	// whose elements did not match. The differ refines these one level
	// down.
	Unknown
)

var statusNames = map[Status]string{
	Equal:    "equal",
	Deleted:  "deleted",
	Inserted: "inserted",
	Unknown:  "unknown",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Span is one item of an alignment result: a status plus half-open index
// ranges [A0,A1) and [B0,B1) into the two input sequences. Spans tile
// both sequences completely and in order.
type Span struct {
	Status Status
	A0, A1 int
	B0, B1 int
}

func (s Span) ALen() int { return s.A1 - s.A0 }
func (s Span) BLen() int { return s.B1 - s.B0 }

func (s Span) String() string {
	return fmt.Sprintf("%s a[%d:%d) b[%d:%d)", s.Status, s.A0, s.A1, s.B0, s.B1)
}

// Align computes a minimal edit script between two sequences of lengths
// lenA and lenB under the equality predicate eq. Gaps between matched
// regions come out as one span each: Deleted or Inserted when one-sided,
// Unknown when both sides lost material there. Ties in the underlying
// LCS are broken deterministically: every matched pair binds at its
// earliest feasible position on both sides, so an element never skips
// past an equal earlier candidate and identical inputs always align
// identically.
func Align(lenA, lenB int, eq func(i, j int) bool) []Span {
	dp := make([][]int, lenA+1)
	for i := range dp {
		dp[i] = make([]int, lenB+1)
	}
	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			switch {
			case eq(i-1, j-1):
				dp[i][j] = dp[i-1][j-1] + 1
			case dp[i][j-1] >= dp[i-1][j]:
				dp[i][j] = dp[i][j-1]
			default:
				dp[i][j] = dp[i-1][j]
			}
		}
	}

	// Backtrack from the far corner; steps come out in reverse order.
	// Value-preserving skips are taken before matches, B side first:
	// walked tail to head, that binds every matched pair at its earliest
	// feasible position, so a revised element pairs with its original
	// rather than with an equal-looking element further on. A match is
	// taken only when both skips would shrink the subsequence, which
	// forces eq to hold there.
	steps := make([]Status, 0, lenA+lenB)
	i, j := lenA, lenB
	for i > 0 || j > 0 {
		switch {
		case j > 0 && (i == 0 || dp[i][j-1] == dp[i][j]):
			steps = append(steps, Inserted)
			j--
		case i > 0 && (j == 0 || dp[i-1][j] == dp[i][j]):
			steps = append(steps, Deleted)
			i--
		default:
			steps = append(steps, Equal)
			i, j = i-1, j-1
		}
	}

	var res []Span
	a, b := 0, 0
	for k := len(steps) - 1; k >= 0; {
		if steps[k] == Equal {
			sp := Span{Status: Equal, A0: a, B0: b}
			for k >= 0 && steps[k] == Equal {
				a, b, k = a+1, b+1, k-1
			}
			sp.A1, sp.B1 = a, b
			res = append(res, sp)
			continue
		}
		sp := Span{A0: a, B0: b}
		for k >= 0 && steps[k] != Equal {
			if steps[k] == Deleted {
				a++
			} else {
				b++
			}
			k--
		}
		sp.A1, sp.B1 = a, b
		switch {
		case sp.B0 == sp.B1:
			sp.Status = Deleted
		case sp.A0 == sp.A1:
			sp.Status = Inserted
		default:
			sp.Status = Unknown
		}
		res = append(res, sp)
	}
	return res
}

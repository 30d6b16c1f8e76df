// Package unit builds the comparison-unit hierarchy for one side of a
// comparison: containers become groups, inline content is tokenized into
// atoms at word and punctuation boundaries, and every unit gets an exact
// and a content digest for correlation.
//
// Groups mirror the container structure of the input tree. Atoms carry the
// ancestor chain of stable ids that reconstruction later uses to restore
// nesting. The Registry is the per-comparison arena mapping stable ids,
// keyed per side, to the elements they name; correlation unifies a pair's
// two records when it pairs their containers.
package unit

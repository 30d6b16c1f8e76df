package revision

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Filter returns the records matching a boolean expression over the
// fields {type, author, text, moveName, source, date}, e.g.
//
//	type == "deleted" && author == "alice"
//	type == "moved" && source
func Filter(revs []Revision, src string) ([]Revision, error) {
	prg, err := expr.Compile(src, filterOpts()...)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", src, err)
	}
	var res []Revision
	for i := range revs {
		out, err := expr.Run(prg, filterEnv(&revs[i]))
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", src, err)
		}
		if out.(bool) {
			res = append(res, revs[i])
		}
	}
	return res, nil
}

func filterOpts() []expr.Option {
	return []expr.Option{
		expr.Env(filterEnv(&Revision{})),
		expr.AsBool(),
	}
}

func filterEnv(r *Revision) map[string]any {
	return map[string]any{
		"type":     r.Type.String(),
		"author":   r.Author,
		"date":     r.Date,
		"text":     r.Text,
		"moveName": r.MoveName,
		"source":   r.IsMoveSource,
	}
}

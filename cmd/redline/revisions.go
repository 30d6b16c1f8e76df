package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/redlinehq/redline"
	"github.com/redlinehq/redline/revision"
)

func revisions(cfg *RevisionsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Revisions.Parse(cc, args)
	if err != nil {
		return err
	}
	res, err := runCompare(redline.NewSettings(), args)
	if err != nil {
		return err
	}
	revs := res.Revisions
	if cfg.Filter != "" {
		if revs, err = revision.Filter(revs, cfg.Filter); err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
	}
	if cfg.JSON {
		d, err := json.MarshalIndent(revs, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", d)
		return err
	}
	for i := range revs {
		if _, err := fmt.Fprintln(cc.Out, revLine(i, &revs[i])); err != nil {
			return err
		}
	}
	if cfg.Summary {
		return summarize(cc, revs)
	}
	return nil
}

func revLine(i int, r *revision.Revision) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%3d %-13s %-10s %s", i+1, r.Type, r.Author, strconv.Quote(r.Text))
	if r.MoveName != "" {
		side := "to"
		if r.IsMoveSource {
			side = "from"
		}
		fmt.Fprintf(&sb, " (%s %s)", r.MoveName, side)
	}
	if r.Format != nil {
		fmt.Fprintf(&sb, " [%s]", strings.Join(r.Format.Changed, ","))
	}
	return sb.String()
}

// summarize renders replaced text, an adjacent delete/insert pair, as one
// character-level delta in wdiff notation.
func summarize(cc *cli.Context, revs []revision.Revision) error {
	for i := 0; i+1 < len(revs); i++ {
		if revs[i].Type != revision.Deleted || revs[i+1].Type != revision.Inserted {
			continue
		}
		var sb strings.Builder
		for _, sp := range revision.Delta(revs[i].Text, revs[i+1].Text) {
			switch sp.Op {
			case revision.DeltaDelete:
				sb.WriteString("[-" + sp.Text + "-]")
			case revision.DeltaInsert:
				sb.WriteString("{+" + sp.Text + "+}")
			default:
				sb.WriteString(sp.Text)
			}
		}
		if _, err := fmt.Fprintf(cc.Out, "%3d~%d %s\n", i+1, i+2, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

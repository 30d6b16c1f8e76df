package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "redline").
		WithSynopsis("redline [opts] command [opts]").
		WithDescription("redline compares two versions of a structured document and reports every difference as a tracked change.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return redlineMain(cfg, cc, args)
		}).
		WithSubs(
			CompareCommand(cfg),
			RevisionsCommand(cfg))
}

func CompareCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompareConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "date",
			Description: "revision date, RFC 3339 (default now)",
			Type:        cli.NamedFuncOpt(cfg.dateOpt, "(date)"),
		},
		&cli.Opt{
			Name:        "detail",
			Description: "embedded-change threshold in [0,1]",
			Type:        cli.NamedFuncOpt(cfg.detailOpt, "(fraction)"),
		},
		&cli.Opt{
			Name:        "moves",
			Description: "detect moved paragraphs (default true)",
			Type:        cli.NamedFuncOpt(cfg.movesOpt, "(bool)"),
		})

	cmd := cli.NewCommand("compare").
		WithAliases("c", "cmp").
		WithSynopsis("compare [opts] <original> <revised>").
		WithDescription("compare two documents and render the annotated result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compare(cfg, cc, args)
		})
	cfg.Compare = cmd
	return cmd
}

func RevisionsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RevisionsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	cmd := cli.NewCommand("revisions").
		WithAliases("r", "revs").
		WithSynopsis("revisions [opts] <original> <revised>").
		WithDescription("list the revisions between two documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return revisions(cfg, cc, args)
		})
	cfg.Revisions = cmd
	return cmd
}

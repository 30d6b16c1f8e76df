package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/redlinehq/redline"
	"github.com/redlinehq/redline/encode"
	"github.com/redlinehq/redline/ir"
	"github.com/redlinehq/redline/load"
)

func compare(cfg *CompareConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compare.Parse(cc, args)
	if err != nil {
		return err
	}
	res, err := runCompare(cfg.settings(), args)
	if err != nil {
		return err
	}
	if cfg.JSON {
		d, err := json.MarshalIndent(res.Tree, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", d)
		return err
	}
	return encode.Encode(res.Tree, cc.Out, cfg.encOpts(cc.Out)...)
}

func (cfg *CompareConfig) settings() *redline.Settings {
	set := redline.NewSettings()
	if cfg.Author != "" {
		set.Author = cfg.Author
	}
	set.Date = cfg.Date
	set.CaseInsensitive = cfg.CI
	if cfg.Detail != nil {
		set.DetailThreshold = *cfg.Detail
	}
	if cfg.Moves != nil {
		set.DetectMoves = *cfg.Moves
	}
	return set
}

func runCompare(set *redline.Settings, args []string) (*redline.Result, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: expected <original> <revised>", cli.ErrUsage)
	}
	docs := make([]*ir.Node, 2)
	for i, path := range args {
		doc, err := load.File(path)
		if err != nil {
			return nil, err
		}
		docs[i] = doc
	}
	return redline.Compare(docs[0], docs[1], set)
}

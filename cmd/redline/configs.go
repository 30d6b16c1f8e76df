package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/redlinehq/redline/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with ANSI colors'"`
	JSON  bool `cli:"name=json desc='output JSON instead of review text'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type CompareConfig struct {
	*MainConfig
	Author string `cli:"name=author desc='author stamped on every revision'"`
	CI     bool   `cli:"name=ci desc='case-insensitive text correlation'"`

	Date   time.Time
	Detail *float64
	Moves  *bool

	Compare *cli.Command
}

func (cfg *CompareConfig) dateOpt(_ *cli.Context, a string) (any, error) {
	d, err := time.Parse(time.RFC3339, a)
	if err != nil {
		return nil, fmt.Errorf("%w: -date %q: %v", cli.ErrUsage, a, err)
	}
	cfg.Date = d
	return d, nil
}

func (cfg *CompareConfig) detailOpt(_ *cli.Context, a string) (any, error) {
	f, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: -detail %q: %v", cli.ErrUsage, a, err)
	}
	cfg.Detail = &f
	return f, nil
}

func (cfg *CompareConfig) movesOpt(_ *cli.Context, a string) (any, error) {
	b, err := strconv.ParseBool(a)
	if err != nil {
		return nil, fmt.Errorf("%w: -moves %q: %v", cli.ErrUsage, a, err)
	}
	cfg.Moves = &b
	return b, nil
}

type RevisionsConfig struct {
	*MainConfig
	Filter  string `cli:"name=filter desc='boolean expression over {type, author, text, moveName, source}'"`
	Summary bool   `cli:"name=summary desc='render character-level deltas for replaced text'"`

	Revisions *cli.Command
}

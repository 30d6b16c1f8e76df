package encode

import (
	"strings"

	"github.com/redlinehq/redline/ir"

	"github.com/fatih/color"
)

// NoRev keys color entries for segments outside any revision.
const NoRev = ir.RevKind(-1)

type Colorable struct {
	Rev  ir.RevKind
	Attr ColorAttr
}

type ColorAttr int

const (
	KindColor ColorAttr = iota
	NameColor
	ValueColor
	MarkerColor
	MarkColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	able := Colorable{Rev: NoRev, Attr: KindColor}
	colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	able.Attr = NameColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = MarkColor
	colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()

	for _, attr := range []ColorAttr{ValueColor, NameColor, MarkerColor, MarkColor} {
		colors.Map[Colorable{Rev: ir.RevIns, Attr: attr}] = color.RGB(8, 196, 16).SprintfFunc()
		colors.Map[Colorable{Rev: ir.RevDel, Attr: attr}] = color.RedString
		colors.Map[Colorable{Rev: ir.RevMoveFrom, Attr: attr}] = color.MagentaString
		colors.Map[Colorable{Rev: ir.RevMoveTo, Attr: attr}] = color.CyanString
		colors.Map[Colorable{Rev: ir.RevPropChange, Attr: attr}] = color.RGB(198, 198, 46).SprintfFunc()
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(rev ir.RevKind, a ColorAttr, s string) string {
	res := c.Get(rev, a)(s)
	return res
}

func (c *Colors) Get(rev ir.RevKind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Rev: rev, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

package encode

import (
	"strings"

	"github.com/signadot/go-jsondom/dom"

	"github.com/fatih/color"
)

type Colorable struct {
	Type dom.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
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
	for _, t := range dom.Types() {
		able := Colorable{
			Type: t,
			Attr: SepColor,
		}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = dom.IntType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = dom.UintType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = dom.RealType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = dom.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = dom.BoolType
	colors.Map[able] = color.CyanString

	able.Type = dom.ObjectType
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Type = dom.StringType
	able.Attr = ValueColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t dom.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t dom.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

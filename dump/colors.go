package dump

import (
	"strings"

	"github.com/fatih/color"
	"github.com/variantlab/variant/jval"
)

type colorable struct {
	Kind jval.Kind
	Attr colorAttr
}

type colorAttr int

const (
	labelColor colorAttr = iota
	valueColor
	fieldColor
	sepColor
)

type palette struct {
	deflt   func(string, ...any) string
	keyword func(string, ...any) string
	m       map[colorable]func(string, ...any) string
}

func newPalette() *palette {
	p := &palette{
		deflt: colorDefault,
		m:     map[colorable]func(string, ...any) string{},
	}
	for _, k := range jval.Kinds.Kinds() {
		able := colorable{Kind: k, Attr: labelColor}
		p.m[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = sepColor
		p.m[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := colorable{Attr: valueColor}

	able.Kind = jval.NullKind
	p.m[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = jval.BoolKind
	p.m[able] = color.CyanString

	able.Kind = jval.NumberKind
	p.m[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = jval.StringKind
	p.m[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = jval.ObjectKind
	able.Attr = fieldColor
	p.m[able] = color.RGB(128, 168, 196).SprintfFunc()

	p.keyword = p.m[colorable{Kind: jval.NullKind, Attr: labelColor}]
	for k, f := range p.m {
		p.m[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return p
}

func colorDefault(v string, _ ...any) string { return v }

// color renders s in the color registered for (k, a). A nil palette
// leaves s unchanged.
func (p *palette) color(k jval.Kind, a colorAttr, s string) string {
	if p == nil {
		return s
	}
	return p.get(k, a)(s)
}

// kw renders a structural keyword ("node", "empty") in the shared
// label color.
func (p *palette) kw(s string) string {
	if p == nil || p.keyword == nil {
		return s
	}
	return p.keyword(strings.Replace(s, "%", "%%", -1))
}

func (p *palette) get(k jval.Kind, a colorAttr) func(string, ...any) string {
	f := p.m[colorable{Kind: k, Attr: a}]
	if f == nil {
		return p.deflt
	}
	return f
}

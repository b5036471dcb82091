package encode

import (
	"github.com/fatih/color"

	"github.com/jsonc-format/jsoncfmt/ir"
)

// Colors assigns a terminal color to each kind of output token.
// A nil entry leaves that kind unstyled.
type Colors struct {
	Key     *color.Color
	String  *color.Color
	Number  *color.Color
	Literal *color.Color // true, false, null
	Comment *color.Color
}

// DefaultColors returns the color scheme used by the command line
// tool. Whether escapes are actually emitted is governed by the
// color package's global NoColor setting.
func DefaultColors() *Colors {
	return &Colors{
		Key:     color.New(color.FgCyan),
		String:  color.New(color.FgGreen),
		Number:  color.New(color.FgMagenta),
		Literal: color.New(color.FgYellow),
		Comment: color.New(color.Faint),
	}
}

func (cs *Colors) paint(c *color.Color, s string) string {
	if cs == nil || c == nil {
		return s
	}
	return c.Sprint(s)
}

func (cs *Colors) literal(n *ir.Node, s string) string {
	if cs == nil {
		return s
	}
	switch n.Type {
	case ir.StringType:
		return cs.paint(cs.String, s)
	case ir.NumberType:
		return cs.paint(cs.Number, s)
	case ir.BoolType, ir.NullType:
		return cs.paint(cs.Literal, s)
	}
	return s
}

package encode

import (
	"io"
	"strings"

	"github.com/jsonc-format/jsoncfmt/ir"
)

// indentSize is the number of spaces per nesting level.
const indentSize = 2

// Encode writes the formatted rendering of n to w. The output ends
// with exactly one newline.
func Encode(w io.Writer, n *ir.Node, opts ...EncodeOption) error {
	o := &encOpts{}
	for _, opt := range opts {
		opt(o)
	}
	e := &encState{w: w, colors: o.colors}
	for i := range n.Leading {
		if n.Leading[i].BlankBefore {
			e.put("\n")
		}
		e.put(e.comment(&n.Leading[i]))
		e.put("\n")
	}
	if n.BlankBefore {
		e.put("\n")
	}
	e.value(n)
	if n.Trailing != nil {
		e.put(" ")
		e.put(e.comment(n.Trailing))
	}
	for i := range n.After {
		e.put("\n")
		if n.After[i].BlankBefore {
			e.put("\n")
		}
		e.put(e.comment(&n.After[i]))
	}
	e.put("\n")
	return e.err
}

type encState struct {
	w      io.Writer
	depth  int
	colors *Colors
	err    error
}

func (e *encState) put(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

// line starts a new output line at the current nesting level.
func (e *encState) line() {
	e.put("\n")
	e.put(strings.Repeat(" ", e.depth*indentSize))
}

func (e *encState) value(n *ir.Node) {
	if n.Type.IsContainer() {
		e.container(n)
		return
	}
	e.put(e.colors.literal(n, string(n.Literal)))
}

func (e *encState) key(f *ir.Node) {
	if e.colors != nil {
		e.put(e.colors.paint(e.colors.Key, string(f.Literal)))
		return
	}
	e.put(string(f.Literal))
}

func (e *encState) container(n *ir.Node) {
	open, close := "[", "]"
	if n.Type == ir.ObjectType {
		open, close = "{", "}"
	}
	if !n.Multiline {
		e.inline(n, open, close)
		return
	}
	e.put(open)
	for i := range n.Open {
		e.put(" ")
		e.put(e.comment(&n.Open[i]))
	}
	e.depth++
	for i, v := range n.Values {
		lead, blank := v.Leading, v.BlankBefore
		if n.Type == ir.ObjectType {
			lead, blank = n.Fields[i].Leading, n.Fields[i].BlankBefore
		}
		for j := range lead {
			if lead[j].BlankBefore {
				e.put("\n")
			}
			e.line()
			e.put(e.comment(&lead[j]))
		}
		if blank {
			e.put("\n")
		}
		e.line()
		if n.Type == ir.ObjectType {
			e.key(n.Fields[i])
			e.put(": ")
		}
		e.value(v)
		if i < n.Len()-1 || n.TrailingComma {
			e.put(",")
		}
		if v.Trailing != nil {
			e.put(" ")
			e.put(e.comment(v.Trailing))
		}
	}
	for j := range n.End {
		if n.End[j].BlankBefore {
			e.put("\n")
		}
		e.line()
		e.put(e.comment(&n.End[j]))
	}
	e.depth--
	e.line()
	e.put(close)
}

// inline renders a container on a single line. Objects are padded
// inside the braces, arrays are not.
func (e *encState) inline(n *ir.Node, open, close string) {
	e.put(open)
	pad := n.Type == ir.ObjectType && n.Len() > 0
	if pad {
		e.put(" ")
	}
	for i, v := range n.Values {
		if i > 0 {
			e.put(", ")
		}
		if n.Type == ir.ObjectType {
			e.key(n.Fields[i])
			e.put(": ")
		}
		e.value(v)
	}
	if n.TrailingComma {
		e.put(",")
	}
	if pad {
		e.put(" ")
	}
	e.put(close)
}

// comment renders one comment for the current nesting level. Line
// comments are emitted as-is with trailing whitespace removed. The
// continuation lines of a multiline block comment are shifted left
// or right by the difference between the comment's source column and
// the output indentation, so the comment keeps its internal shape.
func (e *encState) comment(c *ir.Comment) string {
	text := c.Text
	if !c.Multiline() {
		text = strings.TrimRight(text, " \t")
		if e.colors != nil {
			return e.colors.paint(e.colors.Comment, text)
		}
		return text
	}
	col := e.depth * indentSize
	lines := strings.Split(text, "\n")
	var b strings.Builder
	b.WriteString(strings.TrimSpace(lines[0]))
	for _, line := range lines[1:] {
		b.WriteByte('\n')
		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}
		if d := col - c.Col; d >= 0 {
			b.WriteString(strings.Repeat(" ", d))
		} else {
			for ; d < 0 && strings.HasPrefix(line, " "); d++ {
				line = line[1:]
			}
		}
		b.WriteString(line)
	}
	if e.colors != nil {
		return e.colors.paint(e.colors.Comment, b.String())
	}
	return b.String()
}

package ir

import (
	"strings"
)

// Comment is a single source comment. Text is verbatim, including the "//"
// or "/*" markers and, for block comments, internal newlines. Col is the
// source column at which the comment started; the encoder uses it to shift
// the continuation lines of multiline block comments to the output
// indentation. BlankBefore is true when two or more newlines preceded the
// comment in source.
type Comment struct {
	Text        string
	Col         int
	BlankBefore bool
}

// Block reports whether c is a block ("/* */") comment.
func (c *Comment) Block() bool {
	return strings.HasPrefix(c.Text, "/*")
}

// Multiline reports whether c spans more than one source line.
func (c *Comment) Multiline() bool {
	return strings.Contains(c.Text, "\n")
}

// Node is a JSON value decorated with the lexical information the layout
// engine needs. Scalar nodes (and object keys) keep their verbatim source
// bytes in Literal; the formatter never re-serializes values.
type Node struct {
	Type    Type
	Literal []byte

	// Fields[i] is the key node for Values[i] in objects; arrays use
	// Values alone. Field nodes carry the entry's leading comments and
	// blank marker, value nodes carry the trailing comment.
	Fields []*Node
	Values []*Node

	Leading     []Comment
	Trailing    *Comment
	BlankBefore bool

	// After holds comments that follow the root value in source.
	// Only the root node of a document carries them; they print
	// after the value, each on its own line.
	After []Comment

	// Containers only.
	Open          []Comment
	End           []Comment
	TrailingComma bool
	Multiline     bool
}

func Null() *Node {
	return &Node{Type: NullType, Literal: []byte("null")}
}

func Scalar(t Type, lit []byte) *Node {
	return &Node{Type: t, Literal: lit}
}

// Key returns the verbatim key literal for entry i of an object node.
func (y *Node) Key(i int) []byte {
	return y.Fields[i].Literal
}

// Len returns the number of direct children of a container node.
func (y *Node) Len() int {
	return len(y.Values)
}

// HasComments reports whether any comment is attached at y's own level:
// bracket comments, end comments, or leading/trailing comments of direct
// children. Comments inside nested containers do not count.
func (y *Node) HasComments() bool {
	if len(y.Open) != 0 || len(y.End) != 0 {
		return true
	}
	for _, f := range y.Fields {
		if len(f.Leading) != 0 || f.Trailing != nil {
			return true
		}
	}
	for _, v := range y.Values {
		if len(v.Leading) != 0 || v.Trailing != nil {
			return true
		}
	}
	return false
}

// Visit walks the tree rooted at y in document order, calling f before and
// after each node's children. Returning false from the pre-order call skips
// the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

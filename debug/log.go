package debug

import (
	"fmt"
	"os"

	"github.com/jsonc-format/jsoncfmt/ir"
	"github.com/jsonc-format/jsoncfmt/token"
)

// Logf writes a debug message to stderr. Token slices are rendered
// one token per line and ir trees as an indented outline.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case []token.Token:
			args[i] = DumpTokens(x)
		case *ir.Node:
			args[i] = DumpTree(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

// DumpTokens renders a token stream for debug output.
func DumpTokens(toks []token.Token) string {
	s := ""
	for _, t := range toks {
		s += fmt.Sprintf("  %s %q gap=%d %s\n", t.Type, string(t.Bytes), t.Gap, t.Pos)
	}
	return s
}

// DumpTree renders a document tree outline for debug output.
func DumpTree(n *ir.Node) string {
	s := ""
	depth := 0
	n.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			depth--
			return true, nil
		}
		pad := ""
		for i := 0; i < depth; i++ {
			pad += "  "
		}
		s += fmt.Sprintf("%s%s %q multiline=%v comments=%v\n",
			pad, y.Type, string(y.Literal), y.Multiline, y.HasComments())
		depth++
		return true, nil
	})
	return s
}

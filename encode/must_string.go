package encode

import (
	"strings"

	"github.com/jsonc-format/jsoncfmt/ir"
)

// MustString returns the rendering of n as a string, panicking on
// error. Handy in tests and for documents known to be well formed.
func MustString(n *ir.Node, opts ...EncodeOption) string {
	var b strings.Builder
	if err := Encode(&b, n, opts...); err != nil {
		panic(err)
	}
	return b.String()
}

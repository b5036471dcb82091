package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Tree   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("JSONCFMT_DEBUG_TOKENS")
	d.Tree = boolEnv("JSONCFMT_DEBUG_TREE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Tokens reports whether the token stream of each formatted document
// should be dumped to stderr.
func Tokens() bool {
	return d.Tokens
}

// Tree reports whether the built document tree should be dumped to
// stderr.
func Tree() bool {
	return d.Tree
}

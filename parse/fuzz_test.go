package parse

import (
	"testing"
)

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		``,
		`null`,
		`[1, 2, 3,]`,
		`{"a": 1, "b": [true, null]}`,
		"{\n  // c\n  \"a\": 1, // d\n\n  \"b\": 2\n}",
		`{/*foo*/"bar":"baz"}`,
		"[1, /* a\nb */ 2]",
	} {
		f.Add([]byte(seed))
	}
	f.Fuzz(func(t *testing.T, d []byte) {
		n, err := Parse(d)
		if err != nil {
			return
		}
		if n == nil {
			t.Fatal("nil document without error")
		}
		// strip mode must accept everything plain mode accepts
		if _, err := Parse(d, ParseStrip(true)); err != nil {
			t.Fatalf("strip mode rejected %q: %s", d, err)
		}
	})
}

package format_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jsonc-format/jsoncfmt/format"
	"github.com/jsonc-format/jsoncfmt/ir"
	"github.com/jsonc-format/jsoncfmt/token"
)

var docs = []string{
	"null",
	" 42 ",
	`"hello"`,
	"[]",
	"{}",
	"[1,2,3]",
	"[1, 2, 3,]",
	`{"a":1,"b":2}`,
	"{\n  \"a\": 1,\n  \"b\": 2,\n}",
	"{\n\n  \"key\"  :  \"value\" ,\n\n  \"another\": 42\n}",
	"// head\n{\n  // before\n  \"a\": [1, [2,\n3]], // after\n  /* block */\n  \"b\": {}\n}\n// tail",
	`{/*foo*/"bar":"baz"}`,
	"{\n  /* one\n     two */\n  \"k\": null\n}",
	"[\n  1\n  // last\n]",
	"[\n  1\n]\n// after",
	"[/*a*/\n// b\n]",
}

func mustFormat(t *testing.T, src string, options ...format.Option) string {
	t.Helper()
	out, err := format.Source([]byte(src), options...)
	if err != nil {
		t.Fatalf("format %q: %s", src, err)
	}
	return string(out)
}

func TestSourceExamples(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{`{"a":1,"b":2}`, "{ \"a\": 1, \"b\": 2 }\n"},
		{`{/*foo*/"bar":"baz"}`, "{ /*foo*/\n  \"bar\": \"baz\"\n}\n"},
		{"[1, 2, 3,]", "[1, 2, 3,]\n"},
	} {
		if got := mustFormat(t, tc.in); got != tc.want {
			t.Errorf("input %q:\ngot  %q\nwant %q", tc.in, got, tc.want)
		}
	}
}

func TestSourceIdempotent(t *testing.T) {
	for _, d := range docs {
		once := mustFormat(t, d)
		twice := mustFormat(t, once)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce  %q\ntwice %q", d, once, twice)
		}
	}
}

// strippedOf removes whitespace outside of strings and comments,
// leaving the sequence of characters the formatter must preserve.
func significant(t *testing.T, src string) string {
	t.Helper()
	toks, err := token.Tokenize(nil, []byte(src))
	if err != nil {
		t.Fatalf("tokenize %q: %s", src, err)
	}
	var b strings.Builder
	for _, tok := range toks {
		b.Write(bytes.TrimRight(tok.Bytes, " \t"))
	}
	return b.String()
}

func TestSourcePreservesTokens(t *testing.T) {
	for _, d := range docs {
		out := mustFormat(t, d)
		in, formatted := significant(t, d), significant(t, out)
		if in != formatted {
			t.Errorf("token text changed for %q:\nin  %q\nout %q", d, in, formatted)
		}
	}
}

func TestSourceStrip(t *testing.T) {
	in := "// head\n{\n  \"a\": 1, // gone\n  /* also gone */\n  \"b\": [2, 3,],\n}"
	got := mustFormat(t, in, format.Strip())
	want := "{\n  \"a\": 1,\n  \"b\": [2, 3]\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if strings.Contains(got, "/") {
		t.Errorf("comments left in %q", got)
	}

	// a container multiline only because of a comment collapses
	got = mustFormat(t, "[1, /* c */ 2]", format.Strip())
	if got != "[1, 2]\n" {
		t.Errorf("got %q, want inline", got)
	}
}

func TestSourceCommentsAfterRoot(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		// comments after a container root stay outside the
		// closing bracket and print exactly once
		{"[\n  1\n]\n// after", "[\n  1\n]\n// after\n"},
		{"[\n  1\n  // last\n]", "[\n  1\n  // last\n]\n"},
		{"[\n  1\n  // last\n]\n// after", "[\n  1\n  // last\n]\n// after\n"},
		{"[/*a*/\n// b\n]", "[ /*a*/\n  // b\n]\n"},
		{"{}\n// after", "{}\n// after\n"},
		{"[1] // tail", "[1] // tail\n"},
	} {
		if got := mustFormat(t, tc.in); got != tc.want {
			t.Errorf("input %q:\ngot  %q\nwant %q", tc.in, got, tc.want)
		}
	}
}

func TestSourceBlankLines(t *testing.T) {
	in := "[\n  1,\n\n\n\n  2\n]"
	want := "[\n  1,\n\n  2\n]\n"
	if got := mustFormat(t, in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSourceErrs(t *testing.T) {
	for _, tc := range []struct {
		in  string
		err error
	}{
		{`{"a":}`, ir.ErrParse},
		{``, ir.ErrEmptyDoc},
		{`[1, 2`, ir.ErrUnexpectedEOF},
		{`1 2`, ir.ErrTrailingData},
		{`"unterminated`, token.ErrUnterminated},
		{`/* unterminated`, token.ErrUnterminatedComment},
		{`@`, token.ErrInvalidCharacter},
	} {
		_, err := format.Source([]byte(tc.in))
		if !errors.Is(err, tc.err) {
			t.Errorf("%q: got %v, want %v", tc.in, err, tc.err)
		}
	}
}

func TestSourceFinalNewline(t *testing.T) {
	for _, d := range docs {
		out := mustFormat(t, d)
		if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
			t.Errorf("%q: output %q does not end with exactly one newline", d, out)
		}
	}
}

func FuzzSource(f *testing.F) {
	for _, d := range docs {
		f.Add([]byte(d))
	}
	f.Fuzz(func(t *testing.T, d []byte) {
		out, err := format.Source(d)
		if err != nil {
			return
		}
		again, err := format.Source(out)
		if err != nil {
			t.Fatalf("output %q does not parse: %s", out, err)
		}
		if !bytes.Equal(out, again) {
			t.Fatalf("not idempotent:\nonce  %q\ntwice %q", out, again)
		}
	})
}

package format

import (
	"bytes"

	"github.com/jsonc-format/jsoncfmt/encode"
	"github.com/jsonc-format/jsoncfmt/parse"
)

type opts struct {
	strip  bool
	colors *encode.Colors
}

// Option configures a call to Source.
type Option func(*opts)

// Strip removes comments and trailing commas from the output.
func Strip() Option {
	return func(o *opts) {
		o.strip = true
	}
}

// WithColors renders the output with terminal colors.
func WithColors(c *encode.Colors) Option {
	return func(o *opts) {
		o.colors = c
	}
}

// Source formats src, a single jsonc document. The result ends with
// exactly one newline. Scalar values, comments, and trailing commas
// are preserved verbatim; only whitespace is rewritten. Tokenize
// errors wrap the sentinels in package token, build errors wrap
// ir.ErrParse, and both carry source positions.
func Source(src []byte, options ...Option) ([]byte, error) {
	o := &opts{}
	for _, option := range options {
		option(o)
	}
	n, err := parse.Parse(src, parse.ParseStrip(o.strip))
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.Grow(len(src) + len(src)/4)
	if err := encode.Encode(&b, n, encode.EncodeColors(o.colors)); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

package parse

import (
	"fmt"

	"github.com/jsonc-format/jsoncfmt/ir"
	"github.com/jsonc-format/jsoncfmt/token"
)

// Parse builds an ir document from jsonc source.  The source must
// contain exactly one top level value; comments may precede or follow
// it.  Errors wrap ir.ErrParse and carry the position of the
// offending token.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	o := &parseOpts{}
	for _, opt := range opts {
		opt(o)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if o.strip {
		toks = stripComments(toks)
	}
	p := &parser{toks: toks, strip: o.strip}

	var lead []ir.Comment
	for !p.eof() && p.peek().Type.IsComment() {
		lead = append(lead, commentOf(p.next()))
	}
	if len(lead) > 0 {
		// nothing precedes the first comment, so no blank line
		// above it
		lead[0].BlankBefore = false
	}
	if p.eof() {
		if len(lead) > 0 {
			return nil, fmt.Errorf("%w: document contains only comments", ir.ErrEmptyDoc)
		}
		return nil, fmt.Errorf("%w: no value in document", ir.ErrEmptyDoc)
	}
	gap := p.peek().Gap
	root, err := p.value()
	if err != nil {
		return nil, err
	}
	root.Leading = lead
	root.BlankBefore = len(lead) > 0 && gap >= 2
	for !p.eof() && p.peek().Type.IsComment() {
		t := p.next()
		c := commentOf(t)
		if t.Gap == 0 && !c.Multiline() && root.Trailing == nil && len(root.After) == 0 {
			root.Trailing = &c
			continue
		}
		root.After = append(root.After, c)
	}
	if !p.eof() {
		t := p.peek()
		return nil, fmt.Errorf("%w: unexpected token %q after top level value %s",
			ir.ErrTrailingData, string(t.Bytes), t.Pos)
	}
	return root, nil
}

// MustParse is like Parse but panics on error.  Intended for tests
// and static documents.
func MustParse(d []byte, opts ...ParseOption) *ir.Node {
	n, err := Parse(d, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

type parser struct {
	toks  []token.Token
	i     int
	strip bool
}

func (p *parser) eof() bool {
	return p.i >= len(p.toks)
}

func (p *parser) peek() *token.Token {
	return &p.toks[p.i]
}

func (p *parser) next() *token.Token {
	t := &p.toks[p.i]
	p.i++
	return t
}

func (p *parser) value() (*ir.Node, error) {
	if p.eof() {
		return nil, fmt.Errorf("%w: expected a value", ir.ErrUnexpectedEOF)
	}
	t := p.next()
	switch t.Type {
	case token.TLCurl:
		return p.container(t, ir.ObjectType)
	case token.TLSquare:
		return p.container(t, ir.ArrayType)
	case token.TString:
		return ir.Scalar(ir.StringType, t.Bytes), nil
	case token.TNumber:
		return ir.Scalar(ir.NumberType, t.Bytes), nil
	case token.TTrue, token.TFalse:
		return ir.Scalar(ir.BoolType, t.Bytes), nil
	case token.TNull:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %q %s, expected a value",
		ir.ErrParse, string(t.Bytes), t.Pos)
}

// container parses the body of an object or array whose opening
// bracket has already been consumed.  It attaches comments to
// neighboring entries and decides the container's layout from the
// newlines between its direct children.
func (p *parser) container(open *token.Token, typ ir.Type) (*ir.Node, error) {
	n := &ir.Node{Type: typ}
	close := token.TRCurl
	if typ == ir.ArrayType {
		close = token.TRSquare
	}
	var (
		sawNL   bool
		pending []ir.Comment
		last    *ir.Node // most recent value, target for trailing comments
		comma   bool     // a ',' separates last from the next entry
	)
	note := func(t *token.Token) {
		if t.Gap > 0 {
			sawNL = true
		}
	}
	for {
		if p.eof() {
			return nil, fmt.Errorf("%w: %q opened %s is never closed",
				ir.ErrUnexpectedEOF, string(open.Bytes), open.Pos)
		}
		t := p.peek()
		note(t)
		switch {
		case t.Type.IsComment():
			p.next()
			c := commentOf(t)
			if t.Gap == 0 && !c.Multiline() {
				// same line as what precedes it
				if last != nil && !comma && last.Trailing == nil {
					last.Trailing = &c
					continue
				}
				if last != nil && comma && last.Trailing == nil && len(pending) == 0 {
					// comment after the comma still
					// describes the value before it
					last.Trailing = &c
					continue
				}
				if last == nil && len(pending) == 0 {
					n.Open = append(n.Open, c)
					continue
				}
			}
			pending = append(pending, c)
			continue
		case t.Type == close:
			p.next()
			n.End = pending
			if !p.strip {
				n.TrailingComma = comma
			}
			if n.Len() == 0 {
				n.Multiline = len(n.Open) > 0 || len(n.End) > 0
			} else {
				n.Multiline = sawNL || n.HasComments()
			}
			return n, nil
		case t.Type == token.TComma:
			if last == nil || comma {
				return nil, fmt.Errorf("%w: unexpected token %q %s",
					ir.ErrParse, string(t.Bytes), t.Pos)
			}
			p.next()
			comma = true
			continue
		}
		if last != nil && !comma {
			return nil, fmt.Errorf("%w: unexpected token %q %s, expected %q or %s",
				ir.ErrParse, string(t.Bytes), t.Pos, ",", close)
		}
		if typ == ir.ObjectType {
			if t.Type != token.TString {
				return nil, fmt.Errorf("%w: unexpected token %q %s, expected an object key",
					ir.ErrParse, string(t.Bytes), t.Pos)
			}
			p.next()
			field := ir.Scalar(ir.StringType, t.Bytes)
			field.Leading = pending
			field.BlankBefore = t.Gap >= 2
			pending = nil
			// comments between the key and its value are
			// offset to above the entry
			extra, err := p.expect(token.TColon, note)
			if err != nil {
				return nil, err
			}
			field.Leading = append(field.Leading, extra...)
			for !p.eof() && p.peek().Type.IsComment() {
				note(p.peek())
				field.Leading = append(field.Leading, commentOf(p.next()))
			}
			if !p.eof() {
				note(p.peek())
			}
			val, err := p.value()
			if err != nil {
				return nil, err
			}
			n.Fields = append(n.Fields, field)
			n.Values = append(n.Values, val)
			last = val
		} else {
			lead := pending
			pending = nil
			val, err := p.value()
			if err != nil {
				return nil, err
			}
			val.Leading = lead
			val.BlankBefore = t.Gap >= 2
			n.Values = append(n.Values, val)
			last = val
		}
		comma = false
	}
}

// expect consumes comments until the given token type is found,
// returning the skipped comments.
func (p *parser) expect(typ token.TokenType, note func(*token.Token)) ([]ir.Comment, error) {
	var cs []ir.Comment
	for !p.eof() && p.peek().Type.IsComment() {
		note(p.peek())
		cs = append(cs, commentOf(p.next()))
	}
	if p.eof() {
		return nil, fmt.Errorf("%w: expected %s", ir.ErrUnexpectedEOF, typ)
	}
	t := p.next()
	if t.Type != typ {
		return nil, fmt.Errorf("%w: unexpected token %q %s, expected %s",
			ir.ErrParse, string(t.Bytes), t.Pos, typ)
	}
	note(t)
	return cs, nil
}

func commentOf(t *token.Token) ir.Comment {
	_, col := t.Pos.LineCol()
	return ir.Comment{
		Text:        string(t.Bytes),
		Col:         col,
		BlankBefore: t.Gap >= 2,
	}
}

// stripComments drops comment tokens from toks, folding the newlines
// around them into the gap of the following token.  Newlines inside a
// dropped block comment are part of the comment and do not carry
// over, so stripped content never influences layout.
func stripComments(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	carry := 0
	for _, t := range toks {
		if t.Type.IsComment() {
			carry += t.Gap
			continue
		}
		if carry > 0 {
			t.Gap += carry
			if t.Gap > 2 {
				t.Gap = 2
			}
			carry = 0
		}
		out = append(out, t)
	}
	return out
}

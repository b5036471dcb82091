package token

import (
	"fmt"
)

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString
	TNumber
	TTrue
	TFalse
	TNull
	TLineComment
	TBlockComment
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLCurl:        "TLCurl",
		TRCurl:        "TRCurl",
		TLSquare:      "TLSquare",
		TRSquare:      "TRSquare",
		TColon:        "TColon",
		TComma:        "TComma",
		TString:       "TString",
		TNumber:       "TNumber",
		TTrue:         "TTrue",
		TFalse:        "TFalse",
		TNull:         "TNull",
		TLineComment:  "TLineComment",
		TBlockComment: "TBlockComment",
	}[t]
}

// IsComment reports whether t is a line or block comment token.
func (t TokenType) IsComment() bool {
	return t == TLineComment || t == TBlockComment
}

// IsValueStart reports whether a token of type t can begin a value.
func (t TokenType) IsValueStart() bool {
	switch t {
	case TLCurl, TLSquare, TString, TNumber, TTrue, TFalse, TNull:
		return true
	default:
		return false
	}
}

// Token is one lexical unit of a JSONC document. Bytes is the verbatim
// source span of the token. Gap counts the newlines between the end of the
// previous token and the start of this one, capped at 2: the layout rules
// only distinguish 0, 1, and >=2.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
	Gap   int
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}

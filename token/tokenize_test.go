package token

import (
	"errors"
	"testing"
)

func types(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []TokenType
	}{
		{`null`, []TokenType{TNull}},
		{`true`, []TokenType{TTrue}},
		{`false`, []TokenType{TFalse}},
		{`0`, []TokenType{TNumber}},
		{`-1`, []TokenType{TNumber}},
		{`3.14`, []TokenType{TNumber}},
		{`-1e10`, []TokenType{TNumber}},
		{`0.5E-2`, []TokenType{TNumber}},
		{`""`, []TokenType{TString}},
		{`"hello"`, []TokenType{TString}},
		{`"\""`, []TokenType{TString}},
		{`"\\"`, []TokenType{TString}},
		{`"ሴ"`, []TokenType{TString}},
		{`"a // not a comment"`, []TokenType{TString}},
		{`"a /* neither */"`, []TokenType{TString}},
		{`[]`, []TokenType{TLSquare, TRSquare}},
		{`{}`, []TokenType{TLCurl, TRCurl}},
		{`[1, 2]`, []TokenType{TLSquare, TNumber, TComma, TNumber, TRSquare}},
		{`{"a": 1}`, []TokenType{TLCurl, TString, TColon, TNumber, TRCurl}},
		{"// c", []TokenType{TLineComment}},
		{"// c\n1", []TokenType{TLineComment, TNumber}},
		{"/* c */ 1", []TokenType{TBlockComment, TNumber}},
		{"/* a\nb */ 1", []TokenType{TBlockComment, TNumber}},
		{"/* ** */", []TokenType{TBlockComment}},
		{`[1,]`, []TokenType{TLSquare, TNumber, TComma, TRSquare}},
	}
	for _, tt := range tests {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("Tokenize(%q): %v", tt.in, err)
			continue
		}
		got := types(toks)
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q): got %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d]: got %s, want %s", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestTokenizeErrs(t *testing.T) {
	tests := []struct {
		in string
		e  error
	}{
		{`"unterminated`, ErrUnterminated},
		{`"bad \q escape"`, ErrBadEscape},
		{`"bad \u12 unicode"`, ErrBadUnicode},
		{"/* never closed", ErrUnterminatedComment},
		{`/ alone`, ErrInvalidCharacter},
		{`@`, ErrInvalidCharacter},
		{`nul`, ErrInvalidCharacter},
		{`truex`, ErrInvalidCharacter},
		{`01`, ErrNumberLeadingZero},
		{`-`, ErrNumber},
		{`'single'`, ErrInvalidCharacter},
	}
	for _, tt := range tests {
		_, err := Tokenize(nil, []byte(tt.in))
		if err == nil {
			t.Errorf("Tokenize(%q): expected error %v", tt.in, tt.e)
			continue
		}
		if !errors.Is(err, tt.e) {
			t.Errorf("Tokenize(%q): got %v, want %v", tt.in, err, tt.e)
		}
	}
}

func TestTokenizeGaps(t *testing.T) {
	toks, err := Tokenize(nil, []byte("[1,\n2,\n\n\n3]"))
	if err != nil {
		t.Fatal(err)
	}
	// gaps: [ 1 , 2 , 3 ]
	want := []int{0, 0, 0, 1, 0, 2, 0}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, g := range want {
		if toks[i].Gap != g {
			t.Errorf("token %d (%s): gap %d, want %d", i, toks[i].Type, toks[i].Gap, g)
		}
	}
}

func TestTokenizePos(t *testing.T) {
	toks, err := Tokenize(nil, []byte("{\n  \"a\": 1\n}"))
	if err != nil {
		t.Fatal(err)
	}
	key := toks[1]
	if key.Type != TString {
		t.Fatalf("expected TString, got %s", key.Type)
	}
	if l, c := key.Pos.LineCol(); l != 1 || c != 2 {
		t.Errorf("key position: line=%d col=%d, want line=1 col=2", l, c)
	}
	closing := toks[len(toks)-1]
	if l, c := closing.Pos.LineCol(); l != 2 || c != 0 {
		t.Errorf("closing position: line=%d col=%d, want line=2 col=0", l, c)
	}
}

func TestTokenizeBlockCommentNewlines(t *testing.T) {
	// newlines inside a block comment must be indexed so positions of
	// later tokens resolve to the right line
	toks, err := Tokenize(nil, []byte("[/* a\nb\nc */ 1]"))
	if err != nil {
		t.Fatal(err)
	}
	num := toks[2]
	if num.Type != TNumber {
		t.Fatalf("expected TNumber, got %s", num.Type)
	}
	if l, _ := num.Pos.LineCol(); l != 2 {
		t.Errorf("number line: got %d, want 2", l)
	}
}

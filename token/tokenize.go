package token

// Tokenize scans src into a flat token sequence, appending to dst. All
// whitespace is discarded; newlines between tokens are counted into the
// following token's Gap field (capped at 2). Comments are ordinary tokens
// here; the document builder decides what to do with them.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := NewPosDoc(src)
	var (
		i   int
		gap int
		n   = len(src)
	)
	take := func() int {
		g := gap
		if g > 2 {
			g = 2
		}
		gap = 0
		return g
	}
	for i < n {
		c := src[i]
		switch c {
		case '\n':
			posDoc.nl(i)
			gap++
			i++
			continue
		case ' ', '\t', '\r', '\v', '\f':
			i++
			continue

		case '{':
			dst = append(dst, Token{Type: TLCurl, Pos: posDoc.Pos(i), Bytes: src[i : i+1], Gap: take()})
			i++
		case '}':
			dst = append(dst, Token{Type: TRCurl, Pos: posDoc.Pos(i), Bytes: src[i : i+1], Gap: take()})
			i++
		case '[':
			dst = append(dst, Token{Type: TLSquare, Pos: posDoc.Pos(i), Bytes: src[i : i+1], Gap: take()})
			i++
		case ']':
			dst = append(dst, Token{Type: TRSquare, Pos: posDoc.Pos(i), Bytes: src[i : i+1], Gap: take()})
			i++
		case ':':
			dst = append(dst, Token{Type: TColon, Pos: posDoc.Pos(i), Bytes: src[i : i+1], Gap: take()})
			i++
		case ',':
			dst = append(dst, Token{Type: TComma, Pos: posDoc.Pos(i), Bytes: src[i : i+1], Gap: take()})
			i++

		case '/':
			if i+1 >= n {
				return nil, NewTokenizeErr(ErrInvalidCharacter, posDoc.Pos(i))
			}
			switch src[i+1] {
			case '/':
				sz := lineComment(src[i:])
				dst = append(dst, Token{Type: TLineComment, Pos: posDoc.Pos(i), Bytes: src[i : i+sz], Gap: take()})
				i += sz
			case '*':
				sz, err := blockComment(src[i:])
				if err != nil {
					return nil, NewTokenizeErr(err, posDoc.Pos(i))
				}
				// record newlines inside the comment so later
				// positions resolve to the right line
				for j := i; j < i+sz; j++ {
					if src[j] == '\n' {
						posDoc.nl(j)
					}
				}
				dst = append(dst, Token{Type: TBlockComment, Pos: posDoc.Pos(i), Bytes: src[i : i+sz], Gap: take()})
				i += sz
			default:
				return nil, NewTokenizeErr(ErrInvalidCharacter, posDoc.Pos(i))
			}

		case '"':
			sz, err := quoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: src[i : i+sz], Gap: take()})
			i += sz

		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			sz, err := number(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TNumber, Pos: posDoc.Pos(i), Bytes: src[i : i+sz], Gap: take()})
			i += sz

		case 'n':
			sz, err := keyword(src[i:], "null", posDoc.Pos(i))
			if err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TNull, Pos: posDoc.Pos(i), Bytes: src[i : i+sz], Gap: take()})
			i += sz
		case 't':
			sz, err := keyword(src[i:], "true", posDoc.Pos(i))
			if err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TTrue, Pos: posDoc.Pos(i), Bytes: src[i : i+sz], Gap: take()})
			i += sz
		case 'f':
			sz, err := keyword(src[i:], "false", posDoc.Pos(i))
			if err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TFalse, Pos: posDoc.Pos(i), Bytes: src[i : i+sz], Gap: take()})
			i += sz

		default:
			return nil, NewTokenizeErr(ErrInvalidCharacter, posDoc.Pos(i))
		}
	}
	return dst, nil
}

func keyword(d []byte, kw string, pos *Pos) (int, error) {
	if len(d) < len(kw) || string(d[:len(kw)]) != kw {
		return 0, NewTokenizeErr(ErrInvalidCharacter, pos)
	}
	if len(d) > len(kw) && literalByte(d[len(kw)]) {
		return 0, NewTokenizeErr(ErrInvalidCharacter, pos)
	}
	return len(kw), nil
}

func literalByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_', c == '-', c == '.':
		return true
	default:
		return false
	}
}

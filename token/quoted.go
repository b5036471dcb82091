package token

import (
	"unicode"
	"unicode/utf8"
)

// quoted scans a double-quoted JSON string starting at d[0] == '"'. It
// returns the number of bytes consumed, including both quotes. The string
// content is not decoded; the formatter copies it verbatim.
func quoted(d []byte) (int, error) {
	escaped := false
	i := 1
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		switch r {
		case utf8.RuneError:
			return 0, ErrBadUTF8
		case '"':
			if !escaped {
				return i, nil
			}
			escaped = false
		case 'u':
			if escaped {
				if i+4 > n {
					return i, ErrUnterminated
				}
				if !allHex(d[i : i+4]) {
					return i, ErrBadUnicode
				}
			}
			escaped = false
		case '/', 'b', 'f', 'n', 'r', 't':
			escaped = false
		case '\\':
			escaped = !escaped
		default:
			if unicode.IsControl(r) {
				return i, ErrUnicodeControl
			}
			if escaped {
				return i, ErrBadEscape
			}
		}
	}
	return 0, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

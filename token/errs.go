package token

import (
	"errors"
)

var (
	ErrBadUTF8             = errors.New("bad utf8")
	ErrUnterminated        = errors.New("unterminated string")
	ErrUnterminatedComment = errors.New("unterminated block comment")
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrNumberLeadingZero   = errors.New("leading zero")
	ErrBadEscape           = errors.New("bad escape")
	ErrBadUnicode          = errors.New("bad unicode")
	ErrUnicodeControl      = errors.New("unicode control")
	ErrNumber              = errors.New("number")
)

package ir

import (
	"errors"
	"fmt"
)

// ErrParse is the root of all document building errors.  The more
// specific sentinels below wrap it, so errors.Is(err, ErrParse)
// matches any of them.
var (
	ErrParse         = errors.New("parse error")
	ErrEmptyDoc      = fmt.Errorf("%w: empty document", ErrParse)
	ErrTrailingData  = fmt.Errorf("%w: data after top level value", ErrParse)
	ErrUnexpectedEOF = fmt.Errorf("%w: unexpected end of input", ErrParse)
)

package token

import "errors"

var (
	ErrUnterminated = errors.New("unterminated string")
	ErrBadUnicode   = errors.New("bad unicode escape")
	ErrNotQuoted    = errors.New("not a quoted string")
)

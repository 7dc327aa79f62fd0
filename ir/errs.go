package ir

import "errors"

var (
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrUnsupportedType = errors.New("unsupported type")
)

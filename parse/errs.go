package parse

import (
	"errors"
	"fmt"

	"github.com/toon-format/go-toon/token"
)

var (
	ErrSyntax        = errors.New("syntax error")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrInvalidFormat = errors.New("invalid format")
	ErrIndentation   = errors.New("indentation error")
)

// SyntaxError carries the position of a structural violation and,
// where one is natural, a suggestion for fixing it.
type SyntaxError struct {
	Pos        *token.Pos
	Msg        string
	Suggestion string
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

func (e *SyntaxError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("%s: %s %s", ErrSyntax, e.Msg, e.Pos)
	}
	return fmt.Sprintf("%s: %s %s (%s)", ErrSyntax, e.Msg, e.Pos, e.Suggestion)
}

type IndentationError struct {
	Pos             *token.Pos
	Expected, Found int
}

func (e *IndentationError) Unwrap() error { return ErrIndentation }

func (e *IndentationError) Error() string {
	return fmt.Sprintf("%s: expected %d spaces, found %d %s",
		ErrIndentation, e.Expected, e.Found, e.Pos)
}

type EOFError struct {
	Pos      *token.Pos
	Expected string
}

func (e *EOFError) Unwrap() error { return ErrUnexpectedEOF }

func (e *EOFError) Error() string {
	return fmt.Sprintf("%s: expected %s %s", ErrUnexpectedEOF, e.Expected, e.Pos)
}

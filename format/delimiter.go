package format

import (
	"errors"
	"fmt"
)

// Delimiter separates the cells of inline and tabular arrays.
type Delimiter int

const (
	Comma Delimiter = iota
	Tab
	Pipe
)

var ErrBadDelimiter = errors.New("bad delimiter")

func ParseDelimiter(v string) (Delimiter, error) {
	d, ok := map[string]Delimiter{
		"c":     Comma,
		",":     Comma,
		"comma": Comma,
		"t":     Tab,
		"\t":    Tab,
		"tab":   Tab,
		"p":     Pipe,
		"|":     Pipe,
		"pipe":  Pipe,
	}[v]
	if ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDelimiter, v)
}

func (d Delimiter) String() string {
	b, err := d.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(b)
}

func (d Delimiter) MarshalText() ([]byte, error) {
	switch d {
	case Comma:
		return []byte("comma"), nil
	case Tab:
		return []byte("tab"), nil
	case Pipe:
		return []byte("pipe"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a delimiter>", d)
	}
}

func (d *Delimiter) UnmarshalText(v []byte) error {
	pd, err := ParseDelimiter(string(v))
	if err != nil {
		return err
	}
	*d = pd
	return nil
}

func (d Delimiter) Rune() rune {
	switch d {
	case Tab:
		return '\t'
	case Pipe:
		return '|'
	default:
		return ','
	}
}

// Sep is the string that separates cells in rows and inline arrays.
func (d Delimiter) Sep() string {
	return string(d.Rune())
}

// HeaderSuffix is the delimiter indicator inside an array header:
// nothing for comma, four literal spaces for tab, '|' for pipe.
func (d Delimiter) HeaderSuffix() string {
	switch d {
	case Tab:
		return "    "
	case Pipe:
		return "|"
	default:
		return ""
	}
}

// HeaderSep joins header names inside the {...} block. Tab rows use a
// real tab but headers show it as four spaces.
func (d Delimiter) HeaderSep() string {
	if d == Tab {
		return "    "
	}
	return d.Sep()
}

func Delimiters() []Delimiter {
	return []Delimiter{Comma, Tab, Pipe}
}

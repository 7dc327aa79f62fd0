package token

import (
	"errors"
	"testing"
)

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		v     string
		delim rune
		want  bool
	}{
		{"hello", ',', false},
		{"hello world", ',', false},
		{"", ',', true},
		{" lead", ',', true},
		{"trail ", ',', true},
		{"a:b", ',', true},
		{"a\"b", ',', true},
		{"a\\b", ',', true},
		{"a\nb", ',', true},
		{"a\tb", ',', true},
		{"true", ',', true},
		{"false", ',', true},
		{"null", ',', true},
		{"42", ',', true},
		{"-1.5", ',', true},
		{"1e14", ',', true},
		{"123n", ',', true},
		{"-42n", ',', true},
		{"12x3n", ',', false},
		{"n", ',', false},
		{"-n", ',', false},
		{"nn", ',', false},
		{"- item", ',', true},
		{"[3]", ',', true},
		{"[x", ',', false},
		{"{a}", ',', true},
		{"a,b", ',', true},
		{"a,b", '|', false},
		{"a|b", '|', true},
		{"a|b", ',', false},
	}
	for _, tt := range tests {
		if got := NeedsQuote(tt.v, tt.delim); got != tt.want {
			t.Errorf("NeedsQuote(%q, %q) = %v, want %v", tt.v, tt.delim, got, tt.want)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	tests := []string{
		"",
		"hello",
		"with \"quotes\"",
		"back\\slash",
		"line\nbreak",
		"tab\tand\rcr",
		"nul\x00byte",
		"ctl\x01byte",
		"unicode é本",
	}
	for _, v := range tests {
		q := Quote(v)
		got, err := Unquote(q)
		if err != nil {
			t.Errorf("Unquote(%q): %v", q, err)
			continue
		}
		if got != v {
			t.Errorf("Unquote(Quote(%q)) = %q", v, got)
		}
	}
}

func TestUnquoteEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"aAb"`, "aAb"},
		{`"本"`, "本"},
		{`"\q"`, `\q`}, // unknown escapes stay literal
		{`"\0"`, "\x00"},
	}
	for _, tt := range tests {
		got, err := Unquote(tt.in)
		if err != nil {
			t.Errorf("Unquote(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Unquote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuotedLen(t *testing.T) {
	n, err := QuotedLen([]byte(`"a\"b" rest`))
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Errorf("QuotedLen = %d, want 6", n)
	}
	if _, err := QuotedLen([]byte(`"unterminated`)); !errors.Is(err, ErrUnterminated) {
		t.Errorf("got %v, want ErrUnterminated", err)
	}
	if _, err := QuotedLen([]byte(`nope`)); !errors.Is(err, ErrNotQuoted) {
		t.Errorf("got %v, want ErrNotQuoted", err)
	}
	if _, err := Unquote(`"bad \u00ZZ"`); !errors.Is(err, ErrBadUnicode) {
		t.Errorf("got %v, want ErrBadUnicode", err)
	}
}

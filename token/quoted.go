package token

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// NeedsQuote reports whether v must be quoted when written with the
// active delimiter delim. Delimiters that are not active do not force
// quoting.
func NeedsQuote(v string, delim rune) bool {
	if v == "" {
		return true
	}
	if v[0] == ' ' || v[len(v)-1] == ' ' {
		return true
	}
	if strings.ContainsAny(v, ":\"\\\n\r\t\x00") {
		return true
	}
	if strings.ContainsRune(v, delim) {
		return true
	}
	switch v {
	case "true", "false", "null":
		return true
	}
	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	if bigIntLexeme(v) {
		return true
	}
	if strings.HasPrefix(v, "- ") {
		return true
	}
	if v[0] == '[' && strings.ContainsRune(v, ']') {
		return true
	}
	if v[0] == '{' && strings.ContainsRune(v, '}') {
		return true
	}
	return false
}

// bigIntLexeme reports whether v reads back as a big integer: an
// optional '-', digits, and a trailing 'n'.
func bigIntLexeme(v string) bool {
	if len(v) > 0 && v[0] == '-' {
		v = v[1:]
	}
	if len(v) < 2 || v[len(v)-1] != 'n' {
		return false
	}
	for i := 0; i < len(v)-1; i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}

func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case 0:
			d = append(d, '\\', '0')
		default:
			if r < 0x20 {
				d = append(d, '\\', 'u')
				const hex = "0123456789abcdef"
				d = append(d, '0', '0', hex[r>>4&0xf], hex[r&0xf])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// QuotedLen scans a quoted string lexeme at the start of d and returns
// its length in bytes, including both quotes.
func QuotedLen(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, ErrNotQuoted
	}
	i := 1
	for i < len(d) {
		switch d[i] {
		case '"':
			return i + 1, nil
		case '\\':
			if i+1 >= len(d) {
				return 0, ErrUnterminated
			}
			i += 2
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

// Unquote decodes a quoted string lexeme, quotes included. Recognized
// escapes are \\ \" \n \r \t \b \f \0 and \uXXXX; any other backslash
// sequence is preserved literally.
func Unquote(v string) (string, error) {
	if len(v) < 2 || v[0] != '"' || v[len(v)-1] != '"' {
		return "", ErrNotQuoted
	}
	b := &strings.Builder{}
	d := v[1 : len(v)-1]
	i := 0
	for i < len(d) {
		c := d[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(d) {
			return "", ErrUnterminated
		}
		switch d[i+1] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case '0':
			b.WriteByte(0)
		case 'u':
			if i+6 > len(d) {
				return "", ErrBadUnicode
			}
			u, err := strconv.ParseUint(d[i+2:i+6], 16, 32)
			if err != nil {
				return "", ErrBadUnicode
			}
			r := rune(u)
			if utf16.IsSurrogate(r) {
				r = utf8.RuneError
			}
			b.WriteRune(r)
			i += 6
			continue
		default:
			// unknown escape, keep both characters
			b.WriteByte('\\')
			b.WriteByte(d[i+1])
		}
		i += 2
	}
	return b.String(), nil
}

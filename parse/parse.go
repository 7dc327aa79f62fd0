// Package parse reads toon text into ir trees.
package parse

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/toon-format/go-toon/format"
	"github.com/toon-format/go-toon/ir"
	"github.com/toon-format/go-toon/token"
)

// Parse reads a single document. Tabular arrays are normalized into
// arrays of objects unless ParseKeepTables is given. The delimiter is
// read from the array headers in the text, never from options.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{d: d, doc: token.NewDoc(d), opts: pOpts}
	p.skipBlankLines()
	if p.atEnd() {
		return nil, &EOFError{Pos: p.doc.End(), Expected: "a value"}
	}
	p.curIndent = p.lineIndent()
	res, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipBlankLines()
	if !p.atEnd() {
		return nil, p.syntaxErr("trailing content after document", "")
	}
	if !pOpts.keepTables {
		res = res.Normalize()
	}
	return res, nil
}

// parser is a single owned cursor over the input. Scope base
// indentations live on the recursion stack; curIndent tracks the
// most recently measured line indentation.
type parser struct {
	d         []byte
	off       int
	doc       *token.PosDoc
	curIndent int
	opts      *parseOpts
}

func (p *parser) atEnd() bool {
	return p.off >= len(p.d)
}

func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.d[p.off]
}

func (p *parser) next() byte {
	c := p.peek()
	if !p.atEnd() {
		p.off++
	}
	return c
}

func (p *parser) skipSpace() {
	for !p.atEnd() {
		switch p.d[p.off] {
		case ' ', '\r':
			p.off++
		default:
			return
		}
	}
}

func (p *parser) skipBlankLines() {
	for {
		mark := p.off
		p.skipSpace()
		if p.peek() != '\n' {
			if p.atEnd() {
				return
			}
			p.off = mark
			return
		}
		p.next()
	}
}

// lineIndent counts the leading spaces at the cursor, which must sit
// at the start of a line. Nothing is consumed.
func (p *parser) lineIndent() int {
	n := 0
	for i := p.off; i < len(p.d) && p.d[i] == ' '; i++ {
		n++
	}
	return n
}

func (p *parser) syntaxErr(msg, suggestion string) error {
	return &SyntaxError{Pos: p.doc.Pos(p.off), Msg: msg, Suggestion: suggestion}
}

// stopByte terminates unquoted strings and scalar lexemes.
func stopByte(c byte) bool {
	switch c {
	case ':', ',', '\n', '\r', '\t', '|', ']', '}':
		return true
	default:
		return false
	}
}

func (p *parser) parseValue() (*ir.Node, error) {
	p.skipSpace()
	if p.atEnd() || p.peek() == '\n' {
		return &ir.Node{Type: ir.ObjectType}, nil
	}
	switch p.peek() {
	case '[':
		return p.parseArray()
	case '"':
		// a ':' after the closing quote means this is a quoted key
		if p.lineHasKey() {
			return p.parseObject()
		}
		s, err := p.parseQuoted()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	}
	if y, ok, err := p.parseScalarLexeme(); ok || err != nil {
		return y, err
	}
	if p.lineHasKey() {
		return p.parseObject()
	}
	s, err := p.parseUnquoted()
	if err != nil {
		return nil, err
	}
	return coerce(s), nil
}

// parsePrimitive parses a scalar cell: quoted string, literal, number
// or unquoted string with coercion. Arrays and objects are not
// permitted here.
func (p *parser) parsePrimitive() (*ir.Node, error) {
	p.skipSpace()
	if p.peek() == '"' {
		s, err := p.parseQuoted()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	}
	if y, ok, err := p.parseScalarLexeme(); ok || err != nil {
		return y, err
	}
	s, err := p.parseUnquoted()
	if err != nil {
		return nil, err
	}
	return coerce(s), nil
}

// parseScalarLexeme consumes a true/false/null literal or a number,
// but only when the whole lexeme is followed by a terminator. In all
// other cases nothing is consumed and the caller falls back to the
// unquoted string path.
func (p *parser) parseScalarLexeme() (*ir.Node, bool, error) {
	rest := p.d[p.off:]
	for _, lit := range []struct {
		text string
		node func() *ir.Node
	}{
		{"true", func() *ir.Node { return ir.FromBool(true) }},
		{"false", func() *ir.Node { return ir.FromBool(false) }},
		{"null", ir.Null},
	} {
		if bytes.HasPrefix(rest, []byte(lit.text)) && atTerminator(rest, len(lit.text)) {
			p.off += len(lit.text)
			return lit.node(), true, nil
		}
	}
	c := p.peek()
	if c != '-' && (c < '0' || c > '9') {
		return nil, false, nil
	}
	n := numberLen(rest)
	if n == 0 {
		return nil, false, nil
	}
	if n < len(rest) && rest[n] == 'n' && atTerminator(rest, n+1) {
		if bi, ok := new(big.Int).SetString(string(rest[:n]), 10); ok {
			p.off += n + 1
			return ir.FromBigInt(bi), true, nil
		}
	}
	if !atTerminator(rest, n) {
		return nil, false, nil
	}
	lex := string(rest[:n])
	if !strings.Contains(lex, ".") {
		i, err := strconv.ParseInt(lex, 10, 64)
		if err != nil {
			return nil, false, nil
		}
		p.off += n
		return ir.FromInt(i), true, nil
	}
	f, err := strconv.ParseFloat(lex, 64)
	if err != nil {
		return nil, false, nil
	}
	p.off += n
	return ir.FromFloat(f), true, nil
}

func atTerminator(d []byte, i int) bool {
	return i >= len(d) || stopByte(d[i])
}

// numberLen measures an optional '-', digits, and an optional '.'
// with more digits.
func numberLen(d []byte) int {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	start := i
	for i < len(d) && d[i] >= '0' && d[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	if i < len(d) && d[i] == '.' {
		i++
		for i < len(d) && d[i] >= '0' && d[i] <= '9' {
			i++
		}
	}
	return i
}

// lineHasKey scans the rest of the current line for a ':' outside
// quotes. It decides between object and bare scalar at value
// positions.
func (p *parser) lineHasKey() bool {
	inQ := false
	for i := p.off; i < len(p.d); i++ {
		switch p.d[i] {
		case '\\':
			if inQ {
				i++
			}
		case '"':
			inQ = !inQ
		case ':':
			if !inQ {
				return true
			}
		case '\n':
			return false
		}
	}
	return false
}

func (p *parser) parseQuoted() (string, error) {
	n, err := token.QuotedLen(p.d[p.off:])
	if err != nil {
		if errors.Is(err, token.ErrUnterminated) {
			return "", &EOFError{Pos: p.doc.End(), Expected: "closing '\"'"}
		}
		return "", p.syntaxErr(err.Error(), "")
	}
	s, err := token.Unquote(string(p.d[p.off : p.off+n]))
	if err != nil {
		return "", p.syntaxErr(err.Error(), "")
	}
	p.off += n
	return s, nil
}

func (p *parser) parseUnquoted() (string, error) {
	start := p.off
	for !p.atEnd() && !stopByte(p.peek()) {
		p.off++
	}
	if start == p.off {
		return "", p.syntaxErr("expected a string", "")
	}
	return strings.TrimSpace(string(p.d[start:p.off])), nil
}

// parseString parses a key, header name or string cell.
func (p *parser) parseString() (string, error) {
	if p.peek() == '"' {
		return p.parseQuoted()
	}
	return p.parseUnquoted()
}

// coerce applies literal coercion to an unquoted string: reserved
// words, integers, suffixed big integers and floats take their typed
// meaning, everything else stays a string.
func coerce(s string) *ir.Node {
	switch s {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	case "null":
		return ir.Null()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ir.FromInt(i)
	}
	if len(s) > 1 && s[len(s)-1] == 'n' {
		if bi, ok := new(big.Int).SetString(s[:len(s)-1], 10); ok {
			return ir.FromBigInt(bi)
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return ir.FromFloat(f)
	}
	return ir.FromString(s)
}

func (p *parser) parseArray() (*ir.Node, error) {
	p.next() // consume '['
	if p.opts.marker != 0 {
		if p.peek() == byte(p.opts.marker) {
			p.next()
		}
	} else if p.peek() == '#' {
		p.next()
	}
	start := p.off
	for c := p.peek(); c >= '0' && c <= '9'; c = p.peek() {
		p.next()
	}
	if start == p.off {
		return nil, p.syntaxErr("invalid array length", "array headers look like [3]: or [2]{a,b}:")
	}
	n, err := strconv.Atoi(string(p.d[start:p.off]))
	if err != nil {
		return nil, fmt.Errorf("%w: array length: %s", ErrInvalidFormat, p.doc.Pos(start))
	}
	delim := format.Comma
	switch {
	case p.peek() == '|':
		p.next()
		delim = format.Pipe
	case p.peek() == ' ':
		save := p.off
		spaces := 0
		for p.peek() == ' ' {
			p.next()
			spaces++
		}
		if spaces >= 4 {
			delim = format.Tab
		} else {
			p.off = save
		}
	}
	if p.peek() != ']' {
		return nil, p.syntaxErr("expected ']' in array header", "")
	}
	p.next()
	if p.peek() == '{' {
		return p.parseTable(n, delim)
	}
	if n == 0 {
		// the colon after an empty header is optional
		if p.peek() == ':' {
			p.next()
		}
		return ir.FromSlice(nil), nil
	}
	if p.peek() != ':' {
		return nil, p.syntaxErr("expected ':' after array header", "")
	}
	p.next()
	p.skipSpace()
	if p.atEnd() || p.peek() == '\n' {
		return p.parseListArray(n)
	}
	return p.parseInlineArray(n, delim)
}

func (p *parser) parseInlineArray(n int, delim format.Delimiter) (*ir.Node, error) {
	elts := make([]*ir.Node, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			if p.peek() == byte(delim.Rune()) {
				p.next()
			}
			if delim != format.Tab {
				p.skipSpace()
			}
		}
		if p.atEnd() || p.peek() == '\n' {
			return nil, p.syntaxErr(
				fmt.Sprintf("expected %d array elements, found %d", n, i), "")
		}
		y, err := p.parsePrimitive()
		if err != nil {
			return nil, err
		}
		elts = append(elts, y)
	}
	return ir.FromSlice(elts), nil
}

func (p *parser) parseListArray(n int) (*ir.Node, error) {
	elts := make([]*ir.Node, 0, n)
	for i := 0; i < n; i++ {
		if p.peek() == '\n' {
			p.next()
		}
		if p.atEnd() {
			return nil, &EOFError{
				Pos:      p.doc.End(),
				Expected: fmt.Sprintf("%d list entries, found %d", n, i),
			}
		}
		dashIndent := p.lineIndent()
		p.skipSpace()
		if p.peek() != '-' {
			return nil, p.syntaxErr("expected '- ' list entry",
				"list arrays put each element on its own line after '- '")
		}
		p.next()
		if p.peek() != ' ' {
			return nil, p.syntaxErr("expected space after '-'", "")
		}
		p.next()
		// entry content owns everything indented past the dash
		p.curIndent = dashIndent + 2
		y, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elts = append(elts, y)
	}
	return ir.FromSlice(elts), nil
}

func (p *parser) parseTable(n int, delim format.Delimiter) (*ir.Node, error) {
	p.next() // consume '{'
	headers, err := p.parseTableHeaders(delim)
	if err != nil {
		return nil, err
	}
	if p.peek() != '}' {
		return nil, p.syntaxErr("expected '}' after table headers", "")
	}
	p.next()
	if p.peek() != ':' {
		return nil, p.syntaxErr("expected ':' after table headers", "")
	}
	p.next()
	rows := make([][]*ir.Node, 0, n)
	for i := 0; i < n; i++ {
		if p.peek() == '\n' {
			p.next()
		}
		p.skipSpace()
		if p.atEnd() {
			return nil, &EOFError{
				Pos:      p.doc.End(),
				Expected: fmt.Sprintf("%d table rows, found %d", n, i),
			}
		}
		row := make([]*ir.Node, 0, len(headers))
		for j := range headers {
			if j > 0 {
				if p.peek() == byte(delim.Rune()) {
					p.next()
				}
				if delim != format.Tab {
					p.skipSpace()
				}
			}
			if p.atEnd() || p.peek() == '\n' {
				return nil, p.syntaxErr(
					fmt.Sprintf("expected %d cells in table row, found %d", len(headers), j), "")
			}
			y, err := p.parsePrimitive()
			if err != nil {
				return nil, err
			}
			row = append(row, y)
		}
		rows = append(rows, row)
	}
	return ir.FromTable(headers, rows), nil
}

func (p *parser) parseTableHeaders(delim format.Delimiter) ([]string, error) {
	if delim == format.Tab {
		// tab headers are written joined by four literal spaces
		start := p.off
		for !p.atEnd() && p.peek() != '}' && p.peek() != '\n' {
			p.off++
		}
		var headers []string
		for _, h := range strings.Split(string(p.d[start:p.off]), "    ") {
			headers = append(headers, strings.TrimSpace(h))
		}
		return headers, nil
	}
	var headers []string
	for !p.atEnd() && p.peek() != '}' {
		h, err := p.parseString()
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
		if p.peek() == byte(delim.Rune()) {
			p.next()
		} else if p.peek() == ',' {
			p.next()
		} else {
			break
		}
	}
	return headers, nil
}

// parseObject reads key: value fields at a single indentation level.
// The base indentation is the indent of the line where parsing began;
// a dedent below it ends the scope. Root objects (base 0) end only at
// end of input or on a syntax error.
func (p *parser) parseObject() (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	base := p.curIndent
	for {
		// a nested value may have consumed its trailing newline and
		// left the cursor at the start of a further dedented line
		if base > 0 && p.curIndent < base {
			break
		}
		p.skipSpace()
		if p.atEnd() {
			break
		}
		if p.peek() == '\n' {
			p.next()
			if p.atEnd() {
				break
			}
			p.curIndent = p.lineIndent()
			continue
		}
		if p.curIndent > base {
			return nil, &IndentationError{
				Pos:      p.doc.Pos(p.off),
				Expected: base,
				Found:    p.curIndent,
			}
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ':' {
			return nil, p.syntaxErr(fmt.Sprintf("expected ':' after key %q", key),
				"did you mean `key: value`?")
		}
		p.next()
		p.skipSpace()
		var val *ir.Node
		switch {
		case p.atEnd():
			val = &ir.Node{Type: ir.ObjectType}
		case p.peek() == '\n':
			p.next()
			nextIndent := p.lineIndent()
			p.curIndent = nextIndent
			if p.atEnd() || nextIndent <= base {
				// nothing nested under the key
				val = &ir.Node{Type: ir.ObjectType}
			} else {
				val, err = p.parseValue()
				if err != nil {
					return nil, err
				}
			}
		default:
			val, err = p.parseValue()
			if err != nil {
				return nil, err
			}
		}
		res.Set(key, val)
	}
	return res, nil
}

package encode

import "github.com/toon-format/go-toon/format"

type EncodeOption func(*EncState)

// EncodeIndent sets the indentation width in spaces.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeDelimiter sets the delimiter used in inline arrays and table
// rows. Array headers record the delimiter, so documents carry it on
// the way back in.
func EncodeDelimiter(d format.Delimiter) EncodeOption {
	return func(es *EncState) { es.delim = d }
}

// EncodeLengthMarker places c before the length in non-empty array
// headers, as in [#3]:.
func EncodeLengthMarker(c rune) EncodeOption {
	return func(es *EncState) { es.marker = c }
}

// EncodePretty separates top level fields with blank lines.
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

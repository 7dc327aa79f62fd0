package parse

type parseOpts struct {
	marker     rune
	keepTables bool
}

type ParseOption func(*parseOpts)

// ParseLengthMarker makes the parser require that any length marker in
// an array header be the given character. Without this option a '#'
// marker is tolerated.
func ParseLengthMarker(c rune) ParseOption {
	return func(o *parseOpts) { o.marker = c }
}

// ParseKeepTables leaves tabular arrays as Table nodes instead of
// normalizing them into arrays of objects.
func ParseKeepTables() ParseOption {
	return func(o *parseOpts) { o.keepTables = true }
}

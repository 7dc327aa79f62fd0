package encode

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/toon-format/go-toon/format"
	"github.com/toon-format/go-toon/ir"
	"github.com/toon-format/go-toon/token"
)

type EncState struct {
	depth, indent int
	delim         format.Delimiter
	marker        rune
	pretty        bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a trailing newline. Arrays pick
// their own layout: all-scalar elements go inline, uniform flat
// objects go tabular, everything else becomes a dashed list.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(y *ir.Node, w io.Writer, es *EncState) error {
	switch y.Type {
	case ir.ObjectType:
		return encodeObject(y, w, es)
	case ir.ArrayType:
		return encodeArray(y.Values, w, es)
	case ir.TableType:
		return encodeTabular(y.Headers, y.Rows, w, es)
	default:
		return writeScalar(y, w, es)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeHeader(w io.Writer, es *EncState, s string) error {
	if es.Color != nil {
		s = es.Color(ir.ArrayType, HeaderColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, s string) error {
	if es.Color != nil {
		s = es.Color(ir.ArrayType, SepColor, s)
	}
	return writeString(w, s)
}

func (es *EncState) pad() string {
	return strings.Repeat(" ", es.depth*es.indent)
}

func encodeObject(y *ir.Node, w io.Writer, es *EncState) error {
	for i := range y.Fields {
		if i > 0 {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			if es.pretty && es.depth == 0 {
				if err := writeString(w, "\n"); err != nil {
					return err
				}
			}
		}
		if err := writeString(w, es.pad()); err != nil {
			return err
		}
		if err := encodeField(y.Fields[i].String, y.Values[i], w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeField(key string, val *ir.Node, w io.Writer, es *EncState) error {
	k := quoteCheck(key, es)
	if es.Color != nil {
		k = es.Color(ir.ObjectType, FieldColor, k)
	}
	if val.Type == ir.ObjectType {
		// empty objects leave a bare key line
		if err := writeString(w, k+":"); err != nil {
			return err
		}
		if len(val.Fields) == 0 {
			return nil
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		es.depth++
		err := encodeObject(val, w, es)
		es.depth--
		return err
	}
	if err := writeString(w, k+": "); err != nil {
		return err
	}
	return encode(val, w, es)
}

func arrayHeader(n int, suffix string, es *EncState) string {
	var b strings.Builder
	b.WriteByte('[')
	if es.marker != 0 && n > 0 {
		b.WriteRune(es.marker)
	}
	b.WriteString(strconv.Itoa(n))
	b.WriteString(suffix)
	b.WriteByte(']')
	return b.String()
}

func encodeArray(elts []*ir.Node, w io.Writer, es *EncState) error {
	if len(elts) == 0 {
		return writeHeader(w, es, "[0]:")
	}
	switch format.Select(elts) {
	case format.TabularLayout:
		hs := format.Headers(elts)
		rows := make([][]*ir.Node, len(elts))
		for i, e := range elts {
			row := make([]*ir.Node, len(hs))
			for j, h := range hs {
				row[j] = ir.Get(e, h)
			}
			rows[i] = row
		}
		return encodeTabular(hs, rows, w, es)
	case format.ListLayout:
		return encodeList(elts, w, es)
	default:
		return encodeInline(elts, w, es)
	}
}

func encodeInline(elts []*ir.Node, w io.Writer, es *EncState) error {
	hdr := arrayHeader(len(elts), es.delim.HeaderSuffix(), es)
	if err := writeHeader(w, es, hdr+": "); err != nil {
		return err
	}
	for i, e := range elts {
		if i > 0 {
			if err := writeSep(w, es, es.delim.Sep()); err != nil {
				return err
			}
		}
		if err := writeScalar(e, w, es); err != nil {
			return err
		}
	}
	return nil
}

// encodeList puts each element on its own dashed line one level past
// the header.
func encodeList(elts []*ir.Node, w io.Writer, es *EncState) error {
	if err := writeHeader(w, es, arrayHeader(len(elts), "", es)+":"); err != nil {
		return err
	}
	es.depth++
	defer func() { es.depth-- }()
	for _, e := range elts {
		if err := writeString(w, "\n"+es.pad()+"- "); err != nil {
			return err
		}
		if err := encodeListEntry(e, w, es); err != nil {
			return err
		}
	}
	return nil
}

// encodeListEntry writes one list element after its dash. Object
// entries put their first field on the dash line and continuation
// fields two columns past the dash, sorted by key.
func encodeListEntry(y *ir.Node, w io.Writer, es *EncState) error {
	if y.Type != ir.ObjectType {
		return encode(y, w, es)
	}
	if len(y.Fields) == 0 {
		return nil
	}
	keys := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		keys[i] = f.String
	}
	slices.Sort(keys)
	cont := "\n" + es.pad() + "  "
	es.depth++
	defer func() { es.depth-- }()
	for i, k := range keys {
		if i > 0 {
			if err := writeString(w, cont); err != nil {
				return err
			}
		}
		if err := encodeField(k, ir.Get(y, k), w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeTabular(hs []string, rows [][]*ir.Node, w io.Writer, es *EncState) error {
	var b strings.Builder
	b.WriteString(arrayHeader(len(rows), es.delim.HeaderSuffix(), es))
	b.WriteByte('{')
	for i, h := range hs {
		if i > 0 {
			b.WriteString(es.delim.HeaderSep())
		}
		b.WriteString(quoteCheck(h, es))
	}
	b.WriteString("}:")
	if err := writeHeader(w, es, b.String()); err != nil {
		return err
	}
	es.depth++
	defer func() { es.depth-- }()
	for _, row := range rows {
		if err := writeString(w, "\n"+es.pad()); err != nil {
			return err
		}
		for j, cell := range row {
			if j > 0 {
				if err := writeSep(w, es, es.delim.Sep()); err != nil {
					return err
				}
			}
			if cell == nil {
				cell = ir.Null()
			}
			if err := writeScalar(cell, w, es); err != nil {
				return err
			}
		}
	}
	return nil
}

func quoteCheck(v string, es *EncState) string {
	if token.NeedsQuote(v, es.delim.Rune()) {
		return token.Quote(v)
	}
	return v
}

func writeScalar(y *ir.Node, w io.Writer, es *EncState) error {
	s, err := scalarString(y, es)
	if err != nil {
		return err
	}
	if es.Color != nil {
		s = es.Color(y.Type, ValueColor, s)
	}
	return writeString(w, s)
}

func scalarString(y *ir.Node, es *EncState) (string, error) {
	switch y.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(y.Bool), nil
	case ir.NumberType:
		switch {
		case y.Int64 != nil:
			return strconv.FormatInt(*y.Int64, 10), nil
		case y.Special != ir.NoSpecial:
			// non-finite numbers have no textual form
			return "null", nil
		default:
			s := strconv.FormatFloat(*y.Float64, 'f', -1, 64)
			if s == "-0" {
				s = "0"
			}
			return s, nil
		}
	case ir.StringType:
		return quoteCheck(y.String, es), nil
	case ir.TimeType:
		return quoteCheck(y.Time.UTC().Format(time.RFC3339), es), nil
	case ir.BigIntType:
		// stays bare: quoting the wire form would read back as a String
		return y.Big.String() + "n", nil
	default:
		return "", fmt.Errorf("%w: %s in scalar position", ErrEncoding, y.Type)
	}
}

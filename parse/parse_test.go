package parse

import (
	"errors"
	"testing"

	"github.com/toon-format/go-toon/ir"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`},
		{in: `true`},
		{in: `false`},
		{in: `22`},
		{in: `-7`},
		{in: `1.5`},
		{in: `hello`},
		{in: `hello world`},
		{in: `"quoted: string"`},
		{in: `123456789012345678901234567890n`},
		{in: `[0]:`},
		{in: "[3]: 1,2,3"},
		{in: "[2]: a,b"},
		{in: "[3|]: a|b|c"},
		{in: "[2    ]: a\tb"},
		{in: "[#2]: 1,2"},
		{in: "x: 1\ny: 2"},
		{in: "a: b\nc:\n  d: 2\n  e: 3"},
		{in: `a: b
c:
  d: e
`},
		{in: `
a: b
c:
  e: f`},
		{in: "a:\n  b:\n    c: 1\nd: 2"},
		{in: "a:\nb: 2"},
		{in: `"a:b": 1`},
		{in: "tags: [3]: a,b,c"},
		{in: "items: [2]:\n  - 1\n  - x"},
		{in: "[2]:\n  - name: ada\n    role: admin\n  - name: bob"},
		{in: "users: [2]{id,name}:\n  1,ada\n  2,bob"},
		{in: "users: [2|]{id|name}:\n  1|ada\n  2|bob"},
		{in: "users: [1    ]{id    name}:\n  1\tada"},
	}
	for i, pt := range pts {
		_, err := Parse([]byte(pt.in))
		if !errors.Is(err, pt.e) {
			t.Errorf("test %d %q: got error %v, want %v", i, pt.in, err, pt.e)
		}
	}
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{in: "", e: ErrUnexpectedEOF},
		{in: `"unterminated`, e: ErrUnexpectedEOF},
		{in: "a: 1\nb 2", e: ErrSyntax},
		{in: "a: 1\n   b: 2", e: ErrIndentation},
		{in: "[2]: 1", e: ErrSyntax},
		{in: "[x]: 1", e: ErrSyntax},
		{in: "[2{a}: 1", e: ErrSyntax},
		{in: "[2]{id}:\n  1", e: ErrUnexpectedEOF},
		{in: "[2]:\n  - 1", e: ErrUnexpectedEOF},
		{in: "1\n2", e: ErrSyntax},
	}
	for i, pt := range pts {
		_, err := Parse([]byte(pt.in))
		if !errors.Is(err, pt.e) {
			t.Errorf("test %d %q: got error %v, want %v", i, pt.in, err, pt.e)
		}
	}
}

func mustParse(t *testing.T, in string, opts ...ParseOption) *ir.Node {
	t.Helper()
	y, err := Parse([]byte(in), opts...)
	if err != nil {
		t.Fatalf("Parse(%q): %v", in, err)
	}
	return y
}

func TestCoercion(t *testing.T) {
	doc := mustParse(t, "i: 42\nf: 1.5\ne: 1e14\nb: true\nn: null\ns: yes\nv: 1.2.3\nbig: 99n")
	if got, _ := ir.Get(doc, "i").AsI64(); got != 42 {
		t.Errorf("i = %d", got)
	}
	if got, _ := ir.Get(doc, "f").AsF64(); got != 1.5 {
		t.Errorf("f = %v", got)
	}
	if got, _ := ir.Get(doc, "e").AsF64(); got != 1e14 {
		t.Errorf("e = %v", got)
	}
	if got, _ := ir.Get(doc, "b").AsBool(); got != true {
		t.Errorf("b = %v", got)
	}
	if !ir.Get(doc, "n").IsNull() {
		t.Error("n is not null")
	}
	if got, _ := ir.Get(doc, "s").AsString(); got != "yes" {
		t.Errorf("s = %q", got)
	}
	if got, _ := ir.Get(doc, "v").AsString(); got != "1.2.3" {
		t.Errorf("v = %q", got)
	}
	if got, _ := ir.Get(doc, "big").AsBigInt(); got.Int64() != 99 {
		t.Errorf("big = %v", got)
	}
}

func TestQuotedValues(t *testing.T) {
	doc := mustParse(t, `s: "true"`+"\n"+`n: "42"`+"\n"+`e: ""`)
	for field, want := range map[string]string{"s": "true", "n": "42", "e": ""} {
		got, err := ir.Get(doc, field).AsString()
		if err != nil || got != want {
			t.Errorf("%s = %q, %v, want %q", field, got, err, want)
		}
	}
}

func TestInlineArrays(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"[3]: a,b,c", []string{"a", "b", "c"}},
		// unquoted cells stop at ',' even under pipe, so a
		// comma-bearing cell arrives quoted
		{"[3|]: a|\"b,c\"|d", []string{"a", "b,c", "d"}},
		{"[2    ]: x y\tz", []string{"x y", "z"}},
		{"[#2]: a,b", []string{"a", "b"}},
	}
	for _, tt := range tests {
		y := mustParse(t, tt.in)
		if y.Type != ir.ArrayType || len(y.Values) != len(tt.want) {
			t.Errorf("%q: got %v with %d values", tt.in, y.Type, len(y.Values))
			continue
		}
		for i, want := range tt.want {
			got, err := y.Values[i].AsString()
			if err != nil || got != want {
				t.Errorf("%q[%d] = %q, %v, want %q", tt.in, i, got, err, want)
			}
		}
	}
}

// A nested object whose first key is quoted starts its block with a
// '"', which must not be mistaken for a string value.
func TestQuotedFirstKey(t *testing.T) {
	y := mustParse(t, "outer:\n  \"a:b\": 1\nnext: 2")
	inner := ir.Get(y, "outer")
	if inner == nil || inner.Type != ir.ObjectType {
		t.Fatalf("outer = %v", inner)
	}
	ab := ir.Get(inner, "a:b")
	if ab == nil {
		t.Fatal("no a:b field")
	}
	if got, _ := ab.AsI64(); got != 1 {
		t.Errorf("outer[a:b] = %d", got)
	}
	next := ir.Get(y, "next")
	if next == nil {
		t.Fatal("no next field")
	}
	if got, _ := next.AsI64(); got != 2 {
		t.Errorf("next = %d", got)
	}
}

func TestEmptyArray(t *testing.T) {
	for _, in := range []string{"[0]:", "[0]"} {
		y := mustParse(t, in)
		if y.Type != ir.ArrayType || len(y.Values) != 0 {
			t.Errorf("%q: got %v with %d values", in, y.Type, len(y.Values))
		}
	}
}

func TestListArray(t *testing.T) {
	y := mustParse(t, "[3]:\n  - 1\n  - two\n  - [2]: 3,4")
	if len(y.Values) != 3 {
		t.Fatalf("%d values", len(y.Values))
	}
	if got, _ := y.Values[0].AsI64(); got != 1 {
		t.Errorf("[0] = %d", got)
	}
	if got, _ := y.Values[1].AsString(); got != "two" {
		t.Errorf("[1] = %q", got)
	}
	if y.Values[2].Type != ir.ArrayType {
		t.Errorf("[2] = %v", y.Values[2].Type)
	}
}

func TestListObjectEntries(t *testing.T) {
	y := mustParse(t, "[2]:\n  - name: ada\n    role: admin\n  - name: bob")
	if len(y.Values) != 2 {
		t.Fatalf("%d entries", len(y.Values))
	}
	first := y.Values[0]
	if got, _ := ir.Get(first, "name").AsString(); got != "ada" {
		t.Errorf("name = %q", got)
	}
	if got, _ := ir.Get(first, "role").AsString(); got != "admin" {
		t.Errorf("role = %q", got)
	}
	if got, _ := ir.Get(y.Values[1], "name").AsString(); got != "bob" {
		t.Errorf("second name = %q", got)
	}
}

func TestListEntryNestedObject(t *testing.T) {
	y := mustParse(t, "[1]:\n  - meta:\n      x: 1\n    name: a")
	entry := y.Values[0]
	meta := ir.Get(entry, "meta")
	if meta == nil || meta.Type != ir.ObjectType {
		t.Fatalf("meta = %v", meta)
	}
	if got, _ := ir.Get(meta, "x").AsI64(); got != 1 {
		t.Errorf("meta.x = %d", got)
	}
	if got, _ := ir.Get(entry, "name").AsString(); got != "a" {
		t.Errorf("name = %q", got)
	}
}

func TestTabularNormalized(t *testing.T) {
	y := mustParse(t, "users: [2]{id,name}:\n  1,ada\n  2,bob")
	users := ir.Get(y, "users")
	if users.Type != ir.ArrayType || len(users.Values) != 2 {
		t.Fatalf("users = %v with %d", users.Type, len(users.Values))
	}
	if got, _ := ir.Get(users.Values[1], "name").AsString(); got != "bob" {
		t.Errorf("row 1 name = %q", got)
	}
}

func TestTabularKeepTables(t *testing.T) {
	y, err := Parse([]byte("users: [2]{id,name}:\n  1,ada\n  2,bob"), ParseKeepTables())
	if err != nil {
		t.Fatal(err)
	}
	users := ir.Get(y, "users")
	if users.Type != ir.TableType {
		t.Fatalf("users = %v, want table", users.Type)
	}
	if len(users.Headers) != 2 || users.Headers[0] != "id" {
		t.Errorf("headers = %v", users.Headers)
	}
	if got, _ := users.Rows[0][1].AsString(); got != "ada" {
		t.Errorf("cell = %q", got)
	}
}

func TestLengthMarker(t *testing.T) {
	y := mustParse(t, "[~2]: 1,2", ParseLengthMarker('~'))
	if len(y.Values) != 2 {
		t.Fatalf("%d values", len(y.Values))
	}
	// the default marker is '#'
	y = mustParse(t, "[#2]: 1,2")
	if len(y.Values) != 2 {
		t.Fatalf("%d values", len(y.Values))
	}
}

func TestDeepDedent(t *testing.T) {
	y := mustParse(t, "a:\n  b:\n    c: 1\nd: 2")
	b := ir.Get(ir.Get(y, "a"), "b")
	if got, _ := ir.Get(b, "c").AsI64(); got != 1 {
		t.Errorf("a.b.c = %d", got)
	}
	if ir.Get(ir.Get(y, "a"), "d") != nil || ir.Get(b, "d") != nil {
		t.Error("d nested under a dedented scope")
	}
	if got, _ := ir.Get(y, "d").AsI64(); got != 2 {
		t.Errorf("d = %d", got)
	}
}

func TestEmptyObjectValue(t *testing.T) {
	y := mustParse(t, "a:\nb: 2")
	a := ir.Get(y, "a")
	if a == nil || a.Type != ir.ObjectType || len(a.Fields) != 0 {
		t.Fatalf("a = %v", a)
	}
	if got, _ := ir.Get(y, "b").AsI64(); got != 2 {
		t.Errorf("b = %d", got)
	}
}

func TestRootColonHeuristic(t *testing.T) {
	// a colon anywhere on the first line makes the document an object
	y := mustParse(t, "hello: world: again")
	inner := ir.Get(y, "hello")
	if inner == nil || inner.Type != ir.ObjectType {
		t.Fatalf("hello = %v", inner)
	}
	if got, _ := ir.Get(inner, "world").AsString(); got != "again" {
		t.Errorf("world = %q", got)
	}
	// without a colon it stays a scalar
	s := mustParse(t, "hello world")
	if got, _ := s.AsString(); got != "hello world" {
		t.Errorf("scalar = %q", got)
	}
}

func TestErrorPositions(t *testing.T) {
	_, err := Parse([]byte("a: 1\nb 2"))
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("got %T, want *SyntaxError", err)
	}
	if line, _ := se.Pos.LineCol(); line != 2 {
		t.Errorf("error line = %d, want 2", line)
	}
	_, err = Parse([]byte("a: 1\n   b: 2"))
	var ie *IndentationError
	if !errors.As(err, &ie) {
		t.Fatalf("got %T, want *IndentationError", err)
	}
	if ie.Expected != 0 || ie.Found != 3 {
		t.Errorf("indentation expected=%d found=%d", ie.Expected, ie.Found)
	}
}

package ir

import (
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestToAny(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		{Key: "id", Val: FromInt(7)},
		{Key: "name", Val: FromString("ada")},
		{Key: "score", Val: FromFloat(0.5)},
		{Key: "ok", Val: FromBool(true)},
		{Key: "none", Val: Null()},
		{Key: "tags", Val: FromSlice([]*Node{FromString("a"), FromString("b")})},
	})
	want := map[string]any{
		"id":    int64(7),
		"name":  "ada",
		"score": 0.5,
		"ok":    true,
		"none":  nil,
		"tags":  []any{"a", "b"},
	}
	if d := cmp.Diff(want, ToAny(doc)); d != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", d)
	}
}

func TestToAnyTable(t *testing.T) {
	tab := FromTable([]string{"id"}, [][]*Node{{FromInt(1)}, {FromInt(2)}})
	want := []any{
		map[string]any{"id": int64(1)},
		map[string]any{"id": int64(2)},
	}
	if d := cmp.Diff(want, ToAny(tab)); d != "" {
		t.Errorf("table ToAny mismatch (-want +got):\n%s", d)
	}
	// ToAny must not normalize the table in place
	if tab.Type != TableType {
		t.Error("ToAny mutated the table")
	}
}

func TestFromAnyRoundTrip(t *testing.T) {
	when := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	big1 := new(big.Int)
	big1.SetString("123456789012345678901234567890", 10)
	in := map[string]any{
		"i":    42,
		"f":    1.25,
		"s":    "hi",
		"b":    false,
		"nul":  nil,
		"when": when,
		"big":  big1,
		"arr":  []any{int64(1), "two"},
	}
	y, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := Get(y, "when").AsTime(); !got.Equal(when) {
		t.Errorf("when = %v", got)
	}
	if got, _ := Get(y, "big").AsBigInt(); got.Cmp(big1) != 0 {
		t.Errorf("big = %v", got)
	}
	if got, _ := Get(y, "i").AsI64(); got != 42 {
		t.Errorf("i = %d", got)
	}
}

func TestFromAnyStruct(t *testing.T) {
	type user struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	y, err := FromAny(user{ID: 3, Name: "ada"})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := Get(y, "name").AsString(); got != "ada" {
		t.Errorf("name = %q", got)
	}
	if got, _ := Get(y, "id").AsI64(); got != 3 {
		t.Errorf("id = %d", got)
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	if _, err := FromAny(make(chan int)); err == nil {
		t.Error("expected error for chan")
	}
}

func TestFromNumber(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"42", NumberType},
		{"1.5", NumberType},
		{"1e14", NumberType},
		{"123456789012345678901234567890", BigIntType},
	}
	for _, tt := range tests {
		y, err := fromNumber(json.Number(tt.in))
		if err != nil {
			t.Errorf("fromNumber(%s): %v", tt.in, err)
			continue
		}
		if y.Type != tt.want {
			t.Errorf("fromNumber(%s).Type = %v, want %v", tt.in, y.Type, tt.want)
		}
	}
}

func TestJSONBridge(t *testing.T) {
	y, err := FromJSON([]byte(`{"b": 2, "a": [1, 2.5, null], "big": 123456789012345678901234567890}`))
	if err != nil {
		t.Fatal(err)
	}
	// objects from JSON come back with sorted keys
	if y.Fields[0].String != "a" || y.Fields[1].String != "b" {
		t.Fatalf("unsorted fields: %v %v", y.Fields[0].String, y.Fields[1].String)
	}
	if Get(y, "big").Type != BigIntType {
		t.Error("big integer did not survive the JSON bridge")
	}
	d, err := ToJSON(y)
	if err != nil {
		t.Fatal(err)
	}
	y2, err := FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if Compare(y, y2) != 0 {
		t.Errorf("JSON round trip changed the tree:\n%s\n%s", d, "")
	}
}

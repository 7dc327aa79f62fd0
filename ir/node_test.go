package ir

import (
	"math"
	"math/big"
	"testing"
	"time"
)

func kv(k string, v *Node) KeyVal { return KeyVal{Key: k, Val: v} }

func TestSetGetDelete(t *testing.T) {
	o := &Node{Type: ObjectType}
	o.Set("a", FromInt(1))
	o.Set("b", FromInt(2))
	o.Set("c", FromInt(3))
	if got := Get(o, "b"); got == nil || *got.Int64 != 2 {
		t.Fatalf("Get(b) = %v", got)
	}
	// replace keeps position
	o.Set("b", FromInt(20))
	if o.Fields[1].String != "b" || *o.Values[1].Int64 != 20 {
		t.Fatalf("Set replace moved b: fields=%v", o.Fields)
	}
	if !o.Delete("b") {
		t.Fatal("Delete(b) = false")
	}
	if Get(o, "b") != nil {
		t.Fatal("b still present after Delete")
	}
	if o.Fields[1].String != "c" || o.Values[1].ParentIndex != 1 {
		t.Fatal("Delete did not reindex")
	}
	if o.Delete("nope") {
		t.Fatal("Delete(nope) = true")
	}
}

func TestCloneDeep(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		kv("nums", FromSlice([]*Node{FromInt(1), FromFloat(2.5)})),
		kv("who", FromString("ada")),
		kv("t", FromTable([]string{"id"}, [][]*Node{{FromInt(7)}})),
	})
	cp := orig.Clone()
	if Compare(orig, cp) != 0 {
		t.Fatal("clone differs from original")
	}
	cp.Set("who", FromString("bob"))
	Get(cp, "t").Rows[0][0] = FromInt(8)
	if got, _ := Get(orig, "who").AsString(); got != "ada" {
		t.Fatal("clone shares object state with original")
	}
	if *Get(orig, "t").Rows[0][0].Int64 != 7 {
		t.Fatal("clone shares table rows with original")
	}
}

func TestFromFloatSpecials(t *testing.T) {
	tests := []struct {
		f    float64
		want Special
	}{
		{math.Inf(1), Inf},
		{math.Inf(-1), NegInf},
		{math.NaN(), NaN},
		{1.5, NoSpecial},
	}
	for _, tt := range tests {
		y := FromFloat(tt.f)
		if y.Special != tt.want {
			t.Errorf("FromFloat(%v).Special = %v, want %v", tt.f, y.Special, tt.want)
		}
	}
	f, err := FromFloat(math.Inf(-1)).AsF64()
	if err != nil || !math.IsInf(f, -1) {
		t.Errorf("AsF64 special = %v, %v", f, err)
	}
	if _, err := FromFloat(math.NaN()).AsI64(); err == nil {
		t.Error("AsI64 on NaN: expected error")
	}
}

func TestAsI64(t *testing.T) {
	if v, err := FromFloat(3.0).AsI64(); err != nil || v != 3 {
		t.Errorf("AsI64(3.0) = %d, %v", v, err)
	}
	if _, err := FromFloat(3.5).AsI64(); err == nil {
		t.Error("AsI64(3.5): expected error")
	}
	if _, err := FromString("3").AsI64(); err == nil {
		t.Error("AsI64 on string: expected error")
	}
}

func TestNormalizeTable(t *testing.T) {
	tab := FromTable([]string{"id", "name"}, [][]*Node{
		{FromInt(1), FromString("ada")},
		{FromInt(2)}, // padded with null
	})
	arr := tab.Normalize()
	if arr.Type != ArrayType || len(arr.Values) != 2 {
		t.Fatalf("Normalize: %v with %d elements", arr.Type, len(arr.Values))
	}
	first := arr.Values[0]
	if got, _ := Get(first, "name").AsString(); got != "ada" {
		t.Errorf("row 0 name = %q", got)
	}
	if !Get(arr.Values[1], "name").IsNull() {
		t.Error("padded cell is not null")
	}
}

func TestNormalizeNested(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		kv("rows", FromTable([]string{"x"}, [][]*Node{{FromInt(1)}})),
	})
	doc.Normalize()
	rows := Get(doc, "rows")
	if rows.Type != ArrayType {
		t.Fatalf("nested table not normalized: %v", rows.Type)
	}
	if rows.Parent != doc {
		t.Error("normalized node lost its parent")
	}
}

func TestVisit(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		kv("a", FromSlice([]*Node{FromInt(1), FromInt(2)})),
		kv("t", FromTable([]string{"x"}, [][]*Node{{FromInt(3)}})),
	})
	n := 0
	err := doc.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			n++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// doc, array, 2 elements, table, 1 cell
	if n != 6 {
		t.Errorf("visited %d nodes, want 6", n)
	}
}

func TestFromTimeUTC(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	y := FromTime(time.Date(2021, 3, 4, 6, 6, 7, 0, loc))
	if y.Time.Hour() != 5 {
		t.Errorf("FromTime did not normalize to UTC: %v", y.Time)
	}
}

func TestFromBigIntCopies(t *testing.T) {
	b := big.NewInt(42)
	y := FromBigInt(b)
	b.SetInt64(43)
	if y.Big.Int64() != 42 {
		t.Error("FromBigInt shares the caller's value")
	}
}

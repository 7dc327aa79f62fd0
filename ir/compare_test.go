package ir

import (
	"math/big"
	"testing"
	"time"
)

func TestCompare(t *testing.T) {
	t1 := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// type ranking: Null < Bool < Number < Time < BigInt < String < Array < Table < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < Time", FromInt(1), FromTime(t1), -1},
		{"Time < BigInt", FromTime(t1), FromBigInt(big.NewInt(1)), -1},
		{"BigInt < String", FromBigInt(big.NewInt(1)), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Table", FromSlice(nil), FromTable(nil, nil), -1},
		{"Table < Object", FromTable(nil, nil), FromKeyVals(nil), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// number sub-rank: Int64 < Float64 < Special
		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Float < Inf", FromFloat(1e300), FromFloat(inf()), -1},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},

		{"Time < Time", FromTime(t1), FromTime(t2), -1},
		{"BigInt < BigInt", FromBigInt(big.NewInt(1)), FromBigInt(big.NewInt(2)), -1},
		{"String < String", FromString("a"), FromString("b"), -1},

		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		{"Empty Object == Empty Object", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Object Key Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
			-1},
		{"Object Value Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
			-1},
		{"Short Object < Long Object",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			-1},

		{"Table Header Comparison",
			FromTable([]string{"a"}, nil),
			FromTable([]string{"b"}, nil),
			-1},
		{"Table Row Comparison",
			FromTable([]string{"a"}, [][]*Node{{FromInt(1)}}),
			FromTable([]string{"a"}, [][]*Node{{FromInt(2)}}),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func inf() float64 {
	f := 1e308
	return f * 10
}

func TestCompareTableVsNormalized(t *testing.T) {
	tab := FromTable([]string{"x"}, [][]*Node{{FromInt(1)}})
	arr := tab.Clone().Normalize()
	// a table and its normalized form differ by type rank
	if Compare(tab, arr) == 0 {
		t.Error("table compares equal to its normalized form")
	}
	if Compare(arr, tab.Clone().Normalize()) != 0 {
		t.Error("normalized forms differ")
	}
}

package ir

import (
	"cmp"
	"strings"
)

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case TimeType:
		return a.Time.Compare(*b.Time)
	case BigIntType:
		return a.Big.Cmp(b.Big)
	case ArrayType:
		return compareArrays(a, b)
	case TableType:
		return compareTables(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < Time < BigInt < String < Array < Table < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case TimeType:
		return 3
	case BigIntType:
		return 4
	case StringType:
		return 5
	case ArrayType:
		return 6
	case TableType:
		return 7
	case ObjectType:
		return 8
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	// Sub-rank: Int64 < Float64 < Special
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}
	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return cmp.Compare(a.Special, b.Special)
}

func numberSubRank(n *Node) int {
	if n.Int64 != nil {
		return 0
	}
	if n.Float64 != nil {
		return 1
	}
	return 2
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareTables(a, b *Node) int {
	lenA := len(a.Headers)
	lenB := len(b.Headers)
	for i := 0; i < min(lenA, lenB); i++ {
		if c := strings.Compare(a.Headers[i], b.Headers[i]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(lenA, lenB); c != 0 {
		return c
	}
	rowsA := len(a.Rows)
	rowsB := len(b.Rows)
	for i := 0; i < min(rowsA, rowsB); i++ {
		for j := range a.Headers {
			if c := Compare(a.Rows[i][j], b.Rows[i][j]); c != 0 {
				return c
			}
		}
	}
	return cmp.Compare(rowsA, rowsB)
}

func compareObjects(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

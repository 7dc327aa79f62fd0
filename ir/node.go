package ir

import (
	"maps"
	"math"
	"math/big"
	"slices"
	"time"
)

// Special distinguishes the non-finite float payloads a Number node
// can carry. They exist so host values round-trip into the tree; the
// writer renders them as null.
type Special int

const (
	NoSpecial Special = iota
	Inf
	NegInf
	NaN
)

// Node is the dynamic value tree both engines operate on. Objects use
// the parallel Fields/Values slices, which preserve insertion order.
// Tables carry Headers and Rows and appear only transiently while
// parsing tabular arrays.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	Headers []string
	Rows    [][]*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
	Special Special
	Time    *time.Time
	Big     *big.Int
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	if len(y.Headers) != 0 {
		dst.Headers = slices.Clone(y.Headers)
	}
	if len(y.Rows) != 0 {
		dst.Rows = make([][]*Node, len(y.Rows))
		for i, row := range y.Rows {
			dst.Rows[i] = make([]*Node, len(row))
			for j, cell := range row {
				cellDst := &Node{}
				cell.CloneTo(cellDst)
				dst.Rows[i][j] = cellDst
			}
		}
	}
	dst.String = y.String
	dst.Bool = y.Bool
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Special = y.Special
	if y.Time != nil {
		t := *y.Time
		dst.Time = &t
	}
	if y.Big != nil {
		dst.Big = new(big.Int).Set(y.Big)
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

// FromFloat builds a Number node, mapping non-finite values to their
// Special tags.
func FromFloat(f float64) *Node {
	res := &Node{Type: NumberType}
	switch {
	case math.IsInf(f, 1):
		res.Special = Inf
	case math.IsInf(f, -1):
		res.Special = NegInf
	case math.IsNaN(f):
		res.Special = NaN
	default:
		res.Float64 = &f
	}
	return res
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromTime(t time.Time) *Node {
	u := t.UTC()
	return &Node{
		Type: TimeType,
		Time: &u,
	}
}

func FromBigInt(v *big.Int) *Node {
	return &Node{
		Type: BigIntType,
		Big:  new(big.Int).Set(v),
	}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	res := &Node{}
	res.Type = ObjectType
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		y := yMap[key]
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = key
		yField := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Fields[i] = yField
		res.Values[i] = y
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	return FromKeyValsAt(&Node{}, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Fields[i] = &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: kv.Key,
			Type:        StringType,
			String:      kv.Key,
		}
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set replaces the value under field, keeping its position, or appends
// a new field when absent.
func (y *Node) Set(field string, v *Node) {
	for i := range y.Fields {
		if y.Fields[i].String != field {
			continue
		}
		v.Parent = y
		v.ParentIndex = i
		v.ParentField = field
		y.Values[i] = v
		return
	}
	i := len(y.Fields)
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = field
	y.Fields = append(y.Fields, &Node{
		Parent:      y,
		ParentIndex: i,
		ParentField: field,
		Type:        StringType,
		String:      field,
	})
	y.Values = append(y.Values, v)
}

func (y *Node) Delete(field string) bool {
	for i := range y.Fields {
		if y.Fields[i].String != field {
			continue
		}
		y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
		y.Values = append(y.Values[:i], y.Values[i+1:]...)
		for j := i; j < len(y.Fields); j++ {
			y.Fields[j].ParentIndex = j
			y.Values[j].ParentIndex = j
		}
		return true
	}
	return false
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
		for _, row := range y.Rows {
			for _, cell := range row {
				if err := cell.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

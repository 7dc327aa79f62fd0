package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// ToAny converts the tree into plain Go values: objects become
// map[string]any, arrays []any, numbers int64/float64. Tables are
// normalized first.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case TableType:
		return ToAny(node.Clone().Normalize())
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		f, _ := node.AsF64()
		return f
	case BoolType:
		return node.Bool
	case TimeType:
		return *node.Time
	case BigIntType:
		return new(big.Int).Set(node.Big)
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts plain Go values into a tree. Values outside the
// directly handled kinds round-trip through encoding/json, so any
// json-marshalable value is accepted.
func FromAny(v any) (*Node, error) {
	switch vv := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return vv.Clone(), nil
	case bool:
		return FromBool(vv), nil
	case string:
		return FromString(vv), nil
	case int:
		return FromInt(int64(vv)), nil
	case int64:
		return FromInt(vv), nil
	case float64:
		return FromFloat(vv), nil
	case json.Number:
		return fromNumber(vv)
	case time.Time:
		return FromTime(vv), nil
	case *big.Int:
		return FromBigInt(vv), nil
	case []*Node:
		return FromSlice(vv), nil
	case map[string]*Node:
		return FromMap(vv), nil
	case []any:
		elts := make([]*Node, len(vv))
		for i, elt := range vv {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			elts[i] = y
		}
		return FromSlice(elts), nil
	case map[string]any:
		yMap := make(map[string]*Node, len(vv))
		for k, elt := range vv {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			yMap[k] = y
		}
		return FromMap(yMap), nil
	default:
		d, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %T: %w", ErrUnsupportedType, v, err)
		}
		return FromJSON(d)
	}
}

func fromNumber(v json.Number) (*Node, error) {
	if i, err := v.Int64(); err == nil {
		return FromInt(i), nil
	}
	if !strings.ContainsAny(v.String(), ".eE") {
		bi, ok := new(big.Int).SetString(v.String(), 10)
		if ok {
			return FromBigInt(bi), nil
		}
	}
	f, err := v.Float64()
	if err != nil {
		return nil, fmt.Errorf("bad number %q: %w", v.String(), err)
	}
	return FromFloat(f), nil
}

func ToJSON(node *Node) ([]byte, error) {
	return json.Marshal(ToAny(node))
}

func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return FromAny(v)
}

package ir

import (
	"fmt"
	"math"
	"math/big"
	"time"
)

func (y *Node) IsNull() bool   { return y.Type == NullType }
func (y *Node) IsBool() bool   { return y.Type == BoolType }
func (y *Node) IsNumber() bool { return y.Type == NumberType }
func (y *Node) IsString() bool { return y.Type == StringType }
func (y *Node) IsArray() bool  { return y.Type == ArrayType }
func (y *Node) IsObject() bool { return y.Type == ObjectType }
func (y *Node) IsTable() bool  { return y.Type == TableType }
func (y *Node) IsTime() bool   { return y.Type == TimeType }
func (y *Node) IsBigInt() bool { return y.Type == BigIntType }

func (y *Node) AsBool() (bool, error) {
	if y.Type != BoolType {
		return false, fmt.Errorf("%w: expected Bool, found %s", ErrTypeMismatch, y.Type)
	}
	return y.Bool, nil
}

func (y *Node) AsString() (string, error) {
	if y.Type != StringType {
		return "", fmt.Errorf("%w: expected String, found %s", ErrTypeMismatch, y.Type)
	}
	return y.String, nil
}

// AsI64 narrows a Number to int64. Whole-number floats are accepted,
// fractional floats and specials are not.
func (y *Node) AsI64() (int64, error) {
	if y.Type != NumberType {
		return 0, fmt.Errorf("%w: expected Number, found %s", ErrTypeMismatch, y.Type)
	}
	if y.Int64 != nil {
		return *y.Int64, nil
	}
	if y.Float64 != nil {
		f := *y.Float64
		if f == math.Trunc(f) && f >= math.MinInt64 && f <= math.MaxInt64 {
			return int64(f), nil
		}
		return 0, fmt.Errorf("%w: float %v is not a whole number", ErrTypeMismatch, f)
	}
	return 0, fmt.Errorf("%w: special float has no integer value", ErrTypeMismatch)
}

// AsF64 widens any Number, mapping specials to their IEEE values.
func (y *Node) AsF64() (float64, error) {
	if y.Type != NumberType {
		return 0, fmt.Errorf("%w: expected Number, found %s", ErrTypeMismatch, y.Type)
	}
	switch y.Special {
	case Inf:
		return math.Inf(1), nil
	case NegInf:
		return math.Inf(-1), nil
	case NaN:
		return math.NaN(), nil
	}
	if y.Int64 != nil {
		return float64(*y.Int64), nil
	}
	return *y.Float64, nil
}

func (y *Node) AsTime() (time.Time, error) {
	if y.Type != TimeType {
		return time.Time{}, fmt.Errorf("%w: expected Time, found %s", ErrTypeMismatch, y.Type)
	}
	return *y.Time, nil
}

func (y *Node) AsBigInt() (*big.Int, error) {
	if y.Type != BigIntType {
		return nil, fmt.Errorf("%w: expected BigInt, found %s", ErrTypeMismatch, y.Type)
	}
	return new(big.Int).Set(y.Big), nil
}

package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	TimeType
	BigIntType
	ObjectType
	ArrayType
	TableType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		NumberType: "Number",
		StringType: "String",
		BoolType:   "Bool",
		TimeType:   "Time",
		BigIntType: "BigInt",
		ObjectType: "Object",
		ArrayType:  "Array",
		TableType:  "Table",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Number": NumberType,
		"String": StringType,
		"Bool":   BoolType,
		"Time":   TimeType,
		"BigInt": BigIntType,
		"Object": ObjectType,
		"Array":  ArrayType,
		"Table":  TableType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		NumberType,
		StringType,
		BoolType,
		TimeType,
		BigIntType,
		ObjectType,
		ArrayType,
		TableType,
	}
}

// IsLeaf reports whether the type is a primitive scalar.
func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType, TableType:
		return false
	default:
		return true
	}
}

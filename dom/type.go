package dom

import "fmt"

// Type identifies the kind of value a node holds. The declaration order is
// the comparison order: values of different types compare by type alone.
type Type int

const (
	NullType Type = iota
	IntType
	UintType
	RealType
	StringType
	BoolType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		IntType:    "Int",
		UintType:   "Uint",
		RealType:   "Real",
		StringType: "String",
		BoolType:   "Bool",
		ArrayType:  "Array",
		ObjectType: "Object",
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
		"Int":    IntType,
		"Uint":   UintType,
		"Real":   RealType,
		"String": StringType,
		"Bool":   BoolType,
		"Array":  ArrayType,
		"Object": ObjectType,
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
		IntType,
		UintType,
		RealType,
		StringType,
		BoolType,
		ArrayType,
		ObjectType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	default:
		return true
	}
}

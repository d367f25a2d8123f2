package dom

import (
	"math"
	"testing"
)

func TestAsInt(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want int32
	}{
		{"Null yields default", Null(), 7},
		{"nil yields default", nil, 7},
		{"Int", FromInt(-42), -42},
		{"Uint", FromUint(42), 42},
		{"Real truncates toward zero", FromFloat(-2.7), -2},
		{"Real positive truncates", FromFloat(2.7), 2},
		{"bool true", FromBool(true), 1},
		{"bool false", FromBool(false), 0},
		{"Int32 bounds", FromInt(math.MinInt32), math.MinInt32},
		// violations degrade to the default unchecked
		{"Int overflow", FromInt(math.MaxInt32 + 1), 7},
		{"Uint overflow", FromUint(math.MaxInt32 + 1), 7},
		{"Real overflow", FromFloat(3e9), 7},
		{"NaN", FromFloat(math.NaN()), 7},
		{"String mismatch", FromString("12"), 7},
		{"Array mismatch", New(ArrayType), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.AsInt(7); got != tt.want {
				t.Errorf("AsInt(7) = %v, want %v", got, tt.want)
			}
		})
	}

	wantPanic(t, ErrRangeOverflow, func() { FromFloat(3e9).AsInt(7) })
	wantPanic(t, ErrTypeMismatch, func() { FromString("12").AsInt(7) })
}

func TestAsUint(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want uint32
	}{
		{"Null yields default", Null(), 9},
		{"Int", FromInt(3), 3},
		{"Uint", FromUint(math.MaxUint32), math.MaxUint32},
		{"Real truncates", FromFloat(3.9), 3},
		{"bool", FromBool(true), 1},
		{"negative Int overflows", FromInt(-1), 9},
		{"negative Real overflows", FromFloat(-0.5), 9},
		{"Uint overflow", FromUint(math.MaxUint32 + 1), 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.AsUint(9); got != tt.want {
				t.Errorf("AsUint(9) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAsInt64(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want int64
	}{
		{"Int passes through", FromInt(math.MinInt64), math.MinInt64},
		{"Uint in range", FromUint(math.MaxInt64), math.MaxInt64},
		{"Real in range", FromFloat(9e18), int64(9e18)},
		{"Uint overflow", FromUint(math.MaxInt64 + 1), 5},
		// 2^63 is the nearest float64 to MaxInt64 but sits outside the range
		{"Real at 2^63 overflows", FromFloat(float64(math.MaxInt64)), 5},
		{"bool", FromBool(true), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.AsInt64(5); got != tt.want {
				t.Errorf("AsInt64(5) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAsUint64(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want uint64
	}{
		{"Uint passes through", FromUint(math.MaxUint64), math.MaxUint64},
		{"Int nonnegative", FromInt(12), 12},
		{"Int negative overflows", FromInt(-1), 5},
		{"Real in range", FromFloat(1.8e19), uint64(1.8e19)},
		{"Real overflow", FromFloat(2e19), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.AsUint64(5); got != tt.want {
				t.Errorf("AsUint64(5) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAsFloat(t *testing.T) {
	if got := FromInt(-3).AsFloat64(0); got != -3 {
		t.Errorf("AsFloat64() = %v, want -3", got)
	}
	if got := FromUint(8).AsFloat64(0); got != 8 {
		t.Errorf("AsFloat64() = %v, want 8", got)
	}
	if got := FromBool(true).AsFloat64(0); got != 1 {
		t.Errorf("AsFloat64() = %v, want 1", got)
	}
	if got := Null().AsFloat64(1.5); got != 1.5 {
		t.Errorf("AsFloat64() = %v, want the default", got)
	}
	if got := FromString("x").AsFloat64(1.5); got != 1.5 {
		t.Errorf("AsFloat64() = %v on a String value, want the default", got)
	}
	if got := FromFloat(2.5).AsFloat32(0); got != 2.5 {
		t.Errorf("AsFloat32() = %v, want 2.5", got)
	}
}

func TestAsBool(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		def  bool
		want bool
	}{
		{"Null yields default", Null(), true, true},
		{"zero Int", FromInt(0), true, false},
		{"nonzero Int", FromInt(-1), false, true},
		{"zero Real", FromFloat(0), true, false},
		{"empty String", FromString(""), true, false},
		{"nonempty String", FromString("x"), false, true},
		{"empty Array", New(ArrayType), true, false},
		{"sparse Array counts stored entries", sparseArray(5, FromInt(0)), false, true},
		{"empty Object", New(ObjectType), true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.AsBool(tt.def); got != tt.want {
				t.Errorf("AsBool(%v) = %v, want %v", tt.def, got, tt.want)
			}
		})
	}
}

func TestAsString(t *testing.T) {
	if got := FromString("hi").AsString("d"); got != "hi" {
		t.Errorf("AsString() = %q, want \"hi\"", got)
	}
	if got := Null().AsString("d"); got != "d" {
		t.Errorf("AsString() = %q, want the default", got)
	}
	if got := FromBool(true).AsString("d"); got != "true" {
		t.Errorf("AsString() = %q, want \"true\"", got)
	}
	if got := FromBool(false).AsString("d"); got != "false" {
		t.Errorf("AsString() = %q, want \"false\"", got)
	}
	// numbers do not format themselves
	if got := FromInt(3).AsString("d"); got != "d" {
		t.Errorf("AsString() = %q on an Int value, want the default", got)
	}
	wantPanic(t, ErrTypeMismatch, func() { FromInt(3).AsString("d") })

	if got := FromString("raw").RawString(); got != "raw" {
		t.Errorf("RawString() = %q, want \"raw\"", got)
	}
	if got := FromInt(3).RawString(); got != "" {
		t.Errorf("RawString() = %q on an Int value, want \"\"", got)
	}
	wantPanic(t, ErrTypeMismatch, func() { FromInt(3).RawString() })
}

func TestPredicates(t *testing.T) {
	n := Null()
	if !n.IsNull() || !n.IsArray() || !n.IsObject() {
		t.Errorf("Null predicates: IsNull=%v IsArray=%v IsObject=%v",
			n.IsNull(), n.IsArray(), n.IsObject())
	}
	if !FromInt(1).IsInt() || !FromInt(1).IsIntegral() || !FromInt(1).IsNumeric() {
		t.Errorf("Int predicates broken")
	}
	if !FromUint(1).IsUint() || !FromUint(1).IsIntegral() {
		t.Errorf("Uint predicates broken")
	}
	if !FromBool(true).IsIntegral() || FromBool(true).IsDouble() {
		t.Errorf("Bool predicates broken")
	}
	if !FromFloat(1).IsDouble() || !FromFloat(1).IsNumeric() || FromFloat(1).IsIntegral() {
		t.Errorf("Real predicates broken")
	}
	if FromString("1").IsNumeric() || !FromString("1").IsString() {
		t.Errorf("String predicates broken")
	}
	if New(ArrayType).IsObject() || New(ObjectType).IsArray() {
		t.Errorf("container predicates overlap")
	}
}

func TestIsConvertibleTo(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		to   Type
		want bool
	}{
		{"Null to Object", Null(), ObjectType, true},
		{"Null to Int", Null(), IntType, true},
		{"zero Int to Null", FromInt(0), NullType, true},
		{"nonzero Int to Null", FromInt(1), NullType, false},
		{"Int to Uint nonnegative", FromInt(5), UintType, true},
		{"Int to Uint negative", FromInt(-5), UintType, false},
		{"Uint to Int small", FromUint(12), IntType, true},
		{"Uint to Int large", FromUint(math.MaxInt32 + 1), IntType, false},
		{"Real to Int in range", FromFloat(1.5), IntType, true},
		{"Real to Int out of range", FromFloat(3e9), IntType, false},
		{"Real to Uint negative", FromFloat(-1), UintType, false},
		{"Int to String (legacy matrix)", FromInt(3), StringType, true},
		{"Int to Bool", FromInt(3), BoolType, true},
		{"String to Bool", FromString("x"), BoolType, false},
		{"String to Int", FromString("3"), IntType, false},
		{"empty String to Null", FromString(""), NullType, true},
		{"empty Array to Null", New(ArrayType), NullType, true},
		{"Array to Array", New(ArrayType), ArrayType, true},
		{"Array to Bool", New(ArrayType), BoolType, false},
		{"Array to Object", New(ArrayType), ObjectType, false},
		{"Object to Object", New(ObjectType), ObjectType, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsConvertibleTo(tt.to); got != tt.want {
				t.Errorf("IsConvertibleTo(%v) = %v, want %v", tt.to, got, tt.want)
			}
		})
	}
}

package dom

import "math"

// Range bounds for Real to 64-bit integral conversion. The exact
// values of MinInt64, MaxInt64 and MaxUint64 are not representable in
// float64, so the checks use the nearest float64 inside the range.
var (
	minInt64AsReal  = math.Nextafter(float64(math.MinInt64), 0)
	maxInt64AsReal  = math.Nextafter(float64(math.MaxInt64), 0)
	maxUint64AsReal = math.Nextafter(float64(math.MaxUint64), 0)
)

// AsInt converts to a signed 32-bit integer: Null yields def, Bool 0
// or 1, numerics their value when in range. Out of range is a range
// overflow, strings and containers a type mismatch; both yield def
// unchecked.
func (v *Value) AsInt(def int32) int32 {
	switch v.Type() {
	case NullType:
		return def
	case IntType:
		if v.i < math.MinInt32 || v.i > math.MaxInt32 {
			violate(ErrRangeOverflow, "Int %d out of int32 range", v.i)
			return def
		}
		return int32(v.i)
	case UintType:
		if v.u > math.MaxInt32 {
			violate(ErrRangeOverflow, "Uint %d out of int32 range", v.u)
			return def
		}
		return int32(v.u)
	case RealType:
		// NaN fails the range check and lands on the violation
		if !(v.f >= math.MinInt32 && v.f <= math.MaxInt32) {
			violate(ErrRangeOverflow, "Real %v out of int32 range", v.f)
			return def
		}
		return int32(v.f)
	case BoolType:
		if v.b {
			return 1
		}
		return 0
	default:
		violate(ErrTypeMismatch, "%s value is not integer convertible", v.t)
		return def
	}
}

// AsUint converts to an unsigned 32-bit integer, with the same rules
// as AsInt.
func (v *Value) AsUint(def uint32) uint32 {
	switch v.Type() {
	case NullType:
		return def
	case IntType:
		if v.i < 0 || v.i > math.MaxUint32 {
			violate(ErrRangeOverflow, "Int %d out of uint32 range", v.i)
			return def
		}
		return uint32(v.i)
	case UintType:
		if v.u > math.MaxUint32 {
			violate(ErrRangeOverflow, "Uint %d out of uint32 range", v.u)
			return def
		}
		return uint32(v.u)
	case RealType:
		if !(v.f >= 0 && v.f <= math.MaxUint32) {
			violate(ErrRangeOverflow, "Real %v out of uint32 range", v.f)
			return def
		}
		return uint32(v.f)
	case BoolType:
		if v.b {
			return 1
		}
		return 0
	default:
		violate(ErrTypeMismatch, "%s value is not integer convertible", v.t)
		return def
	}
}

// AsInt64 converts to a signed 64-bit integer, with the same rules as
// AsInt. Real payloads truncate toward zero.
func (v *Value) AsInt64(def int64) int64 {
	switch v.Type() {
	case NullType:
		return def
	case IntType:
		return v.i
	case UintType:
		if v.u > math.MaxInt64 {
			violate(ErrRangeOverflow, "Uint %d out of int64 range", v.u)
			return def
		}
		return int64(v.u)
	case RealType:
		if !(v.f >= minInt64AsReal && v.f <= maxInt64AsReal) {
			violate(ErrRangeOverflow, "Real %v out of int64 range", v.f)
			return def
		}
		return int64(v.f)
	case BoolType:
		if v.b {
			return 1
		}
		return 0
	default:
		violate(ErrTypeMismatch, "%s value is not integer convertible", v.t)
		return def
	}
}

// AsUint64 converts to an unsigned 64-bit integer, with the same rules
// as AsInt.
func (v *Value) AsUint64(def uint64) uint64 {
	switch v.Type() {
	case NullType:
		return def
	case IntType:
		if v.i < 0 {
			violate(ErrRangeOverflow, "Int %d out of uint64 range", v.i)
			return def
		}
		return uint64(v.i)
	case UintType:
		return v.u
	case RealType:
		if !(v.f >= 0 && v.f <= maxUint64AsReal) {
			violate(ErrRangeOverflow, "Real %v out of uint64 range", v.f)
			return def
		}
		return uint64(v.f)
	case BoolType:
		if v.b {
			return 1
		}
		return 0
	default:
		violate(ErrTypeMismatch, "%s value is not integer convertible", v.t)
		return def
	}
}

// AsFloat64 converts to a float64: Null yields def, Bool 0 or 1,
// numerics their value (Int and Uint may round). Strings and
// containers are a type mismatch.
func (v *Value) AsFloat64(def float64) float64 {
	switch v.Type() {
	case NullType:
		return def
	case IntType:
		return float64(v.i)
	case UintType:
		return float64(v.u)
	case RealType:
		return v.f
	case BoolType:
		if v.b {
			return 1
		}
		return 0
	default:
		violate(ErrTypeMismatch, "%s value is not real convertible", v.t)
		return def
	}
}

// AsFloat32 converts to a float32, with the same rules as AsFloat64.
func (v *Value) AsFloat32(def float32) float32 {
	switch v.Type() {
	case NullType:
		return def
	case IntType:
		return float32(v.i)
	case UintType:
		return float32(v.u)
	case RealType:
		return float32(v.f)
	case BoolType:
		if v.b {
			return 1
		}
		return 0
	default:
		violate(ErrTypeMismatch, "%s value is not real convertible", v.t)
		return def
	}
}

// AsBool converts to a bool: Null yields def, numerics != 0, String
// non-empty, containers non-empty by stored entries.
func (v *Value) AsBool(def bool) bool {
	switch v.Type() {
	case NullType:
		return def
	case IntType:
		return v.i != 0
	case UintType:
		return v.u != 0
	case RealType:
		return v.f != 0
	case BoolType:
		return v.b
	case StringType:
		return len(v.s) != 0
	default:
		return v.m.len() != 0
	}
}

// AsString converts to a string: Null yields def, Bool "true" or
// "false", String its payload. Numerics and containers are a type
// mismatch; writers format numbers, the model does not.
func (v *Value) AsString(def string) string {
	switch v.Type() {
	case NullType:
		return def
	case StringType:
		return v.s
	case BoolType:
		if v.b {
			return "true"
		}
		return "false"
	default:
		violate(ErrTypeMismatch, "%s value is not string convertible", v.t)
		return def
	}
}

// RawString returns the String payload without conversion; anything
// else is a type mismatch yielding "".
func (v *Value) RawString() string {
	if v.Type() != StringType {
		violate(ErrTypeMismatch, "RawString of %s value", v.Type())
		return ""
	}
	return v.s
}

func (v *Value) IsNull() bool { return v.Type() == NullType }

func (v *Value) IsBool() bool { return v.Type() == BoolType }

func (v *Value) IsInt() bool { return v.Type() == IntType }

func (v *Value) IsUint() bool { return v.Type() == UintType }

// IsIntegral reports an integer-valued type: Int, Uint or Bool.
func (v *Value) IsIntegral() bool {
	switch v.Type() {
	case IntType, UintType, BoolType:
		return true
	default:
		return false
	}
}

func (v *Value) IsDouble() bool { return v.Type() == RealType }

func (v *Value) IsNumeric() bool { return v.IsIntegral() || v.IsDouble() }

func (v *Value) IsString() bool { return v.Type() == StringType }

// IsArray reports an array or a null value; null promotes to an array
// on first indexed write.
func (v *Value) IsArray() bool {
	t := v.Type()
	return t == NullType || t == ArrayType
}

// IsObject reports an object or a null value; null promotes to an
// object on first member write.
func (v *Value) IsObject() bool {
	t := v.Type()
	return t == NullType || t == ObjectType
}

// IsConvertibleTo reports whether converting to t would succeed. The
// matrix answers for the legacy conversion surface: numerics report
// String-convertible even though AsString refuses them.
func (v *Value) IsConvertibleTo(t Type) bool {
	switch t {
	case NullType:
		switch v.Type() {
		case NullType:
			return true
		case IntType:
			return v.i == 0
		case UintType:
			return v.u == 0
		case RealType:
			return v.f == 0
		case BoolType:
			return !v.b
		case StringType:
			return len(v.s) == 0
		default:
			return v.m.len() == 0
		}
	case IntType:
		switch v.Type() {
		case NullType, IntType, BoolType:
			return true
		case UintType:
			return v.u <= math.MaxInt32
		case RealType:
			return v.f >= math.MinInt32 && v.f <= math.MaxInt32
		default:
			return false
		}
	case UintType:
		switch v.Type() {
		case NullType, UintType, BoolType:
			return true
		case IntType:
			return v.i >= 0
		case RealType:
			return v.f >= 0 && v.f <= math.MaxUint32
		default:
			return false
		}
	case RealType, BoolType:
		switch v.Type() {
		case NullType, IntType, UintType, RealType, BoolType:
			return true
		default:
			return false
		}
	case StringType:
		switch v.Type() {
		case NullType, IntType, UintType, RealType, BoolType, StringType:
			return true
		default:
			return false
		}
	case ArrayType:
		return v.IsArray()
	case ObjectType:
		return v.IsObject()
	default:
		return false
	}
}

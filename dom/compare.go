package dom

import (
	"cmp"
	"strings"
)

// Compare provides a total order over values. Values of different
// types order by type alone, in Type declaration order, so the
// heterogeneous case never inspects payloads. Within one type:
// numerics by value, strings byte-wise, false before true, containers
// by entry count and then entrywise over the key-sorted entries (key
// before value, recursively). Nil values read as null.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	ta, tb := a.Type(), b.Type()
	if ta != tb {
		return cmp.Compare(ta, tb)
	}
	switch ta {
	case NullType:
		return 0
	case IntType:
		return cmp.Compare(a.i, b.i)
	case UintType:
		return cmp.Compare(a.u, b.u)
	case RealType:
		// cmp.Compare sorts NaN before every other float
		return cmp.Compare(a.f, b.f)
	case StringType:
		return strings.Compare(a.s, b.s)
	case BoolType:
		return compareBools(a.b, b.b)
	default:
		return compareStores(a.m, b.m)
	}
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareStores(a, b *store) int {
	if d := cmp.Compare(a.len(), b.len()); d != 0 {
		return d
	}
	for i := range a.entries {
		ea, eb := a.entries[i], b.entries[i]
		if d := ea.key.Compare(eb.key); d != 0 {
			return d
		}
		if d := Compare(ea.val, eb.val); d != 0 {
			return d
		}
	}
	return 0
}

// Compare orders v against o; see the package function.
func (v *Value) Compare(o *Value) int {
	return Compare(v, o)
}

// Less reports Compare(v, o) < 0.
func (v *Value) Less(o *Value) bool {
	return Compare(v, o) < 0
}

// Equal reports Compare(v, o) == 0.
func (v *Value) Equal(o *Value) bool {
	return Compare(v, o) == 0
}

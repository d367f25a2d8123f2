package dom

import (
	"slices"
	"strings"
)

// Value is one node of a document tree: a tagged union over the eight
// types of Type. The zero Value is null, and a nil *Value reads as
// null everywhere a read is concerned.
//
// Payload fields are populated according to the type reported by the
// Type method; container entries live in a shared sorted store so
// arrays and objects differ only in the kind of key they hold.
type Value struct {
	t  Type
	b  bool
	i  int64
	u  uint64
	f  float64
	s  string
	sp Policy
	m  *store
}

// Null returns a fresh null value.
func Null() *Value { return &Value{} }

// New returns a fresh value of type t: containers come empty, scalars
// zero valued.
func New(t Type) *Value {
	v := &Value{t: t}
	switch t {
	case ArrayType, ObjectType:
		v.m = &store{}
	}
	return v
}

func FromInt(i int64) *Value { return &Value{t: IntType, i: i} }

func FromUint(u uint64) *Value { return &Value{t: UintType, u: u} }

func FromFloat(f float64) *Value { return &Value{t: RealType, f: f} }

func FromBool(b bool) *Value { return &Value{t: BoolType, b: b} }

// FromString returns a String value holding its own copy of s.
func FromString(s string) *Value {
	return &Value{t: StringType, s: strings.Clone(s)}
}

// FromStatic returns a String value aliasing s. The backing storage of
// s must outlive every tree the value is part of; clones keep the
// alias.
func FromStatic(s StaticString) *Value {
	return &Value{t: StringType, s: string(s), sp: BorrowPolicy}
}

// FromShared returns a String value aliasing s until the tree is first
// cloned; the clone owns its copy, the source keeps the alias.
func FromShared(s string) *Value {
	return &Value{t: StringType, s: s, sp: OwnOnCopyPolicy}
}

// FromBytes returns a String value holding a copy of d.
func FromBytes(d []byte) *Value {
	return &Value{t: StringType, s: string(d)}
}

// FromSlice returns an array with els as elements 0..len(els)-1,
// attached by reference. Nil elements become null elements.
func FromSlice(els []*Value) *Value {
	v := New(ArrayType)
	for _, el := range els {
		v.Append(el)
	}
	return v
}

// FromStringSlice returns an array of owned String elements.
func FromStringSlice(els []string) *Value {
	v := New(ArrayType)
	for _, s := range els {
		v.Append(FromString(s))
	}
	return v
}

// FromMap returns an object with the map's entries as members,
// attached by reference under owned name keys.
func FromMap(m map[string]*Value) *Value {
	v := New(ObjectType)
	for name, el := range m {
		if el == nil {
			el = Null()
		}
		v.m.put(NameKey(name), el)
	}
	return v
}

// FromStringMap returns an object of owned String members.
func FromStringMap(m map[string]string) *Value {
	v := New(ObjectType)
	for name, s := range m {
		v.m.put(NameKey(name), FromString(s))
	}
	return v
}

// Type reports the value's type. A nil value reads as null.
func (v *Value) Type() Type {
	if v == nil {
		return NullType
	}
	return v.t
}

// Clone returns a deep copy of v. Owned text may share backing with
// the source (strings are immutable), borrowed text stays aliased, and
// own-on-copy text promotes to an owned copy in the clone.
func (v *Value) Clone() *Value {
	res := &Value{}
	v.CloneTo(res)
	return res
}

// CloneTo deep-copies v into res, replacing res's prior contents.
func (v *Value) CloneTo(res *Value) {
	if v == nil {
		*res = Value{}
		return
	}
	*res = Value{t: v.t, b: v.b, i: v.i, u: v.u, f: v.f, s: v.s, sp: v.sp}
	if v.sp == OwnOnCopyPolicy {
		res.s = strings.Clone(v.s)
		res.sp = OwnPolicy
	}
	if v.m != nil {
		res.m = v.m.clone()
	}
}

// CopyFrom replaces v's contents with a deep copy of o. The copy is
// built first and swapped in whole.
func (v *Value) CopyFrom(o *Value) {
	tmp := o.Clone()
	v.Swap(tmp)
}

// Swap exchanges the contents of v and o in O(1).
func (v *Value) Swap(o *Value) {
	*v, *o = *o, *v
}

// Take moves v's contents into a fresh value and resets v to null.
func (v *Value) Take() *Value {
	res := &Value{}
	v.Swap(res)
	return res
}

// Len returns an array's logical length (largest stored index plus
// one, holes included), an object's member count, and 0 for
// everything else.
func (v *Value) Len() int {
	switch v.Type() {
	case ArrayType:
		if mi, ok := v.m.maxIndex(); ok {
			return int(mi) + 1
		}
		return 0
	case ObjectType:
		return v.m.len()
	default:
		return 0
	}
}

// Empty reports Len() == 0 for null and containers, false for scalars.
func (v *Value) Empty() bool {
	switch v.Type() {
	case NullType, ArrayType, ObjectType:
		return v.Len() == 0
	default:
		return false
	}
}

// ValidIndex reports whether i falls in the array's logical range.
func (v *Value) ValidIndex(i int) bool {
	return i >= 0 && i < v.Len()
}

// Clear removes every entry of an array or object. Null is a no-op;
// anything else is a type mismatch.
func (v *Value) Clear() {
	switch v.Type() {
	case NullType:
	case ArrayType, ObjectType:
		v.m.clear()
	default:
		violate(ErrTypeMismatch, "Clear on %s value", v.t)
	}
}

// Resize grows or shrinks an array to logical length n; a null value
// promotes to an empty array first. Growing materializes a null entry
// at index n-1 only, leaving the indices in between as holes.
// Shrinking drops every entry at index n and above.
func (v *Value) Resize(n int) {
	if v == nil {
		violate(ErrPrecondition, "Resize of nil value")
		return
	}
	if !v.promote(ArrayType) {
		violate(ErrTypeMismatch, "Resize of %s value", v.t)
		return
	}
	if n < 0 {
		violate(ErrRangeOverflow, "Resize to negative length %d", n)
		return
	}
	old := v.Len()
	switch {
	case n == 0:
		v.m.clear()
	case n > old:
		v.At(n - 1)
	case n < old:
		at, _ := v.m.findIndex(uint32(n))
		v.m.entries = v.m.entries[:at]
	}
}

// promote turns a null value into an empty container of type t and
// reports whether v now has type t.
func (v *Value) promote(t Type) bool {
	if v.t == NullType {
		v.t = t
		v.m = &store{}
	}
	return v.t == t
}

// At returns the array element at index i, materializing a null
// element if i is absent. A null value promotes to an array first.
// Write intent: use TryGet for read-only access.
func (v *Value) At(i int) *Value {
	if v == nil {
		violate(ErrPrecondition, "element access of nil value")
		return Null()
	}
	if i < 0 || uint64(i) >= uint64(NotAnIndex) {
		violate(ErrRangeOverflow, "index %d out of range", i)
		return Null()
	}
	if !v.promote(ArrayType) {
		violate(ErrTypeMismatch, "index %d access of %s value", i, v.t)
		return Null()
	}
	if el := v.m.getIndex(uint32(i)); el != nil {
		return el
	}
	return v.m.put(IndexKey(uint32(i)), Null())
}

// AtField returns the object member named name, materializing a null
// member if absent; a new member stores an owned copy of name. A null
// value promotes to an object first.
func (v *Value) AtField(name string) *Value {
	return v.atName(name, NameKey)
}

// AtStatic is AtField with a key aliasing name instead of copying it.
// The backing storage of name must outlive the tree.
func (v *Value) AtStatic(name StaticString) *Value {
	return v.atName(string(name), func(n string) Key { return StaticKey(StaticString(n)) })
}

// AtShared is AtField with a key aliasing name until the tree is first
// cloned.
func (v *Value) AtShared(name string) *Value {
	return v.atName(name, SharedKey)
}

// AtKey returns the entry under k, dispatching on the key's kind and
// keeping its ownership policy for a newly stored name.
func (v *Value) AtKey(k Key) *Value {
	if k.IsIndex() {
		return v.At(int(k.index))
	}
	switch k.policy {
	case BorrowPolicy:
		return v.AtStatic(StaticString(k.name))
	case OwnOnCopyPolicy:
		return v.AtShared(k.name)
	default:
		return v.AtField(k.name)
	}
}

// atName runs the member access with mk deferred so the key is only
// built (and name only copied) when a new member is stored.
func (v *Value) atName(name string, mk func(string) Key) *Value {
	if v == nil {
		violate(ErrPrecondition, "member access of nil value")
		return Null()
	}
	if !v.promote(ObjectType) {
		violate(ErrTypeMismatch, "member %q access of %s value", name, v.t)
		return Null()
	}
	at, ok := v.m.findName(name)
	if ok {
		return v.m.entries[at].val
	}
	el := Null()
	v.m.entries = slices.Insert(v.m.entries, at, entry{key: mk(name), val: el})
	return el
}

// Append stores el at index Len() and returns it. The tree takes el by
// reference; pass el.Clone() to keep ownership of el. A nil el appends
// a null element. A null value promotes to an array first.
func (v *Value) Append(el *Value) *Value {
	if el == nil {
		el = Null()
	}
	if v == nil {
		violate(ErrPrecondition, "Append to nil value")
		return el
	}
	if !v.promote(ArrayType) {
		violate(ErrTypeMismatch, "Append to %s value", v.t)
		return el
	}
	n := v.Len()
	if uint64(n) >= uint64(NotAnIndex) {
		violate(ErrRangeOverflow, "Append to full array")
		return el
	}
	return v.m.put(IndexKey(uint32(n)), el)
}

// TryGet returns the array element stored at index i, nil when i is a
// hole or out of range. Null values have no elements. Read intent:
// never mutates. Anything but an array or null is a type mismatch.
func (v *Value) TryGet(i int) *Value {
	switch v.Type() {
	case NullType:
		return nil
	case ArrayType:
	default:
		violate(ErrTypeMismatch, "index %d read of %s value", i, v.t)
		return nil
	}
	if i < 0 || uint64(i) >= uint64(NotAnIndex) {
		return nil
	}
	return v.m.getIndex(uint32(i))
}

// TryGetField returns the object member named name, nil when absent.
// Null values have no members. Anything but an object or null is a
// type mismatch.
func (v *Value) TryGetField(name string) *Value {
	switch v.Type() {
	case NullType:
		return nil
	case ObjectType:
	default:
		violate(ErrTypeMismatch, "member %q read of %s value", name, v.t)
		return nil
	}
	return v.m.getName(name)
}

// TryGetKey dispatches TryGet or TryGetField on the key's kind.
func (v *Value) TryGetKey(k Key) *Value {
	if k.IsIndex() {
		return v.TryGet(int(k.index))
	}
	return v.TryGetField(k.name)
}

// Get returns the element stored at index i. Absence is a
// precondition violation; unchecked it yields a detached null value.
func (v *Value) Get(i int) *Value {
	if el := v.TryGet(i); el != nil {
		return el
	}
	violate(ErrPrecondition, "no element at index %d", i)
	return Null()
}

// GetField returns the member named name. Absence is a precondition
// violation; unchecked it yields a detached null value.
func (v *Value) GetField(name string) *Value {
	if el := v.TryGetField(name); el != nil {
		return el
	}
	violate(ErrPrecondition, "no member %q", name)
	return Null()
}

// Has reports whether the object has a member named name. Null has
// none; anything else but an object is a type mismatch.
func (v *Value) Has(name string) bool {
	switch v.Type() {
	case NullType:
		return false
	case ObjectType:
	default:
		violate(ErrTypeMismatch, "member %q probe of %s value", name, v.t)
		return false
	}
	_, ok := v.m.findName(name)
	return ok
}

// HasKey reports whether the container stores an entry under k. Index
// holes are absent.
func (v *Value) HasKey(k Key) bool {
	if k.IsName() {
		return v.Has(k.name)
	}
	switch v.Type() {
	case NullType:
		return false
	case ArrayType:
	default:
		violate(ErrTypeMismatch, "index %d probe of %s value", k.index, v.t)
		return false
	}
	_, ok := v.m.findIndex(k.index)
	return ok
}

// Remove deletes the member named name and returns the removed node, a
// fresh null value when absent. Null is a no-op; anything else but an
// object is a type mismatch.
func (v *Value) Remove(name string) *Value {
	switch v.Type() {
	case NullType:
		return Null()
	case ObjectType:
	default:
		violate(ErrTypeMismatch, "Remove(%q) of %s value", name, v.t)
		return Null()
	}
	at, ok := v.m.findName(name)
	if !ok {
		return Null()
	}
	el := v.m.entries[at].val
	v.m.removeAt(at)
	return el
}

// RemoveIndex deletes the entry stored at index i and returns it, a
// fresh null value when i is a hole or out of range. Removing any
// index but the maximum leaves a hole; Len shrinks only when the
// maximum index goes.
func (v *Value) RemoveIndex(i int) *Value {
	switch v.Type() {
	case NullType:
		return Null()
	case ArrayType:
	default:
		violate(ErrTypeMismatch, "RemoveIndex(%d) of %s value", i, v.t)
		return Null()
	}
	if i < 0 || uint64(i) >= uint64(NotAnIndex) {
		return Null()
	}
	at, ok := v.m.findIndex(uint32(i))
	if !ok {
		return Null()
	}
	el := v.m.entries[at].val
	v.m.removeAt(at)
	return el
}

package dom

import "iter"

// Iterator is a bidirectional cursor over a container's entries in key
// order. The zero Iterator is detached: bound to no container, equal
// only to other detached cursors, with nothing to step or
// dereference. Begin and End return bound cursors; mutating the
// container invalidates them, Begin and End after the mutation are
// well defined again.
type Iterator struct {
	s   *store
	pos int
}

// Begin returns a cursor on the container's first entry (equal to End
// when the container is empty). Scalars and null yield a detached
// cursor; a null value has no entries yet, whatever container it may
// become.
func (v *Value) Begin() Iterator {
	switch v.Type() {
	case ArrayType, ObjectType:
		return Iterator{s: v.m}
	default:
		return Iterator{}
	}
}

// End returns the container's one-past-the-end cursor. Scalars and
// null yield a detached cursor.
func (v *Value) End() Iterator {
	switch v.Type() {
	case ArrayType, ObjectType:
		return Iterator{s: v.m, pos: v.m.len()}
	default:
		return Iterator{}
	}
}

// Detached reports whether the cursor is bound to no container.
func (it Iterator) Detached() bool { return it.s == nil }

// Done reports a cursor with no current entry: detached or at the end.
func (it Iterator) Done() bool {
	return it.s == nil || it.pos >= it.s.len()
}

// Next advances to the next entry. Advancing a detached cursor or past
// the end is a precondition violation and a no-op.
func (it *Iterator) Next() {
	if it.s == nil || it.pos >= it.s.len() {
		violate(ErrPrecondition, "Next past the end")
		return
	}
	it.pos++
}

// Prev steps back to the previous entry. Stepping a detached cursor or
// before the first entry is a precondition violation and a no-op.
func (it *Iterator) Prev() {
	if it.s == nil || it.pos == 0 {
		violate(ErrPrecondition, "Prev before the first entry")
		return
	}
	it.pos--
}

// Equal reports whether two cursors sit at the same position of the
// same container. Detached cursors equal only each other.
func (it Iterator) Equal(o Iterator) bool {
	return it.s == o.s && it.pos == o.pos
}

// Distance returns the number of forward steps from it to o, counted
// entry by entry. Two detached cursors are 0 apart. Cursors on
// different containers, and targets not reachable by stepping
// forward, are a precondition violation yielding 0.
func (it Iterator) Distance(o Iterator) int {
	if it.s == nil && o.s == nil {
		return 0
	}
	if it.s != o.s {
		violate(ErrPrecondition, "Distance across containers")
		return 0
	}
	if o.pos < it.pos || o.pos > it.s.len() {
		violate(ErrPrecondition, "Distance target not reachable")
		return 0
	}
	n := 0
	for pos := it.pos; pos != o.pos; pos++ {
		n++
	}
	return n
}

// Entry returns the current entry's value, a detached null value when
// the cursor has none (precondition violation).
func (it Iterator) Entry() *Value {
	if it.Done() {
		violate(ErrPrecondition, "Entry of a done cursor")
		return Null()
	}
	return it.s.entries[it.pos].val
}

// Key returns the current entry's key as a value: a Uint value for
// index keys, a String value for name keys. The String value carries
// the key's ownership policy, so a borrowed key yields a borrowed
// string.
func (it Iterator) Key() *Value {
	if it.Done() {
		violate(ErrPrecondition, "Key of a done cursor")
		return Null()
	}
	k := it.s.entries[it.pos].key
	if k.IsIndex() {
		return FromUint(uint64(k.index))
	}
	switch k.policy {
	case BorrowPolicy:
		return FromStatic(StaticString(k.name))
	case OwnOnCopyPolicy:
		return FromShared(k.name)
	default:
		return FromString(k.name)
	}
}

// Index returns the current entry's index, NotAnIndex for name keys
// and done cursors.
func (it Iterator) Index() uint32 {
	if it.Done() {
		return NotAnIndex
	}
	return it.s.entries[it.pos].key.Index()
}

// FieldName returns the current entry's member name, "" for index keys
// and done cursors.
func (it Iterator) FieldName() string {
	if it.Done() {
		return ""
	}
	return it.s.entries[it.pos].key.Name()
}

// All ranges over the entries of an array or object in key order.
// Anything else ranges over nothing.
func (v *Value) All() iter.Seq2[Key, *Value] {
	return func(yield func(Key, *Value) bool) {
		switch v.Type() {
		case ArrayType, ObjectType:
		default:
			return
		}
		for _, e := range v.m.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Items ranges over an object's members in name order. Anything else,
// null included, is a type mismatch ranging over nothing.
func (v *Value) Items() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if v.Type() != ObjectType {
			violate(ErrTypeMismatch, "Items of %s value", v.Type())
			return
		}
		for _, e := range v.m.entries {
			if !yield(e.key.name, e.val) {
				return
			}
		}
	}
}

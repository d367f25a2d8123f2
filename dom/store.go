package dom

import "slices"

type entry struct {
	key Key
	val *Value
}

// store holds the entries of an array or object, sorted by key. Arrays
// store index keys only and objects name keys only, so the cross-kind
// ordering (index before name) never mixes within one container; it
// does make every lookup total.
type store struct {
	entries []entry
}

func (s *store) len() int { return len(s.entries) }

func (s *store) find(k Key) (int, bool) {
	return slices.BinarySearchFunc(s.entries, k, func(e entry, k Key) int {
		return e.key.Compare(k)
	})
}

func (s *store) findName(name string) (int, bool) {
	return slices.BinarySearchFunc(s.entries, name, func(e entry, name string) int {
		return e.key.CompareName(name)
	})
}

func (s *store) findIndex(i uint32) (int, bool) {
	return slices.BinarySearchFunc(s.entries, i, func(e entry, i uint32) int {
		return e.key.CompareIndex(i)
	})
}

func (s *store) getName(name string) *Value {
	if at, ok := s.findName(name); ok {
		return s.entries[at].val
	}
	return nil
}

func (s *store) getIndex(i uint32) *Value {
	if at, ok := s.findIndex(i); ok {
		return s.entries[at].val
	}
	return nil
}

// put stores val under k. An existing entry keeps its stored key and
// only the value is replaced.
func (s *store) put(k Key, val *Value) *Value {
	at, ok := s.find(k)
	if ok {
		s.entries[at].val = val
		return val
	}
	s.entries = slices.Insert(s.entries, at, entry{key: k, val: val})
	return val
}

func (s *store) removeAt(at int) {
	s.entries = slices.Delete(s.entries, at, at+1)
}

// maxIndex returns the largest stored index key, if any. Index keys
// occupy a prefix of the sorted entries, so the boundary is where the
// smallest name key would insert.
func (s *store) maxIndex() (uint32, bool) {
	n, _ := s.findName("")
	if n == 0 {
		return 0, false
	}
	return s.entries[n-1].key.index, true
}

func (s *store) clone() *store {
	c := &store{entries: make([]entry, len(s.entries))}
	for i, e := range s.entries {
		c.entries[i] = entry{key: e.key.clone(), val: e.val.Clone()}
	}
	return c
}

func (s *store) clear() {
	s.entries = nil
}

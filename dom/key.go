package dom

import (
	"cmp"
	"strconv"
	"strings"
)

// NotAnIndex is the index reported by Key.Index and Iterator.Index for
// name keys.
const NotAnIndex = ^uint32(0)

// KeyKind discriminates index keys from name keys.
type KeyKind uint8

const (
	IndexKind KeyKind = iota
	NameKind
)

func (k KeyKind) String() string {
	s, ok := map[KeyKind]string{
		IndexKind: "Index",
		NameKind:  "Name",
	}[k]
	if ok {
		return s
	}
	return "<unknown key kind>"
}

// Key identifies one entry of an array or object store. Index keys
// order before name keys; among themselves indexes order numerically
// and names lexicographically. The zero Key is IndexKey(0).
type Key struct {
	name   string
	index  uint32
	kind   KeyKind
	policy Policy
}

// IndexKey makes an array element key.
func IndexKey(i uint32) Key {
	return Key{index: i}
}

// NameKey makes an object member key holding its own copy of name.
func NameKey(name string) Key {
	return Key{name: strings.Clone(name), index: NotAnIndex, kind: NameKind}
}

// StaticKey makes an object member key aliasing name. The backing
// storage of name must outlive every tree the key is stored in.
func StaticKey(name StaticString) Key {
	return Key{name: string(name), index: NotAnIndex, kind: NameKind, policy: BorrowPolicy}
}

// SharedKey makes an object member key aliasing name until the tree is
// first cloned; the clone owns its copy, the source keeps the alias.
func SharedKey(name string) Key {
	return Key{name: name, index: NotAnIndex, kind: NameKind, policy: OwnOnCopyPolicy}
}

func (k Key) Kind() KeyKind { return k.kind }

func (k Key) IsIndex() bool { return k.kind == IndexKind }

func (k Key) IsName() bool { return k.kind == NameKind }

// Index returns the index of an index key, NotAnIndex for a name key.
func (k Key) Index() uint32 {
	if k.kind != IndexKind {
		return NotAnIndex
	}
	return k.index
}

// Name returns the name of a name key, "" for an index key.
func (k Key) Name() string {
	if k.kind != NameKind {
		return ""
	}
	return k.name
}

func (k Key) Policy() Policy { return k.policy }

// Compare orders keys: index keys before name keys, then numerically
// or lexicographically within a kind. Ownership policy does not
// participate.
func (k Key) Compare(o Key) int {
	if k.kind != o.kind {
		if k.kind == IndexKind {
			return -1
		}
		return 1
	}
	if k.kind == IndexKind {
		return cmp.Compare(k.index, o.index)
	}
	return strings.Compare(k.name, o.name)
}

// CompareName orders k against the name key for name.
func (k Key) CompareName(name string) int {
	if k.kind == IndexKind {
		return -1
	}
	return strings.Compare(k.name, name)
}

// CompareIndex orders k against IndexKey(i).
func (k Key) CompareIndex(i uint32) int {
	if k.kind == NameKind {
		return 1
	}
	return cmp.Compare(k.index, i)
}

func (k Key) Equal(o Key) bool {
	return k.Compare(o) == 0
}

func (k Key) String() string {
	if k.kind == IndexKind {
		return strconv.FormatUint(uint64(k.index), 10)
	}
	return strconv.Quote(k.name)
}

// clone returns the key a cloned tree stores. Borrowed keys keep the
// alias, shared keys promote to an owned copy.
func (k Key) clone() Key {
	if k.policy == OwnOnCopyPolicy {
		k.name = strings.Clone(k.name)
		k.policy = OwnPolicy
	}
	return k
}

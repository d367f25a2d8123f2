package dom

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is fixed per process so equal trees hash equal across
// separate Hash calls.
var hashSeed = maphash.MakeSeed()

// Hash returns a content hash of the subtree: values equal under
// Compare hash equal within one process. Hashes are not stable across
// processes.
func (v *Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	v.hashInto(&h)
	return h.Sum64()
}

func (v *Value) hashInto(h *maphash.Hash) {
	h.WriteByte(byte(v.Type()))
	var buf [8]byte
	switch v.Type() {
	case IntType:
		binary.LittleEndian.PutUint64(buf[:], uint64(v.i))
		h.Write(buf[:])
	case UintType:
		binary.LittleEndian.PutUint64(buf[:], v.u)
		h.Write(buf[:])
	case RealType:
		// normalize the payloads Compare conflates: -0 with +0, and
		// every NaN bit pattern with one canonical NaN
		f := v.f
		if f == 0 {
			f = 0
		} else if math.IsNaN(f) {
			f = math.NaN()
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	case StringType:
		h.WriteString(v.s)
	case BoolType:
		if v.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case ArrayType, ObjectType:
		for _, e := range v.m.entries {
			e.key.hashInto(h)
			e.val.hashInto(h)
		}
	}
}

func (k Key) hashInto(h *maphash.Hash) {
	h.WriteByte(byte(k.kind))
	if k.kind == IndexKind {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], k.index)
		h.Write(buf[:])
		return
	}
	h.WriteString(k.name)
}

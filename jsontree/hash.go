package jsontree

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is fixed per process so that equal values hash equal across
// calls. Hashes are not stable across runs.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of v, usable for caching and
// deduplication. Equal values hash equal. It panics if v is nil.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("jsontree: Hash called on nil value")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(v.Type))
	switch v.Type {
	case NullType:
	case BoolType:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.Num))
		h.Write(b[:])
	case StringType:
		h.WriteString(v.Str)
	case ArrayType:
		var b [8]byte
		for _, e := range v.Arr {
			binary.LittleEndian.PutUint64(b[:], e.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		var b [8]byte
		for _, k := range v.Keys() {
			binary.LittleEndian.PutUint64(b[:], maphash.String(hashSeed, k))
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], v.Obj[k].Hash())
			h.Write(b[:])
		}
	default:
		panic("type")
	}
	return h.Sum64()
}

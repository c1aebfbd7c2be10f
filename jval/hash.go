package jval

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is shared by every Hash call so equal values hash equal
// for the lifetime of the process.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the value. Equal values hash equal:
// object fields are combined in sorted key order, and -0 and NaN
// number payloads are folded to canonical forms.
func (v Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(v.kind))

	switch v.kind {
	case NullKind:
	case BoolKind:
		if v.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberKind:
		f := v.num
		if f == 0 {
			f = 0 // folds -0 into +0
		}
		if math.IsNaN(f) {
			f = math.NaN()
		}
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	case StringKind:
		h.WriteString(v.str)
	case ArrayKind:
		// Combine child hashes order-dependently. Children
		// contribute fixed-width blocks, so element boundaries
		// cannot shift.
		var b [8]byte
		for _, e := range v.elems {
			binary.LittleEndian.PutUint64(b[:], e.Hash())
			h.Write(b[:])
		}
	case ObjectKind:
		var b [8]byte
		for _, f := range sortedFields(v) {
			binary.LittleEndian.PutUint64(b[:], maphash.String(hashSeed, f.Key))
			h.Write(b[:])

			binary.LittleEndian.PutUint64(b[:], f.Val.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}

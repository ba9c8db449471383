package endian

import (
	"math"

	"github.com/bitmemlabs/bitmem/memory"
)

// ReadFloat32 reads an IEEE-754 binary32 value laid out in the given order
// at addr. The stored bit pattern is reproduced exactly, including
// subnormals, signed zeros, infinities and NaN payloads.
func ReadFloat32(m memory.Memory, addr int, o Order) (float32, error) {
	v, err := ReadUint32(m, addr, o)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// WriteFloat32 stores the IEEE-754 binary32 bit pattern of v in the given
// order at addr, returning the new memory.
func WriteFloat32(m memory.Memory, addr int, v float32, o Order) (memory.Memory, error) {
	return WriteUint32(m, addr, math.Float32bits(v), o)
}

// ReadFloat64 reads an IEEE-754 binary64 value laid out in the given order
// at addr. The stored bit pattern is reproduced exactly, including
// subnormals, signed zeros, infinities and NaN payloads.
func ReadFloat64(m memory.Memory, addr int, o Order) (float64, error) {
	v, err := ReadUint64(m, addr, o)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// WriteFloat64 stores the IEEE-754 binary64 bit pattern of v in the given
// order at addr, returning the new memory.
func WriteFloat64(m memory.Memory, addr int, v float64, o Order) (memory.Memory, error) {
	return WriteUint64(m, addr, math.Float64bits(v), o)
}

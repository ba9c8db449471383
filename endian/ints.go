package endian

import (
	"github.com/bitmemlabs/bitmem/memory"
)

const (
	sizeUint16 = 2
	sizeUint32 = 4
	sizeUint64 = 8
)

// ReadUint16 reads a 16-bit unsigned integer laid out in the given order
// at addr.
func ReadUint16(m memory.Memory, addr int, o Order) (uint16, error) {
	buf, err := m.GetBytes(addr, sizeUint16)
	if err != nil {
		return 0, err
	}
	return o.byteOrder().Uint16(buf), nil
}

// WriteUint16 stores a 16-bit unsigned integer in the given order at addr,
// returning the new memory. On a bounds failure no byte is written.
func WriteUint16(m memory.Memory, addr int, v uint16, o Order) (memory.Memory, error) {
	var buf [sizeUint16]byte
	o.byteOrder().PutUint16(buf[:], v)
	return m.SetBytes(addr, buf[:])
}

// ReadInt16 reads the two's-complement reinterpretation of the 16-bit
// pattern at addr.
func ReadInt16(m memory.Memory, addr int, o Order) (int16, error) {
	v, err := ReadUint16(m, addr, o)
	return int16(v), err
}

// WriteInt16 stores the two's-complement pattern of v in the given order
// at addr.
func WriteInt16(m memory.Memory, addr int, v int16, o Order) (memory.Memory, error) {
	return WriteUint16(m, addr, uint16(v), o)
}

// ReadUint32 reads a 32-bit unsigned integer laid out in the given order
// at addr.
func ReadUint32(m memory.Memory, addr int, o Order) (uint32, error) {
	buf, err := m.GetBytes(addr, sizeUint32)
	if err != nil {
		return 0, err
	}
	return o.byteOrder().Uint32(buf), nil
}

// WriteUint32 stores a 32-bit unsigned integer in the given order at addr,
// returning the new memory. On a bounds failure no byte is written.
func WriteUint32(m memory.Memory, addr int, v uint32, o Order) (memory.Memory, error) {
	var buf [sizeUint32]byte
	o.byteOrder().PutUint32(buf[:], v)
	return m.SetBytes(addr, buf[:])
}

// ReadInt32 reads the two's-complement reinterpretation of the 32-bit
// pattern at addr.
func ReadInt32(m memory.Memory, addr int, o Order) (int32, error) {
	v, err := ReadUint32(m, addr, o)
	return int32(v), err
}

// WriteInt32 stores the two's-complement pattern of v in the given order
// at addr.
func WriteInt32(m memory.Memory, addr int, v int32, o Order) (memory.Memory, error) {
	return WriteUint32(m, addr, uint32(v), o)
}

// ReadUint64 reads a 64-bit unsigned integer laid out in the given order
// at addr. The whole path is 64-bit exact.
func ReadUint64(m memory.Memory, addr int, o Order) (uint64, error) {
	buf, err := m.GetBytes(addr, sizeUint64)
	if err != nil {
		return 0, err
	}
	return o.byteOrder().Uint64(buf), nil
}

// WriteUint64 stores a 64-bit unsigned integer in the given order at addr,
// returning the new memory. On a bounds failure no byte is written.
func WriteUint64(m memory.Memory, addr int, v uint64, o Order) (memory.Memory, error) {
	var buf [sizeUint64]byte
	o.byteOrder().PutUint64(buf[:], v)
	return m.SetBytes(addr, buf[:])
}

// ReadInt64 reads the two's-complement reinterpretation of the 64-bit
// pattern at addr.
func ReadInt64(m memory.Memory, addr int, o Order) (int64, error) {
	v, err := ReadUint64(m, addr, o)
	return int64(v), err
}

// WriteInt64 stores the two's-complement pattern of v in the given order
// at addr.
func WriteInt64(m memory.Memory, addr int, v int64, o Order) (memory.Memory, error) {
	return WriteUint64(m, addr, uint64(v), o)
}

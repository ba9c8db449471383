// Package endian reads and writes 16/32/64-bit integers and IEEE-754
// floats into a memory.Memory at arbitrary byte offsets, in either byte
// order, along with byte-swap primitives that need no memory at all.
//
// The memory layer knows only bytes; all byte-order and signedness
// semantics live here.
package endian

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Order is a byte-order convention for laying a multi-byte scalar out in
// memory.
type Order uint8

const (
	// Little stores the least-significant byte at the lowest address.
	Little Order = iota
	// Big stores the most-significant byte at the lowest address.
	Big
)

func (o Order) String() string {
	switch o {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// byteOrder maps an Order to its encoding/binary implementation.
func (o Order) byteOrder() binary.ByteOrder {
	if o == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Native reports the byte order the host lays scalars out in. It is a
// convenience default only; explicit-order calls never consult it.
func Native() Order {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x02}) == 0x0201 {
		return Little
	}
	return Big
}

// SwapBytes16 reverses the byte order of v.
func SwapBytes16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// SwapBytes32 reverses the byte order of v.
func SwapBytes32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// SwapBytes64 reverses the byte order of v.
func SwapBytes64(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}

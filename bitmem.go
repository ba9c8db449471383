// Package bitmem re-exports the library's core vocabulary: the immutable
// bit-addressable Memory, the single-bit primitives and the byte-order
// codec. Subpackages remain the canonical home of each surface; this
// package exists so common callers need a single import.
package bitmem

import (
	"github.com/bitmemlabs/bitmem/bit"
	"github.com/bitmemlabs/bitmem/endian"
	"github.com/bitmemlabs/bitmem/memory"
)

type (
	Memory     = memory.Memory
	BitAddress = memory.BitAddress
	BitWrite   = memory.BitWrite
	Bit        = bit.Bit
	Order      = endian.Order
)

const (
	Zero = bit.Zero
	One  = bit.One

	Little = endian.Little
	Big    = endian.Big
)

// New allocates a zero-filled memory of the given byte size.
func New(size int) (Memory, error) {
	return memory.New(size)
}

// Package memory provides BitMemory: an immutable, fixed-size sequence of
// bytes with individual bit access. Every mutating operation returns a new
// Memory value and leaves the receiver untouched, so values can be shared
// freely across goroutines.
//
// Storage is split into fixed-size pages shared between derived values; a
// single-bit or single-byte write clones only the touched page and the page
// table, never the whole buffer.
package memory

import (
	"bytes"

	"github.com/bitmemlabs/bitmem/bit"
)

const pageSize = 256

// Memory is an immutable, fixed-size byte buffer with bit-level addressing.
// The zero value is an empty memory.
type Memory struct {
	size  int
	pages [][]byte
}

// New allocates a memory of the given byte size, zero-filled.
// Size 0 is valid and yields an empty, fully functional memory.
func New(size int) (Memory, error) {
	if size < 0 {
		return Memory{}, SizeError{Size: size}
	}

	numPages := (size + pageSize - 1) / pageSize
	backing := make([]byte, size)
	pages := make([][]byte, numPages)
	for i := range pages {
		lo := i * pageSize
		hi := lo + pageSize
		if hi > size {
			hi = size
		}
		pages[i] = backing[lo:hi]
	}

	return Memory{size: size, pages: pages}, nil
}

// Size returns the number of bytes.
func (m Memory) Size() int {
	return m.size
}

// BitCapacity returns the total number of addressable bits.
func (m Memory) BitCapacity() int {
	return m.size * 8
}

// IsValidAddress reports whether addr is inside [0, size).
func (m Memory) IsValidAddress(addr int) bool {
	return addr >= 0 && addr < m.size
}

// IsValidBitPosition reports whether pos is inside [0, 7].
func IsValidBitPosition(pos int) bool {
	return bit.IsValidPosition(pos)
}

// IsValidBit reports whether v is exactly 0 or 1.
func IsValidBit(v int) bool {
	return bit.IsValid(v)
}

func (m Memory) byteAt(addr int) byte {
	return m.pages[addr/pageSize][addr%pageSize]
}

func (m Memory) checkAddress(addr int) error {
	if !m.IsValidAddress(addr) {
		return AddressError{Address: addr, Size: m.size}
	}
	return nil
}

func (m Memory) checkBitAddress(addr, pos int) error {
	if err := m.checkAddress(addr); err != nil {
		return err
	}
	if !bit.IsValidPosition(pos) {
		return BitPositionError{Position: pos}
	}
	return nil
}

// checkRange validates addr and width without computing addr+width, which
// can overflow for hostile addresses.
func (m Memory) checkRange(addr, width int) error {
	if addr < 0 || width < 0 || addr > m.size-width {
		return RangeError{Address: addr, Width: width, Size: m.size}
	}
	return nil
}

// GetBit returns the bit at the given byte address and position.
func (m Memory) GetBit(addr, pos int) (bit.Bit, error) {
	if err := m.checkBitAddress(addr, pos); err != nil {
		return bit.Zero, err
	}
	return bit.Get(m.byteAt(addr), pos), nil
}

// SetBit returns a new memory with the bit at the given byte address and
// position set to b.
func (m Memory) SetBit(addr, pos int, b bit.Bit) (Memory, error) {
	if err := m.checkBitAddress(addr, pos); err != nil {
		return Memory{}, err
	}
	bld := m.builder()
	bld.setByte(addr, bit.Set(m.byteAt(addr), pos, b))
	return bld.build(), nil
}

// FlipBit returns a new memory with the bit at the given byte address and
// position inverted.
func (m Memory) FlipBit(addr, pos int) (Memory, error) {
	if err := m.checkBitAddress(addr, pos); err != nil {
		return Memory{}, err
	}
	bld := m.builder()
	bld.setByte(addr, bit.Toggle(m.byteAt(addr), pos))
	return bld.build(), nil
}

// GetByte returns the byte at addr.
func (m Memory) GetByte(addr int) (byte, error) {
	if err := m.checkAddress(addr); err != nil {
		return 0, err
	}
	return m.byteAt(addr), nil
}

// SetByte returns a new memory with the low 8 bits of v stored at addr.
// Byte storage is modulo-256: input wider than 8 bits is masked, not
// rejected. This is the one permissive write; bit-level operations
// validate strictly.
func (m Memory) SetByte(addr int, v int) (Memory, error) {
	if err := m.checkAddress(addr); err != nil {
		return Memory{}, err
	}
	bld := m.builder()
	bld.setByte(addr, byte(v&0xff))
	return bld.build(), nil
}

// GetBytes returns a copy of the n bytes starting at addr.
func (m Memory) GetBytes(addr, n int) ([]byte, error) {
	if err := m.checkRange(addr, n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = m.byteAt(addr + i)
	}
	return out, nil
}

// SetBytes returns a new memory with data stored at consecutive addresses
// starting at addr. The write is all-or-nothing: on a bounds failure no
// byte is written.
func (m Memory) SetBytes(addr int, data []byte) (Memory, error) {
	if err := m.checkRange(addr, len(data)); err != nil {
		return Memory{}, err
	}
	if len(data) == 0 {
		return m, nil
	}
	bld := m.builder()
	for i, v := range data {
		bld.setByte(addr+i, v)
	}
	return bld.build(), nil
}

// SetBits applies the writes in input order, equivalent to repeated SetBit
// calls. An empty list returns a content-equal memory. On any invalid
// write the whole batch is rejected.
func (m Memory) SetBits(writes []BitWrite) (Memory, error) {
	for _, w := range writes {
		if err := m.checkBitAddress(w.Byte, w.Bit); err != nil {
			return Memory{}, err
		}
	}
	if len(writes) == 0 {
		return m, nil
	}
	bld := m.builder()
	for _, w := range writes {
		bld.setByte(w.Byte, bit.Set(bld.byteAt(w.Byte), w.Bit, w.Value))
	}
	return bld.build(), nil
}

// GetBits reads the addressed bits in input order.
func (m Memory) GetBits(addrs []BitAddress) ([]bit.Bit, error) {
	bits := make([]bit.Bit, len(addrs))
	for i, a := range addrs {
		b, err := m.GetBit(a.Byte, a.Bit)
		if err != nil {
			return nil, err
		}
		bits[i] = b
	}
	return bits, nil
}

// Equal reports whether m and o hold the same size and byte content.
func (m Memory) Equal(o Memory) bool {
	if m.size != o.size {
		return false
	}
	for i := range m.pages {
		if !bytes.Equal(m.pages[i], o.pages[i]) {
			return false
		}
	}
	return true
}

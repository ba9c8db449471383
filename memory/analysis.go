package memory

import "math/bits"

// CountSetBits returns the total number of 1-bits in the memory.
func (m Memory) CountSetBits() int {
	var n int
	for _, page := range m.pages {
		for _, v := range page {
			n += bits.OnesCount8(v)
		}
	}
	return n
}

// FindFirstSetBit scans byte addresses ascending and, within a byte, bit
// positions ascending from 0, returning the first 1-bit found. ok is false
// when no bit is set.
func (m Memory) FindFirstSetBit() (addr BitAddress, ok bool) {
	for p, page := range m.pages {
		for i, v := range page {
			if v != 0 {
				return BitAddress{
					Byte: p*pageSize + i,
					Bit:  bits.TrailingZeros8(v),
				}, true
			}
		}
	}
	return BitAddress{}, false
}

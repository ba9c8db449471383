package memory

import (
	"fmt"

	"github.com/bitmemlabs/bitmem/bit"
)

// BitAddress identifies a single bit: a byte address plus a bit position
// inside that byte, position 0 being least significant.
type BitAddress struct {
	Byte int
	Bit  int
}

func (a BitAddress) String() string {
	return fmt.Sprintf("%d:%d", a.Byte, a.Bit)
}

// NewBitAddress validates arbitrary numeric input into a BitAddress.
// The byte address is only checked for non-negativity here; whether it
// falls inside a particular memory is checked by that memory's operations.
func NewBitAddress(byteAddr, bitPos int) (BitAddress, error) {
	if byteAddr < 0 {
		return BitAddress{}, NegativeAddressError{Address: byteAddr}
	}
	if !bit.IsValidPosition(bitPos) {
		return BitAddress{}, BitPositionError{Position: bitPos}
	}
	return BitAddress{Byte: byteAddr, Bit: bitPos}, nil
}

// BitWrite pairs a bit address with the value to store there.
type BitWrite struct {
	BitAddress
	Value bit.Bit
}

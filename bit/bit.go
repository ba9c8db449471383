// Package bit provides operations on a single bit inside one byte,
// following the LSB pattern, where bit position 0 is the least-significant
// bit of the byte.
package bit

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

// Uint8 returns the bit as a numeric 0 or 1.
func (b Bit) Uint8() uint8 {
	if b {
		return 1
	}
	return 0
}

func (b Bit) String() string {
	if b {
		return "1"
	}
	return "0"
}

// Get returns the bit of v at the given position.
// The position is assumed to be pre-validated to [0, 7].
func Get(v byte, pos int) Bit {
	return Bit(v>>pos&1 == 1)
}

// Set returns v with the bit at the given position set to b.
// The position is assumed to be pre-validated to [0, 7].
func Set(v byte, pos int, b Bit) byte {
	if b {
		return v | 1<<pos
	}
	return v &^ (1 << pos)
}

// Toggle returns v with the bit at the given position flipped.
// The position is assumed to be pre-validated to [0, 7].
func Toggle(v byte, pos int) byte {
	return v ^ 1<<pos
}

// IsValid reports whether v is exactly 0 or 1.
func IsValid(v int) bool {
	return v == 0 || v == 1
}

// FromInt validates a numeric bit value into a Bit.
func FromInt(v int) (Bit, error) {
	if !IsValid(v) {
		return Zero, ValueError{Value: v}
	}
	return Bit(v == 1), nil
}

// IsValidPosition reports whether pos addresses a bit within a byte.
func IsValidPosition(pos int) bool {
	return pos >= 0 && pos <= 7
}

// ToBits explodes v into its 8 bits, least-significant first.
// This is the storage bit order; textual rendering uses the opposite,
// most-significant-first order.
func ToBits(v byte) []Bit {
	bits := make([]Bit, 8)
	for pos := range bits {
		bits[pos] = Get(v, pos)
	}
	return bits
}

// FromBits combines exactly 8 bits, least-significant first, into a byte.
func FromBits(bits []Bit) (byte, error) {
	if len(bits) != 8 {
		return 0, LengthError{Length: len(bits)}
	}
	var v byte
	for pos, b := range bits {
		v = Set(v, pos, b)
	}
	return v, nil
}

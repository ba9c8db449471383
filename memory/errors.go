package memory

import "fmt"

// SizeError reports a negative requested memory size.
type SizeError struct {
	Size int
}

func (e SizeError) Error() string {
	return fmt.Sprintf("invalid memory size; expected: >= 0, given: %d", e.Size)
}

// NegativeAddressError reports a byte address below zero, independent of
// any particular memory's bounds.
type NegativeAddressError struct {
	Address int
}

func (e NegativeAddressError) Error() string {
	return fmt.Sprintf("invalid byte address; expected: >= 0, given: %d", e.Address)
}

// AddressError reports a byte address outside the memory bounds.
type AddressError struct {
	Address int
	Size    int
}

func (e AddressError) Error() string {
	return fmt.Sprintf("address out of bounds; expected: [0, %d), given: %d", e.Size, e.Address)
}

// RangeError reports a multi-byte access running past the end of the
// memory.
type RangeError struct {
	Address int
	Width   int
	Size    int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("range out of bounds; expected: address+width <= %d, given: address %d, width %d",
		e.Size, e.Address, e.Width)
}

// BitPositionError reports a bit position outside [0, 7].
type BitPositionError struct {
	Position int
}

func (e BitPositionError) Error() string {
	return fmt.Sprintf("invalid bit position; expected: [0, 7], given: %d", e.Position)
}

package bit

import "fmt"

// ValueError reports a numeric bit value that is not exactly 0 or 1.
type ValueError struct {
	Value int
}

func (e ValueError) Error() string {
	return fmt.Sprintf("invalid bit value; expected: 0 or 1, given: %d", e.Value)
}

// LengthError reports a bit slice whose length is not one full byte.
type LengthError struct {
	Length int
}

func (e LengthError) Error() string {
	return fmt.Sprintf("invalid bits length; expected: 8, given: %d", e.Length)
}

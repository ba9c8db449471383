package memory

import "strings"

const hexDigits = "0123456789abcdef"

// Hex renders the memory as two lowercase hex digits per byte, bytes
// separated by a single space. Empty memory renders as "".
func (m Memory) Hex() string {
	if m.size == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(m.size*3 - 1)
	var i int
	for _, page := range m.pages {
		for _, v := range page {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(hexDigits[v>>4])
			sb.WriteByte(hexDigits[v&0x0f])
			i++
		}
	}
	return sb.String()
}

// Binary renders each byte as eight binary digits, most-significant bit
// first, bytes separated by a single space. Empty memory renders as "".
// This display order is deliberately the reverse of the LSB-first storage
// order used by bit.ToBits.
func (m Memory) Binary() string {
	if m.size == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(m.size*9 - 1)
	var i int
	for _, page := range m.pages {
		for _, v := range page {
			if i > 0 {
				sb.WriteByte(' ')
			}
			for pos := 7; pos >= 0; pos-- {
				sb.WriteByte('0' + v>>pos&1)
			}
			i++
		}
	}
	return sb.String()
}

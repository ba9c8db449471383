package endian_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitmemlabs/bitmem/endian"
	"github.com/bitmemlabs/bitmem/memory"
)

func newMemory(t *testing.T, size int) memory.Memory {
	t.Helper()
	m, err := memory.New(size)
	require.NoError(t, err)
	return m
}

func TestSwapBytes(t *testing.T) {
	req := require.New(t)

	req.Equal(uint16(0x3412), endian.SwapBytes16(0x1234))
	req.Equal(uint32(0x78563412), endian.SwapBytes32(0x12345678))
	req.Equal(uint64(0xefcdab8967452301), endian.SwapBytes64(0x0123456789abcdef))

	// Involution.
	req.Equal(uint16(0x1234), endian.SwapBytes16(endian.SwapBytes16(0x1234)))
	req.Equal(uint32(0xdeadbeef), endian.SwapBytes32(endian.SwapBytes32(0xdeadbeef)))
	req.Equal(uint64(0xdeadbeefcafebabe), endian.SwapBytes64(endian.SwapBytes64(0xdeadbeefcafebabe)))

	req.Equal(uint64(0), endian.SwapBytes64(0))
	req.Equal(uint64(math.MaxUint64), endian.SwapBytes64(math.MaxUint64))
}

func TestNative(t *testing.T) {
	req := require.New(t)

	o := endian.Native()
	req.Contains([]endian.Order{endian.Little, endian.Big}, o)
	req.Contains([]string{"little", "big"}, o.String())
}

func TestUint16RoundTrip(t *testing.T) {
	req := require.New(t)

	values := []uint16{0, 1, 0x00ff, 0xff00, 0x1234, 0x8000, math.MaxUint16}
	for _, o := range []endian.Order{endian.Little, endian.Big} {
		for _, v := range values {
			m, err := endian.WriteUint16(newMemory(t, 4), 1, v, o)
			req.NoError(err)

			got, err := endian.ReadUint16(m, 1, o)
			req.NoError(err)
			req.Equal(v, got, "order=%v v=%#x", o, v)
		}
	}
}

func TestInt16RoundTrip(t *testing.T) {
	req := require.New(t)

	values := []int16{0, 1, -1, 127, -128, math.MaxInt16, math.MinInt16}
	for _, o := range []endian.Order{endian.Little, endian.Big} {
		for _, v := range values {
			m, err := endian.WriteInt16(newMemory(t, 2), 0, v, o)
			req.NoError(err)

			got, err := endian.ReadInt16(m, 0, o)
			req.NoError(err)
			req.Equal(v, got, "order=%v v=%d", o, v)
		}
	}
}

func TestUint32RoundTrip(t *testing.T) {
	req := require.New(t)

	values := []uint32{0, 1, 0xdeadbeef, 0x80000000, math.MaxUint32}
	for _, o := range []endian.Order{endian.Little, endian.Big} {
		for _, v := range values {
			m, err := endian.WriteUint32(newMemory(t, 8), 3, v, o)
			req.NoError(err)

			got, err := endian.ReadUint32(m, 3, o)
			req.NoError(err)
			req.Equal(v, got, "order=%v v=%#x", o, v)
		}
	}
}

func TestInt32RoundTrip(t *testing.T) {
	req := require.New(t)

	values := []int32{0, 1, -1, -256, math.MaxInt32, math.MinInt32}
	for _, o := range []endian.Order{endian.Little, endian.Big} {
		for _, v := range values {
			m, err := endian.WriteInt32(newMemory(t, 4), 0, v, o)
			req.NoError(err)

			got, err := endian.ReadInt32(m, 0, o)
			req.NoError(err)
			req.Equal(v, got, "order=%v v=%d", o, v)
		}
	}
}

func TestUint64RoundTrip(t *testing.T) {
	req := require.New(t)

	values := []uint64{0, 1, 0x0123456789abcdef, 1 << 53, (1 << 53) + 1, 0x8000000000000000, math.MaxUint64}
	for _, o := range []endian.Order{endian.Little, endian.Big} {
		for _, v := range values {
			m, err := endian.WriteUint64(newMemory(t, 8), 0, v, o)
			req.NoError(err)

			got, err := endian.ReadUint64(m, 0, o)
			req.NoError(err)
			req.Equal(v, got, "order=%v v=%#x", o, v)
		}
	}
}

func TestInt64RoundTrip(t *testing.T) {
	req := require.New(t)

	values := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, -0x0123456789abcdef}
	for _, o := range []endian.Order{endian.Little, endian.Big} {
		for _, v := range values {
			m, err := endian.WriteInt64(newMemory(t, 8), 0, v, o)
			req.NoError(err)

			got, err := endian.ReadInt64(m, 0, o)
			req.NoError(err)
			req.Equal(v, got, "order=%v v=%d", o, v)
		}
	}
}

// Values beyond 53 bits of magnitude must survive byte-exactly; a float64
// intermediate would corrupt them.
func TestUint64Precision(t *testing.T) {
	req := require.New(t)

	const v = uint64(0x0123456789abcdef)

	m, err := endian.WriteUint64(newMemory(t, 8), 0, v, endian.Little)
	req.NoError(err)
	req.Equal("ef cd ab 89 67 45 23 01", m.Hex())

	m, err = endian.WriteUint64(newMemory(t, 8), 0, v, endian.Big)
	req.NoError(err)
	req.Equal("01 23 45 67 89 ab cd ef", m.Hex())

	// Adjacent 64-bit values stay distinct through the pipeline.
	for _, d := range []uint64{v, v + 1, v - 1} {
		m, err := endian.WriteUint64(newMemory(t, 8), 0, d, endian.Little)
		req.NoError(err)
		got, err := endian.ReadUint64(m, 0, endian.Little)
		req.NoError(err)
		req.Equal(d, got)
	}
}

func TestCrossEndianReads(t *testing.T) {
	req := require.New(t)

	m, err := endian.WriteUint16(newMemory(t, 8), 0, 0x1234, endian.Little)
	req.NoError(err)
	got16, err := endian.ReadUint16(m, 0, endian.Big)
	req.NoError(err)
	req.Equal(endian.SwapBytes16(0x1234), got16)

	m, err = endian.WriteUint32(newMemory(t, 8), 0, 0xdeadbeef, endian.Big)
	req.NoError(err)
	got32, err := endian.ReadUint32(m, 0, endian.Little)
	req.NoError(err)
	req.Equal(endian.SwapBytes32(0xdeadbeef), got32)

	m, err = endian.WriteUint64(newMemory(t, 8), 0, 0x0123456789abcdef, endian.Little)
	req.NoError(err)
	got64, err := endian.ReadUint64(m, 0, endian.Big)
	req.NoError(err)
	req.Equal(endian.SwapBytes64(0x0123456789abcdef), got64)
}

func TestFloat32RoundTrip(t *testing.T) {
	req := require.New(t)

	values := []float32{
		0,
		float32(math.Copysign(0, -1)),
		1,
		-1,
		math.Pi,
		math.MaxFloat32,
		math.SmallestNonzeroFloat32, // subnormal
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
	}
	for _, o := range []endian.Order{endian.Little, endian.Big} {
		for _, v := range values {
			m, err := endian.WriteFloat32(newMemory(t, 4), 0, v, o)
			req.NoError(err)

			got, err := endian.ReadFloat32(m, 0, o)
			req.NoError(err)
			// Compare bit patterns: distinguishes -0 from 0.
			req.Equal(math.Float32bits(v), math.Float32bits(got), "order=%v v=%v", o, v)
		}
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	req := require.New(t)

	values := []float64{
		0,
		math.Copysign(0, -1),
		1,
		-1,
		math.Pi,
		math.MaxFloat64,
		math.SmallestNonzeroFloat64, // subnormal
		math.Inf(1),
		math.Inf(-1),
	}
	for _, o := range []endian.Order{endian.Little, endian.Big} {
		for _, v := range values {
			m, err := endian.WriteFloat64(newMemory(t, 8), 0, v, o)
			req.NoError(err)

			got, err := endian.ReadFloat64(m, 0, o)
			req.NoError(err)
			req.Equal(math.Float64bits(v), math.Float64bits(got), "order=%v v=%v", o, v)
		}
	}
}

// NaN round-trips are bit-pattern fidelity, not IEEE equality.
func TestNaNPayloadFidelity(t *testing.T) {
	req := require.New(t)

	patterns64 := []uint64{
		math.Float64bits(math.NaN()),
		0x7ff800000000dead, // quiet NaN with payload
		0x7ff0000000000001, // signaling NaN
		0xfff8000000000042, // negative NaN
	}
	for _, o := range []endian.Order{endian.Little, endian.Big} {
		for _, pattern := range patterns64 {
			m, err := endian.WriteFloat64(newMemory(t, 8), 0, math.Float64frombits(pattern), o)
			req.NoError(err)

			got, err := endian.ReadFloat64(m, 0, o)
			req.NoError(err)
			req.True(math.IsNaN(got))
			req.Equal(pattern, math.Float64bits(got), "order=%v pattern=%#x", o, pattern)
		}
	}

	pattern32 := uint32(0x7fc00dea)
	m, err := endian.WriteFloat32(newMemory(t, 4), 0, math.Float32frombits(pattern32), endian.Little)
	req.NoError(err)
	got, err := endian.ReadFloat32(m, 0, endian.Little)
	req.NoError(err)
	req.Equal(pattern32, math.Float32bits(got))
}

// A derived value that is negative zero in the host float type must encode
// as the all-zero integer pattern; integers have no negative zero.
func TestNegativeZeroNormalization(t *testing.T) {
	req := require.New(t)

	negZero := math.Copysign(0, -1)
	req.Equal(uint64(0x8000000000000000), math.Float64bits(negZero))

	fromNegZero, err := endian.WriteInt32(newMemory(t, 4), 0, int32(negZero), endian.Little)
	req.NoError(err)
	fromZero, err := endian.WriteInt32(newMemory(t, 4), 0, 0, endian.Little)
	req.NoError(err)

	req.True(fromNegZero.Equal(fromZero))
	req.Equal("00 00 00 00", fromNegZero.Hex())
}

func TestBounds(t *testing.T) {
	req := require.New(t)

	m := newMemory(t, 8)

	// address+width must stay inside the memory; the failing write leaves
	// the source untouched (all-or-nothing).
	_, err := endian.WriteUint16(m, 7, 0xffff, endian.Little)
	req.ErrorAs(err, new(memory.RangeError))

	_, err = endian.WriteUint32(m, 5, 0xffffffff, endian.Big)
	req.ErrorAs(err, new(memory.RangeError))

	_, err = endian.WriteUint64(m, 1, math.MaxUint64, endian.Little)
	req.ErrorAs(err, new(memory.RangeError))

	_, err = endian.WriteFloat64(m, -1, 1.0, endian.Little)
	req.ErrorAs(err, new(memory.RangeError))

	req.Zero(m.CountSetBits())

	_, err = endian.ReadUint16(m, 7, endian.Little)
	req.ErrorAs(err, new(memory.RangeError))
	_, err = endian.ReadUint64(m, 1, endian.Big)
	req.ErrorAs(err, new(memory.RangeError))
	_, err = endian.ReadFloat32(m, 6, endian.Little)
	req.ErrorAs(err, new(memory.RangeError))

	// Exact fits succeed.
	_, err = endian.WriteUint64(m, 0, 1, endian.Little)
	req.NoError(err)
	_, err = endian.WriteUint16(m, 6, 1, endian.Big)
	req.NoError(err)

	// Offsets near the int maximum fail cleanly rather than wrapping.
	_, err = endian.ReadUint64(m, math.MaxInt-7, endian.Little)
	req.ErrorAs(err, new(memory.RangeError))
	_, err = endian.WriteUint32(m, math.MaxInt, 1, endian.Big)
	req.ErrorAs(err, new(memory.RangeError))
}

func TestByteLayout(t *testing.T) {
	req := require.New(t)

	m, err := endian.WriteUint16(newMemory(t, 2), 0, 0x0102, endian.Little)
	req.NoError(err)
	req.Equal("02 01", m.Hex())

	m, err = endian.WriteUint16(newMemory(t, 2), 0, 0x0102, endian.Big)
	req.NoError(err)
	req.Equal("01 02", m.Hex())

	m, err = endian.WriteInt32(newMemory(t, 4), 0, -2, endian.Big)
	req.NoError(err)
	req.Equal("ff ff ff fe", m.Hex())

	m, err = endian.WriteFloat32(newMemory(t, 4), 0, 1.0, endian.Big)
	req.NoError(err)
	req.Equal("3f 80 00 00", m.Hex())

	m, err = endian.WriteFloat64(newMemory(t, 8), 0, 1.0, endian.Little)
	req.NoError(err)
	req.Equal("00 00 00 00 00 00 f0 3f", m.Hex())
}

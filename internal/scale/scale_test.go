package scale

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactU32(t *testing.T) {
	t.Parallel()

	for _, v := range []uint32{0, 1, 42, 63, 64, 255, 16383, 16384, 1<<30 - 1, 1 << 30, 1<<32 - 1} {
		encoded := EncodeCompactU32(v)
		decoded, n, err := DecodeCompactU32(encoded)
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
		assert.Equal(t, len(encoded), n)
	}

	// Values below 64 fit into a single byte holding the value shifted
	// left twice.
	assert.Equal(t, []byte{0}, EncodeCompactU32(0))
	assert.Equal(t, []byte{2 << 2}, EncodeCompactU32(2))
	assert.Equal(t, []byte{63 << 2}, EncodeCompactU32(63))
}

func TestCompactU32Malformed(t *testing.T) {
	t.Parallel()

	_, _, err := DecodeCompactU32(nil)
	require.Error(t, err)

	// A two-byte mode marker with only one byte present.
	_, _, err = DecodeCompactU32([]byte{0b01})
	require.Error(t, err)

	// Big-integer mode announcing more than four payload bytes.
	_, _, err = DecodeCompactU32([]byte{0b111, 1, 2, 3, 4, 5})
	require.Error(t, err)
}

func TestUint64RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []uint64{0, 6, 1 << 40, ^uint64(0)} {
		decoded, err := DecodeUint64(EncodeUint64(v))
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
	}

	_, err := DecodeUint64([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestUint128(t *testing.T) {
	t.Parallel()

	v := uint256.NewInt(1_000_000)
	encoded := EncodeUint128(v)
	require.Len(t, encoded, Uint128Size)

	decoded, err := DecodeUint128(encoded)
	require.NoError(t, err)
	assert.True(t, v.Eq(decoded))

	// Little-endian: the low byte comes first.
	one := EncodeUint128(uint256.NewInt(1))
	assert.Equal(t, byte(1), one[0])
	assert.Equal(t, make([]byte, 15), one[1:])

	_, err = DecodeUint128([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestUint128RejectsWideValues(t *testing.T) {
	t.Parallel()

	tooWide := new(uint256.Int).Lsh(uint256.NewInt(1), 130)
	assert.Panics(t, func() { EncodeUint128(tooWide) })
}

func TestBytesRoundTrip(t *testing.T) {
	t.Parallel()

	for _, b := range [][]byte{nil, {}, {1}, []byte("some payload")} {
		encoded := EncodeBytes(b)
		decoded, n, err := DecodeBytes(encoded)
		require.NoError(t, err)
		assert.Equal(t, len(encoded), n)
		assert.Equal(t, len(b), len(decoded))
		if len(b) > 0 {
			assert.Equal(t, b, decoded)
		}
	}

	// Length prefix promising more bytes than present.
	_, _, err := DecodeBytes([]byte{10 << 2, 1, 2})
	require.Error(t, err)
}

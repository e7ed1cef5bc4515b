package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceArithmetic(t *testing.T) {
	t.Parallel()

	a := NewBalanceFromUint64(1000)
	b := NewBalanceFromUint64(400)

	assert.Equal(t, uint64(1400), a.Add(b).Uint64())
	assert.Equal(t, uint64(600), a.Sub(b).Uint64())
	assert.True(t, b.Lt(a))
	assert.Equal(t, 1, a.Cmp(b))
	assert.True(t, a.Eq(NewBalanceFromUint64(1000)))
}

func TestBalanceUnderflowPanics(t *testing.T) {
	t.Parallel()

	a := NewBalanceFromUint64(1)
	b := NewBalanceFromUint64(2)
	assert.Panics(t, func() { a.Sub(b) })

	_, underflow := a.SubOverflow(b)
	assert.True(t, underflow)
}

func TestBalanceOverflowPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MaxBalance.Add(NewBalanceFromUint64(1)) })

	_, overflow := MaxBalance.AddOverflow(NewBalanceFromUint64(1))
	assert.True(t, overflow)
}

func TestBalanceSaturatingMul(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(600), NewBalanceFromUint64(100).SaturatingMul64(6).Uint64())

	// Near the numeric maximum the product saturates instead of wrapping.
	saturated := MaxBalance.SaturatingMul64(^uint64(0))
	assert.True(t, saturated.Eq(MaxBalance))
}

func TestBalanceEncoding(t *testing.T) {
	t.Parallel()

	original := NewBalanceFromUint64(1_000_000)
	encoded := original.Encode()
	require.Len(t, encoded, 16)

	decoded, err := DecodeBalance(encoded)
	require.NoError(t, err)
	assert.True(t, original.Eq(decoded))

	_, err = DecodeBalance([]byte{1, 2, 3})
	require.Error(t, err)
}

package engine

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestMessage(t *testing.T) (signature [65]byte, messageHash [32]byte, compressedKey []byte) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	copy(messageHash[:], crypto.Keccak256([]byte("a message to sign")))
	sig, err := crypto.Sign(messageHash[:], key)
	require.NoError(t, err)
	copy(signature[:], sig)

	return signature, messageHash, crypto.CompressPubkey(&key.PublicKey)
}

func TestEcdsaRecover(t *testing.T) {
	t.Parallel()

	e := New()
	signature, messageHash, compressedKey := signTestMessage(t)

	var output [33]byte
	require.NoError(t, e.EcdsaRecover(&signature, &messageHash, &output))
	assert.Equal(t, compressedKey, output[:])
}

func TestEcdsaRecoverFoldsRecoveryByte(t *testing.T) {
	t.Parallel()

	e := New()
	signature, messageHash, _ := signTestMessage(t)

	// The 27/28 convention and the raw 0/1 recovery id are equivalent.
	shifted := signature
	shifted[64] += 27

	var fromRaw, fromShifted [33]byte
	require.NoError(t, e.EcdsaRecover(&signature, &messageHash, &fromRaw))
	require.NoError(t, e.EcdsaRecover(&shifted, &messageHash, &fromShifted))
	assert.Equal(t, fromRaw, fromShifted)
}

func TestEcdsaRecoverInvalidSignature(t *testing.T) {
	t.Parallel()

	e := New()

	var signature [65]byte
	var messageHash [32]byte
	for i := range signature[:64] {
		signature[i] = 0xff
	}

	var output [33]byte
	err := e.EcdsaRecover(&signature, &messageHash, &output)
	require.Error(t, err)
	// The output buffer is left untouched on failure.
	assert.Equal(t, [33]byte{}, output)
}

func TestEcdsaRecoverInvalidRecoveryId(t *testing.T) {
	t.Parallel()

	e := New()
	signature, messageHash, _ := signTestMessage(t)
	signature[64] = 5

	var output [33]byte
	err := e.EcdsaRecover(&signature, &messageHash, &output)
	require.Error(t, err)
	assert.Equal(t, [33]byte{}, output)
}

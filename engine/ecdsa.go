package engine

import (
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Brushfam/ink/internal/types"
)

// EcdsaRecover recovers the compressed secp256k1 public key for the given
// signature and message hash and stores the 33-byte result in output.
//
// The recovery byte accepts both conventions: 0/1 as most implementations
// use internally, and 27/28 as adopted from Bitcoin message signing (27 is
// folded away before recovery). On failure the output buffer is left
// untouched and EcdsaRecoveryFailed is returned.
func (e *Engine) EcdsaRecover(signature *[65]byte, messageHash *[32]byte, output *[33]byte) error {
	recoveryByte := signature[64]
	if recoveryByte > 26 {
		recoveryByte -= 27
	}

	sig := make([]byte, 65)
	copy(sig, signature[:64])
	sig[64] = recoveryByte

	pubKey, err := crypto.SigToPub(messageHash[:], sig)
	if err != nil {
		return types.ErrEcdsaRecoveryFailed
	}

	copy(output[:], crypto.CompressPubkey(pubKey))
	return nil
}

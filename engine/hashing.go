package engine

import (
	"crypto/sha256"

	"github.com/Brushfam/ink/common/check"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"
)

// Hashing glue for the host interface. The primitives themselves come from
// the respective libraries; the engine only routes inputs into fixed-size
// output buffers.

// HashBlake2b256 conducts the BLAKE2b 256-bit hash of input into output.
func HashBlake2b256(input []byte, output *[32]byte) {
	*output = blake2b.Sum256(input)
}

// HashBlake2b128 conducts the BLAKE2b 128-bit hash of input into output.
func HashBlake2b128(input []byte, output *[16]byte) {
	hasher, err := blake2b.New(16, nil)
	check.PanicIfErr(err)
	hasher.Write(input)
	copy(output[:], hasher.Sum(nil))
}

// HashSha2_256 conducts the SHA-2 256-bit hash of input into output.
func HashSha2_256(input []byte, output *[32]byte) {
	*output = sha256.Sum256(input)
}

// HashKeccak256 conducts the Keccak 256-bit hash of input into output.
func HashKeccak256(input []byte, output *[32]byte) {
	copy(output[:], crypto.Keccak256(input))
}

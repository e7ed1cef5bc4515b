package types

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"

	"github.com/Brushfam/ink/common/check"
)

// AccountIdSize is the expected length of an account identifier (in bytes).
const AccountIdSize = 32

// AccountId identifies an account or contract. Equality is byte-exact.
type AccountId [AccountIdSize]byte

var EmptyAccountId = AccountId{}

// BytesToAccountId returns AccountId with value b.
// If b is larger than AccountIdSize, b will be cropped from the left.
func BytesToAccountId(b []byte) AccountId {
	var a AccountId
	a.SetBytes(b)
	return a
}

// HexToAccountId parses a hex string, with or without the 0x prefix.
func HexToAccountId(s string) (AccountId, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return AccountId{}, err
	}
	return BytesToAccountId(b), nil
}

// GenerateRandomAccountId is a test helper.
func GenerateRandomAccountId() AccountId {
	var a AccountId
	_, err := rand.Read(a[:])
	check.PanicIfErr(err)
	return a
}

// SetBytes sets the account id to the value of b.
// If b is larger than AccountIdSize, b will be cropped from the left.
func (a *AccountId) SetBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-AccountIdSize:]
	}
	copy(a[AccountIdSize-len(b):], b)
}

func (a AccountId) Bytes() []byte {
	return a[:]
}

func (a AccountId) IsEmpty() bool {
	return a == EmptyAccountId
}

func (a AccountId) Equal(other AccountId) bool {
	return bytes.Equal(a[:], other[:])
}

func (a AccountId) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a AccountId) String() string {
	return a.Hex()
}

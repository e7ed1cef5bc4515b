package types

import (
	"errors"
	"fmt"
)

// Every recoverable error a host function can hand back to a contract carries
// one of these numeric codes. The discriminants are part of the contract ABI
// and must never change: compiled contracts branch on the exact values.
// Codes 4 (below subsistence threshold) and 6 (endowment too low) are retired
// and must never be produced.

type ErrorCode uint32

const (
	CodeSuccess ErrorCode = 0

	// CodeCalleeTrapped: the called contract trapped and had its state
	// changes reverted. Also produced by the reentrancy guard and by an
	// entrance-count underflow.
	CodeCalleeTrapped ErrorCode = 1

	// CodeCalleeReverted: the called contract ran to completion but decided
	// to revert its state.
	CodeCalleeReverted ErrorCode = 2

	// CodeKeyNotFound: the passed key does not exist in storage.
	CodeKeyNotFound ErrorCode = 3

	// CodeTransferFailed: transfer failed for a not further specified reason.
	CodeTransferFailed ErrorCode = 5

	// CodeCodeNotFound: no code could be found at the supplied code hash.
	CodeCodeNotFound ErrorCode = 7

	// CodeNotCallable: the account that was called is no contract.
	CodeNotCallable ErrorCode = 8

	// CodeLoggingDisabled: a debug message was discarded because recording
	// is disabled.
	CodeLoggingDisabled ErrorCode = 9

	// CodeEcdsaRecoveryFailed: ECDSA public key recovery failed. Most
	// probably wrong recovery id or signature.
	CodeEcdsaRecoveryFailed ErrorCode = 11

	// CodeUnknown stands in for any host return code without a mapping.
	CodeUnknown ErrorCode = 12
)

func (c ErrorCode) String() string {
	switch c {
	case CodeSuccess:
		return "Success"
	case CodeCalleeTrapped:
		return "CalleeTrapped"
	case CodeCalleeReverted:
		return "CalleeReverted"
	case CodeKeyNotFound:
		return "KeyNotFound"
	case CodeTransferFailed:
		return "TransferFailed"
	case CodeCodeNotFound:
		return "CodeNotFound"
	case CodeNotCallable:
		return "NotCallable"
	case CodeLoggingDisabled:
		return "LoggingDisabled"
	case CodeEcdsaRecoveryFailed:
		return "EcdsaRecoveryFailed"
	case CodeUnknown:
		return "Unknown"
	}
	return fmt.Sprintf("ErrorCode(%d)", uint32(c))
}

// HostError is a recoverable, declared error with a stable numeric code.
type HostError struct {
	code ErrorCode
}

func NewHostError(code ErrorCode) *HostError {
	return &HostError{code: code}
}

func (e *HostError) Error() string {
	return e.code.String()
}

func (e *HostError) Code() ErrorCode {
	return e.code
}

var (
	ErrCalleeTrapped       = NewHostError(CodeCalleeTrapped)
	ErrCalleeReverted      = NewHostError(CodeCalleeReverted)
	ErrKeyNotFound         = NewHostError(CodeKeyNotFound)
	ErrTransferFailed      = NewHostError(CodeTransferFailed)
	ErrCodeNotFound        = NewHostError(CodeCodeNotFound)
	ErrNotCallable         = NewHostError(CodeNotCallable)
	ErrLoggingDisabled     = NewHostError(CodeLoggingDisabled)
	ErrEcdsaRecoveryFailed = NewHostError(CodeEcdsaRecoveryFailed)
	ErrUnknown             = NewHostError(CodeUnknown)
)

// ErrorFromReturnCode maps a raw host return code to its error. Zero maps to
// nil, declared codes to their sentinel error, anything else to ErrUnknown.
func ErrorFromReturnCode(code uint32) error {
	switch ErrorCode(code) {
	case CodeSuccess:
		return nil
	case CodeCalleeTrapped:
		return ErrCalleeTrapped
	case CodeCalleeReverted:
		return ErrCalleeReverted
	case CodeKeyNotFound:
		return ErrKeyNotFound
	case CodeTransferFailed:
		return ErrTransferFailed
	case CodeCodeNotFound:
		return ErrCodeNotFound
	case CodeNotCallable:
		return ErrNotCallable
	case CodeLoggingDisabled:
		return ErrLoggingDisabled
	case CodeEcdsaRecoveryFailed:
		return ErrEcdsaRecoveryFailed
	}
	return ErrUnknown
}

// GetErrorCode extracts the numeric code from err, or CodeUnknown if err is
// not a HostError.
func GetErrorCode(err error) ErrorCode {
	var hostErr *HostError
	if errors.As(err, &hostErr) {
		return hostErr.Code()
	}
	return CodeUnknown
}

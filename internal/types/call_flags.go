package types

import "strings"

// Bit positions of the call-flag word accompanying a cross-contract call.
const (
	CallFlagForwardInputBit = iota
	CallFlagCloneInputBit
	CallFlagTailCallBit
	CallFlagAllowReentryBit
)

// CallFlags is the 32-bit flag word evaluated around a cross-contract call.
type CallFlags struct {
	BitFlags[uint32]
}

func NewCallFlagsFromBits(bits uint32) CallFlags {
	return CallFlags{BitFlags: BitFlags[uint32]{Bits: bits}}
}

func NewCallFlags(flags ...int) CallFlags {
	return CallFlags{NewBitFlags[uint32](flags...)}
}

// ForwardInput: the callee receives the caller's current input verbatim and
// the input is consumed (cleared from the context).
func (f CallFlags) ForwardInput() bool {
	return f.GetBit(CallFlagForwardInputBit)
}

// CloneInput: the callee receives a copy of the caller's current input and
// the original stays usable.
func (f CallFlags) CloneInput() bool {
	return f.GetBit(CallFlagCloneInputBit)
}

// TailCall: the callee's output replaces the context output on return.
func (f CallFlags) TailCall() bool {
	return f.GetBit(CallFlagTailCallBit)
}

// AllowReentry: the caller may be reentered for the duration of this call.
func (f CallFlags) AllowReentry() bool {
	return f.GetBit(CallFlagAllowReentryBit)
}

func (f CallFlags) String() string {
	var names []string
	if f.ForwardInput() {
		names = append(names, "ForwardInput")
	}
	if f.CloneInput() {
		names = append(names, "CloneInput")
	}
	if f.TailCall() {
		names = append(names, "TailCall")
	}
	if f.AllowReentry() {
		names = append(names, "AllowReentry")
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

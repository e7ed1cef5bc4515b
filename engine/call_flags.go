package engine

import (
	"slices"

	"github.com/Brushfam/ink/common/logging"
	"github.com/Brushfam/ink/internal/types"
)

// The call-flag protocol around delegating a call to another contract.
// Increments and decrements of a callee's entrance counter are strictly
// paired: every call path that went through ApplyCallFlagsBeforeCall must
// run ApplyCallFlagsAfterCall exactly once, or the reentrancy guard sticks.

// ApplyCallFlagsBeforeCall evaluates the flag word before a call is
// delegated and returns the effective input for the callee.
//
// Sequence: record or revoke the caller's reentry permission per
// AllowReentry; reject with CalleeTrapped if the callee is already entered
// and has no reentry permission; open the call on the callee's entrance
// counter; resolve the input per ForwardInput/CloneInput, defaulting to the
// literal input argument.
func (e *Engine) ApplyCallFlagsBeforeCall(
	caller *types.AccountId,
	callee types.AccountId,
	flags types.CallFlags,
	input []byte,
) ([]byte, error) {
	if caller != nil {
		e.contracts.SetAllowReentry(*caller, flags.AllowReentry())
	}

	if !e.contracts.AllowsReentry(callee) && e.contracts.EntranceCount(callee) > 0 {
		e.logger.Debug().
			Stringer(logging.FieldCallee, callee).
			Stringer(logging.FieldCallFlags, flags).
			Uint32(logging.FieldEntranceCount, e.contracts.EntranceCount(callee)).
			Msg("reentrant call rejected")
		return nil, types.ErrCalleeTrapped
	}

	if err := e.contracts.IncreaseEntranceCount(callee); err != nil {
		return nil, err
	}

	switch {
	case flags.ForwardInput():
		previousInput := e.ExecContext.Input
		// The input is consumed by forwarding it, a second use would be a
		// replay.
		e.ExecContext.Input = nil
		return previousInput, nil
	case flags.CloneInput():
		return slices.Clone(e.ExecContext.Input), nil
	default:
		return input, nil
	}
}

// ApplyCallFlagsAfterCall unwinds the flag word after the delegated call
// returned with the given output.
//
// Sequence: propagate the callee's output into the context if TailCall is
// set; close the call on the callee's entrance counter, where an underflow
// surfaces as CalleeTrapped; drop the caller's reentry permission, which
// never outlives the call that granted it.
func (e *Engine) ApplyCallFlagsAfterCall(
	caller *types.AccountId,
	callee types.AccountId,
	flags types.CallFlags,
	output []byte,
) error {
	if flags.TailCall() {
		e.ExecContext.Output = output
	}

	if err := e.contracts.DecreaseEntranceCount(callee); err != nil {
		return err
	}

	if caller != nil {
		e.contracts.RemoveAllowReentry(*caller)
	}
	return nil
}

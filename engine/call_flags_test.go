package engine

import (
	"testing"

	"github.com/Brushfam/ink/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReentrancyGuard(t *testing.T) {
	t.Parallel()

	e := New()
	caller := types.BytesToAccountId([]byte("caller"))
	callee := types.BytesToAccountId([]byte("callee"))
	noFlags := types.NewCallFlagsFromBits(0)

	// First entry into the callee proceeds.
	_, err := e.ApplyCallFlagsBeforeCall(&caller, callee, noFlags, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), e.EntranceCount(callee))

	// A nested call into the already-entered callee without a grant is
	// rejected.
	_, err = e.ApplyCallFlagsBeforeCall(&callee, callee, noFlags, nil)
	require.ErrorIs(t, err, types.ErrCalleeTrapped)

	require.NoError(t, e.ApplyCallFlagsAfterCall(&caller, callee, noFlags, nil))
	assert.Equal(t, uint32(0), e.EntranceCount(callee))
}

func TestReentrancyGrantAndRevocation(t *testing.T) {
	t.Parallel()

	e := New()
	contract := types.BytesToAccountId([]byte("contract"))
	other := types.BytesToAccountId([]byte("other"))
	noFlags := types.NewCallFlagsFromBits(0)
	allowReentry := types.NewCallFlags(types.CallFlagAllowReentryBit)

	// The contract calls out and grants its own reentry.
	_, err := e.ApplyCallFlagsBeforeCall(&contract, other, allowReentry, nil)
	require.NoError(t, err)
	assert.True(t, e.AllowsReentry(contract))

	// The callee calls back into the contract while the outer call into the
	// contract is still open.
	_, err = e.ApplyCallFlagsBeforeCall(nil, contract, noFlags, nil)
	require.NoError(t, err)
	_, err = e.ApplyCallFlagsBeforeCall(&other, contract, noFlags, nil)
	require.NoError(t, err)

	require.NoError(t, e.ApplyCallFlagsAfterCall(&other, contract, noFlags, nil))
	require.NoError(t, e.ApplyCallFlagsAfterCall(nil, contract, noFlags, nil))

	// Returning from the outer call revokes the grant.
	require.NoError(t, e.ApplyCallFlagsAfterCall(&contract, other, allowReentry, nil))
	assert.False(t, e.AllowsReentry(contract))

	// A later nested call without a fresh grant is rejected again.
	_, err = e.ApplyCallFlagsBeforeCall(nil, contract, noFlags, nil)
	require.NoError(t, err)
	_, err = e.ApplyCallFlagsBeforeCall(&other, contract, noFlags, nil)
	require.ErrorIs(t, err, types.ErrCalleeTrapped)
	require.NoError(t, e.ApplyCallFlagsAfterCall(nil, contract, noFlags, nil))
}

func TestForwardInputIsConsumed(t *testing.T) {
	t.Parallel()

	e := New()
	callee := types.BytesToAccountId([]byte("callee"))
	forward := types.NewCallFlags(types.CallFlagForwardInputBit)

	e.SetInput([]byte("call input"))

	effective, err := e.ApplyCallFlagsBeforeCall(nil, callee, forward, []byte("literal"))
	require.NoError(t, err)
	assert.Equal(t, []byte("call input"), effective)
	// Forwarding consumes the context input.
	assert.Empty(t, e.ExecContext.Input)

	require.NoError(t, e.ApplyCallFlagsAfterCall(nil, callee, forward, nil))
}

func TestCloneInputIsPreserved(t *testing.T) {
	t.Parallel()

	e := New()
	callee := types.BytesToAccountId([]byte("callee"))
	clone := types.NewCallFlags(types.CallFlagCloneInputBit)

	e.SetInput([]byte("call input"))

	effective, err := e.ApplyCallFlagsBeforeCall(nil, callee, clone, []byte("literal"))
	require.NoError(t, err)
	assert.Equal(t, []byte("call input"), effective)
	// The original stays usable and the callee got its own copy.
	assert.Equal(t, []byte("call input"), e.ExecContext.Input)
	effective[0] = 'X'
	assert.Equal(t, []byte("call input"), e.ExecContext.Input)

	require.NoError(t, e.ApplyCallFlagsAfterCall(nil, callee, clone, nil))
}

func TestLiteralInputByDefault(t *testing.T) {
	t.Parallel()

	e := New()
	callee := types.BytesToAccountId([]byte("callee"))

	e.SetInput([]byte("call input"))

	effective, err := e.ApplyCallFlagsBeforeCall(nil, callee, types.NewCallFlagsFromBits(0), []byte("literal"))
	require.NoError(t, err)
	assert.Equal(t, []byte("literal"), effective)
	assert.Equal(t, []byte("call input"), e.ExecContext.Input)
}

func TestTailCallPropagatesOutput(t *testing.T) {
	t.Parallel()

	e := New()
	callee := types.BytesToAccountId([]byte("callee"))
	tail := types.NewCallFlags(types.CallFlagTailCallBit)

	_, err := e.ApplyCallFlagsBeforeCall(nil, callee, tail, nil)
	require.NoError(t, err)
	require.NoError(t, e.ApplyCallFlagsAfterCall(nil, callee, tail, []byte("callee output")))

	assert.Equal(t, []byte("callee output"), e.ExecContext.Output)
}

func TestAfterCallUnderflowIsCalleeTrapped(t *testing.T) {
	t.Parallel()

	e := New()
	callee := types.BytesToAccountId([]byte("callee"))

	err := e.ApplyCallFlagsAfterCall(nil, callee, types.NewCallFlagsFromBits(0), nil)
	require.ErrorIs(t, err, types.ErrCalleeTrapped)
}

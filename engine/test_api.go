package engine

import (
	"github.com/Brushfam/ink/internal/types"
)

// Harness-side API: staging the execution context and inspecting recorded
// state between simulated calls. None of this is reachable by contract code
// on a real chain.

// SetCaller stages the caller of the next simulated call.
func (e *Engine) SetCaller(caller types.AccountId) {
	e.ExecContext.SetCaller(caller)
}

// SetCallee stages the contract under execution.
func (e *Engine) SetCallee(callee types.AccountId) {
	e.ExecContext.SetCallee(callee)
}

// SetValueTransferred stages the value attached to the next simulated call.
func (e *Engine) SetValueTransferred(value types.Balance) {
	e.ExecContext.ValueTransferred = value
}

// SetInput stages the input buffer of the current call.
func (e *Engine) SetInput(input []byte) {
	e.ExecContext.Input = input
}

// SetBlockNumber overrides the simulated chain height.
func (e *Engine) SetBlockNumber(number types.BlockNumber) {
	e.ExecContext.BlockNumber = number
}

// SetBlockTimestamp overrides the simulated chain clock.
func (e *Engine) SetBlockTimestamp(timestamp types.BlockTimestamp) {
	e.ExecContext.BlockTimestamp = timestamp
}

// AdvanceBlock progresses the simulated chain by one block.
func (e *Engine) AdvanceBlock() {
	e.ExecContext.BlockNumber++
	e.ExecContext.BlockTimestamp += e.ChainSpec.BlockTime
}

// SetBalance sets the balance of the account in the database, creating its
// record if absent.
func (e *Engine) SetBalance(account types.AccountId, balance types.Balance) {
	e.Database.SetBalance(account, balance)
}

// GetBalance returns the balance of the account and whether a balance
// record exists.
func (e *Engine) GetBalance(account types.AccountId) (types.Balance, bool) {
	return e.Database.GetBalance(account)
}

// CountReads returns how many times the account's storage was read.
func (e *Engine) CountReads(account types.AccountId) int {
	return e.debugInfo.CountReads(account)
}

// CountWrites returns how many times the account's storage was written.
func (e *Engine) CountWrites(account types.AccountId) int {
	return e.debugInfo.CountWrites(account)
}

// CountUsedStorageCells returns the number of storage cells currently in
// use by the account.
func (e *Engine) CountUsedStorageCells(account types.AccountId) int {
	return e.debugInfo.CountUsedStorageCells(account)
}

// EmittedEvents returns the events deposited so far, in emission order.
func (e *Engine) EmittedEvents() []EmittedEvent {
	return e.debugInfo.EmittedEvents()
}

// RecordedDebugMessages returns the debug messages recorded so far.
func (e *Engine) RecordedDebugMessages() []string {
	return e.debugInfo.RecordedDebugMessages()
}

// EntranceCount returns the number of currently open calls into callee.
func (e *Engine) EntranceCount(callee types.AccountId) uint32 {
	return e.contracts.EntranceCount(callee)
}

// AllowsReentry reports whether callee's reentry is currently permitted.
func (e *Engine) AllowsReentry(callee types.AccountId) bool {
	return e.contracts.AllowsReentry(callee)
}

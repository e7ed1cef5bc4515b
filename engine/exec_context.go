package engine

import (
	"github.com/Brushfam/ink/common/check"
	"github.com/Brushfam/ink/internal/types"
)

// ExecContext is the mutable snapshot of the currently executing call. The
// engine is the only writer; fields are overwritten before each simulated
// call, never appended to.
type ExecContext struct {
	caller *types.AccountId
	callee *types.AccountId

	ValueTransferred types.Balance
	Input            []byte
	Output           []byte
	BlockNumber      types.BlockNumber
	BlockTimestamp   types.BlockTimestamp
}

func NewExecContext() *ExecContext {
	return &ExecContext{}
}

// Caller returns the caller of the current call. Reading it before any call
// has been staged is a fatal precondition violation.
func (c *ExecContext) Caller() types.AccountId {
	check.PanicIfNotf(c.caller != nil, "no caller has been set")
	return *c.caller
}

// Callee returns the account under execution. Reading it before any call has
// been staged is a fatal precondition violation.
func (c *ExecContext) Callee() types.AccountId {
	check.PanicIfNotf(c.callee != nil, "no callee has been set")
	return *c.callee
}

func (c *ExecContext) HasCaller() bool {
	return c.caller != nil
}

func (c *ExecContext) HasCallee() bool {
	return c.callee != nil
}

func (c *ExecContext) SetCaller(caller types.AccountId) {
	c.caller = &caller
}

func (c *ExecContext) SetCallee(callee types.AccountId) {
	c.callee = &callee
}

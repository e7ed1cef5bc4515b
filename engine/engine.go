// Package engine implements a host-side execution environment emulating the
// runtime a compiled smart contract observes when it invokes host functions:
// per-account balances and storage, value transfer, event emission,
// reentrancy accounting and chain-extension dispatch. It reproduces the host
// interface bit-exactly (error discriminants, call-flag semantics,
// termination behavior) so contract code can run and be tested without a
// live chain node.
//
// The engine is single-threaded and synchronous. Reentrancy means logical
// nested invocation within one call stack, tracked through the registry's
// entrance counters, not concurrent access.
package engine

import (
	"fmt"

	"github.com/Brushfam/ink/common/check"
	"github.com/Brushfam/ink/common/logging"
	"github.com/Brushfam/ink/internal/scale"
	"github.com/Brushfam/ink/internal/types"
)

// Engine composes the simulated host: the balance/storage database, the
// execution context of the current call, the chain specification, the
// contract registry and the chain-extension handler. One engine instance
// owns all of that state; recreate the engine to reset it.
type Engine struct {
	// Database is the environment database.
	Database *Database
	// ExecContext is the current execution context.
	ExecContext *ExecContext
	// ChainSpec is the simulated chain specification.
	ChainSpec *ChainSpec

	debugInfo       *DebugInfo
	chainExtensions *ChainExtensionHandler
	contracts       *ContractRegistry
	logger          logging.Logger
}

// New creates a fresh engine with default chain parameters and empty state.
func New() *Engine {
	return &Engine{
		Database:        NewDatabase(),
		ExecContext:     NewExecContext(),
		ChainSpec:       DefaultChainSpec(),
		debugInfo:       NewDebugInfo(),
		chainExtensions: NewChainExtensionHandler(),
		contracts:       NewContractRegistry(),
		logger:          logging.NewLogger("engine"),
	}
}

// ChainExtensions exposes the chain-extension handler for registration.
func (e *Engine) ChainExtensions() *ChainExtensionHandler {
	return e.chainExtensions
}

// Transfer moves value from the executing contract to the destination
// account. The amount is a 16-byte little-endian u128; a transfer of zero is
// valid and the destination account does not have to exist. Returns
// TransferFailed if the amount cannot be decoded or the payer has no balance
// record. Both balances are resolved before either is mutated.
func (e *Engine) Transfer(dest []byte, amountEncoded []byte) error {
	amount, err := types.DecodeBalance(amountEncoded)
	if err != nil {
		return types.ErrTransferFailed
	}

	destId := types.BytesToAccountId(dest)
	destOld, _ := e.Database.GetBalance(destId)

	contract := e.ExecContext.Callee()
	contractOld, ok := e.Database.GetBalance(contract)
	if !ok {
		return types.ErrTransferFailed
	}

	newContractBalance := contractOld.Sub(amount)
	newDestBalance := destOld.Add(amount)

	e.Database.SetBalance(contract, newContractBalance)
	e.Database.SetBalance(destId, newDestBalance)

	e.logger.Trace().
		Stringer(logging.FieldCallee, contract).
		Stringer(logging.FieldAccount, destId).
		Stringer(logging.FieldAmount, amount).
		Msg("transferred value")
	return nil
}

// DepositEvent records an event identified by the supplied topics and data.
// The first byte of topicsEncoded carries the compact-encoded topic count;
// the remaining bytes are split into that many equal-sized topics. The topic
// count is host-trusted: a malformed encoding is a fatal decode error.
func (e *Engine) DepositEvent(topicsEncoded []byte, data []byte) {
	check.PanicIfNotf(len(topicsEncoded) > 0, "decoding number of topics failed: empty input")
	topicsCount, _, err := scale.DecodeCompactU32(topicsEncoded[:1])
	check.LogAndPanicIfErrf(err, e.logger, "decoding number of topics failed")

	var topics [][]byte
	if topicsCount > 0 {
		rest := topicsEncoded[1:]
		bytesPerTopic := len(rest) / int(topicsCount)
		check.PanicIfNotf(bytesPerTopic > 0 && len(rest)%bytesPerTopic == 0,
			"topic payload of %d bytes cannot be split into %d topics", len(rest), topicsCount)
		for i := 0; i < len(rest); i += bytesPerTopic {
			topic := make([]byte, bytesPerTopic)
			copy(topic, rest[i:i+bytesPerTopic])
			topics = append(topics, topic)
		}
		check.PanicIfNotf(len(topics) == int(topicsCount),
			"expected %d topics, split into %d", topicsCount, len(topics))
	}

	eventData := make([]byte, len(data))
	copy(eventData, data)
	e.debugInfo.RecordEvent(EmittedEvent{Topics: topics, Data: eventData})
}

// SetStorage writes the encoded value into the executing contract's storage
// at the given key. Returns the size of the previously stored value at the
// key, if any.
func (e *Engine) SetStorage(key []byte, encodedValue []byte) (uint32, bool) {
	callee := e.ExecContext.Callee()

	e.debugInfo.IncWrites(callee)
	e.debugInfo.RecordCellForAccount(callee, key)

	previous, existed := e.Database.InsertIntoContractStorage(callee, key, encodedValue)
	if !existed {
		return 0, false
	}
	return uint32(len(previous)), true
}

// GetStorage copies the value stored at key into output. Returns KeyNotFound
// if there is none.
func (e *Engine) GetStorage(key []byte, output []byte) error {
	callee := e.ExecContext.Callee()

	e.debugInfo.IncReads(callee)
	value, ok := e.Database.GetFromContractStorage(callee, key)
	if !ok {
		return types.ErrKeyNotFound
	}
	setOutput(output, value)
	return nil
}

// TakeStorage removes the value stored at key and copies it into output.
// Returns KeyNotFound if there is none.
func (e *Engine) TakeStorage(key []byte, output []byte) error {
	callee := e.ExecContext.Callee()

	e.debugInfo.IncWrites(callee)
	value, ok := e.Database.RemoveContractStorage(callee, key)
	if !ok {
		return types.ErrKeyNotFound
	}
	setOutput(output, value)
	return nil
}

// ContainsStorage returns the size of the value stored at key, if any,
// without copying it.
func (e *Engine) ContainsStorage(key []byte) (uint32, bool) {
	callee := e.ExecContext.Callee()

	e.debugInfo.IncReads(callee)
	value, ok := e.Database.GetFromContractStorage(callee, key)
	if !ok {
		return 0, false
	}
	return uint32(len(value)), true
}

// ClearStorage removes the value stored at key without returning it. Returns
// the size of the previously stored value, if any.
func (e *Engine) ClearStorage(key []byte) (uint32, bool) {
	callee := e.ExecContext.Callee()

	e.debugInfo.IncWrites(callee)
	e.debugInfo.RemoveCellForAccount(callee, key)
	value, ok := e.Database.RemoveContractStorage(callee, key)
	if !ok {
		return 0, false
	}
	return uint32(len(value)), true
}

// Termination is the outcome of a Terminate call, carried back to the
// harness instead of a non-local unwind. Once produced, no further host
// operations for that call may execute.
type Termination struct {
	Beneficiary types.AccountId
	Balance     types.Balance
}

// Encode returns the SCALE form of the termination payload: the transferred
// balance followed by the beneficiary as a byte vector.
func (t Termination) Encode() []byte {
	out := t.Balance.Encode()
	return append(out, scale.EncodeBytes(t.Beneficiary.Bytes())...)
}

// Terminate removes the executing contract and transfers its remaining
// balance to the beneficiary. Termination is a defined end-of-execution
// event, not an error: the outcome is returned as a value the caller must
// handle explicitly. A failure to read the balance or to transfer it is
// fatal, termination is unrecoverable once invoked.
func (e *Engine) Terminate(beneficiary []byte) Termination {
	contract := e.ExecContext.Callee()
	all, ok := e.Database.GetBalance(contract)
	check.PanicIfNotf(ok, "could not get balance of terminating contract %s", contract)

	err := e.Transfer(beneficiary, all.Encode())
	check.LogAndPanicIfErrf(err, e.logger, "terminating transfer did not work")

	termination := Termination{
		Beneficiary: types.BytesToAccountId(beneficiary),
		Balance:     all,
	}
	e.logger.Debug().
		Stringer(logging.FieldCallee, contract).
		Stringer(logging.FieldBeneficiary, termination.Beneficiary).
		Stringer(logging.FieldBalance, all).
		Msg("contract terminated")
	return termination
}

// Caller copies the address of the caller into output.
func (e *Engine) Caller(output []byte) {
	setOutput(output, e.ExecContext.Caller().Bytes())
}

// Address copies the address of the executing contract into output.
func (e *Engine) Address(output []byte) {
	setOutput(output, e.ExecContext.Callee().Bytes())
}

// Balance copies the encoded balance of the executing contract into output.
// The executing contract must have a balance record.
func (e *Engine) Balance(output []byte) {
	contract := e.ExecContext.Callee()
	balance, ok := e.Database.GetBalance(contract)
	check.PanicIfNotf(ok, "currently executing contract %s must exist", contract)
	setOutput(output, balance.Encode())
}

// ValueTransferred copies the encoded value attached to the current call
// into output.
func (e *Engine) ValueTransferred(output []byte) {
	setOutput(output, e.ExecContext.ValueTransferred.Encode())
}

// BlockNumber copies the encoded current block number into output.
func (e *Engine) BlockNumber(output []byte) {
	setOutput(output, e.ExecContext.BlockNumber.Encode())
}

// BlockTimestamp copies the encoded timestamp of the current block into
// output.
func (e *Engine) BlockTimestamp(output []byte) {
	setOutput(output, e.ExecContext.BlockTimestamp.Encode())
}

// MinimumBalance copies the encoded minimum balance (the chain's existential
// deposit) into output.
func (e *Engine) MinimumBalance(output []byte) {
	setOutput(output, e.ChainSpec.MinimumBalance.Encode())
}

// DebugMessage records the message and appends it to standard output.
func (e *Engine) DebugMessage(message string) {
	e.debugInfo.RecordDebugMessage(message)
	fmt.Print(message)
}

// WeightToFee computes the fee for the given amount of gas, saturating
// instead of overflowing, and copies the encoded result into output.
func (e *Engine) WeightToFee(gas uint64, output []byte) {
	fee := e.ChainSpec.GasPrice.SaturatingMul64(gas)
	setOutput(output, fee.Encode())
}

// GasLeft is not supported by the off-chain environment.
func (e *Engine) GasLeft(_ []byte) {
	panic("off-chain environment does not yet support `gas_left`")
}

// Instantiate is not supported by the off-chain environment.
func (e *Engine) Instantiate(
	_ []byte, // code hash
	_ uint64, // gas limit
	_ []byte, // endowment
	_ []byte, // input
	_ []byte, // out: address
	_ []byte, // out: return value
	_ []byte, // salt
) error {
	panic("off-chain environment does not yet support `instantiate`")
}

// Call is not supported by the off-chain environment.
func (e *Engine) Call(
	_ []byte, // callee
	_ uint64, // gas limit
	_ []byte, // value
	_ []byte, // input
	_ []byte, // out: return value
) error {
	panic("off-chain environment does not yet support `call`")
}

// CallChainExtension dispatches the chain extension method registered at
// funcID with the given input and copies the SCALE-encoded
// (status code, output) pair into output. Dispatching an unregistered
// func id is fatal.
func (e *Engine) CallChainExtension(funcID uint32, input []byte, output []byte) {
	encodedInput := scale.EncodeBytes(input)
	statusCode, payload, err := e.chainExtensions.Eval(funcID, encodedInput)
	check.LogAndPanicIfErrf(err, e.logger, "unexpected missing chain extension method %d", funcID)

	result := scale.EncodeUint32(statusCode)
	result = append(result, scale.EncodeBytes(payload)...)
	setOutput(output, result)

	e.logger.Trace().
		Uint32(logging.FieldFuncId, funcID).
		Uint32(logging.FieldStatusCode, statusCode).
		Msg("chain extension dispatched")
}

// RegisterContract registers the contract's entry points under its code hash
// for local execution, returning any previously registered entry.
func (e *Engine) RegisterContract(hash []byte, deploy, call func()) (ContractEntryPoint, bool) {
	return e.contracts.RegisterContract(hash, ContractEntryPoint{Deploy: deploy, Call: call})
}

// setOutput copies data into the caller-supplied output buffer. A result
// larger than the buffer is a fatal contract violation.
func setOutput(output []byte, data []byte) {
	check.PanicIfNotf(len(data) <= len(output),
		"the output buffer is too small! the decoded storage is of size %d bytes, "+
			"but the output buffer has only room for %d.",
		len(data), len(output))
	copy(output, data)
}

package engine

import (
	"github.com/Brushfam/ink/internal/types"
)

// ContractEntryPoint is the pair of function handles a locally registered
// contract exposes.
type ContractEntryPoint struct {
	Deploy func()
	Call   func()
}

// ContractRegistry tracks deployed contract entry points together with the
// reentrancy bookkeeping: how many calls into each callee are currently open
// and which callers have granted reentry.
//
// Both maps are sparse. An absent entrance count means zero; reentry
// permission is represented by presence alone, entries are removed rather
// than set to false.
type ContractRegistry struct {
	entranceCount map[types.AccountId]uint32
	allowReentry  map[types.AccountId]bool
	deployed      map[string]ContractEntryPoint
}

func NewContractRegistry() *ContractRegistry {
	return &ContractRegistry{
		entranceCount: make(map[types.AccountId]uint32),
		allowReentry:  make(map[types.AccountId]bool),
		deployed:      make(map[string]ContractEntryPoint),
	}
}

// EntranceCount returns the number of currently open calls into callee.
func (r *ContractRegistry) EntranceCount(callee types.AccountId) uint32 {
	return r.entranceCount[callee]
}

// AllowsReentry reports whether callee's reentry is currently permitted.
func (r *ContractRegistry) AllowsReentry(callee types.AccountId) bool {
	return r.allowReentry[callee]
}

// SetAllowReentry grants or revokes reentry permission for the account.
// Revocation removes the entry, keeping the map minimal.
func (r *ContractRegistry) SetAllowReentry(account types.AccountId, allow bool) {
	if allow {
		r.allowReentry[account] = true
	} else {
		delete(r.allowReentry, account)
	}
}

// RemoveAllowReentry drops the account's reentry permission entry.
func (r *ContractRegistry) RemoveAllowReentry(account types.AccountId) {
	delete(r.allowReentry, account)
}

// IncreaseEntranceCount opens a call into callee.
func (r *ContractRegistry) IncreaseEntranceCount(callee types.AccountId) error {
	r.entranceCount[callee]++
	return nil
}

// DecreaseEntranceCount closes a call into callee. Decrementing a zero count
// indicates broken increment/decrement pairing and is surfaced as
// CalleeTrapped rather than wrapping.
func (r *ContractRegistry) DecreaseEntranceCount(callee types.AccountId) error {
	count, ok := r.entranceCount[callee]
	if !ok || count == 0 {
		return types.ErrCalleeTrapped
	}
	r.entranceCount[callee] = count - 1
	return nil
}

// RegisterContract inserts the entry points under the given code hash and
// returns any previously registered entry.
func (r *ContractRegistry) RegisterContract(hash []byte, entry ContractEntryPoint) (ContractEntryPoint, bool) {
	previous, existed := r.deployed[string(hash)]
	r.deployed[string(hash)] = entry
	return previous, existed
}

// DeployedContract returns the entry points registered under the code hash,
// if any.
func (r *ContractRegistry) DeployedContract(hash []byte) (ContractEntryPoint, bool) {
	entry, ok := r.deployed[string(hash)]
	return entry, ok
}

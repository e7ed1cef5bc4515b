package engine

import (
	"github.com/Brushfam/ink/internal/types"
)

// Database is the in-memory ledger backing a single engine instance: account
// balances plus one isolated key/value namespace per contract. Entries live
// until explicitly removed; there is no eviction.
type Database struct {
	balances        map[types.AccountId]types.Balance
	contractStorage map[types.AccountId]map[string][]byte
}

func NewDatabase() *Database {
	return &Database{
		balances:        make(map[types.AccountId]types.Balance),
		contractStorage: make(map[types.AccountId]map[string][]byte),
	}
}

// GetBalance returns the balance of the account and whether a balance record
// exists. An account that has never received funds has no record.
func (db *Database) GetBalance(account types.AccountId) (types.Balance, bool) {
	balance, ok := db.balances[account]
	return balance, ok
}

// SetBalance overwrites the balance of the account unconditionally, creating
// the record if absent.
func (db *Database) SetBalance(account types.AccountId, balance types.Balance) {
	db.balances[account] = balance
}

// InsertIntoContractStorage writes value under the account's namespace and
// returns the previously stored value, if any.
func (db *Database) InsertIntoContractStorage(account types.AccountId, key, value []byte) ([]byte, bool) {
	storage, ok := db.contractStorage[account]
	if !ok {
		storage = make(map[string][]byte)
		db.contractStorage[account] = storage
	}
	previous, existed := storage[string(key)]
	stored := make([]byte, len(value))
	copy(stored, value)
	storage[string(key)] = stored
	return previous, existed
}

// GetFromContractStorage returns the value stored under the account's
// namespace at key, if any.
func (db *Database) GetFromContractStorage(account types.AccountId, key []byte) ([]byte, bool) {
	storage, ok := db.contractStorage[account]
	if !ok {
		return nil, false
	}
	value, ok := storage[string(key)]
	return value, ok
}

// RemoveContractStorage removes the entry at key from the account's
// namespace and returns the removed value, if any.
func (db *Database) RemoveContractStorage(account types.AccountId, key []byte) ([]byte, bool) {
	storage, ok := db.contractStorage[account]
	if !ok {
		return nil, false
	}
	value, ok := storage[string(key)]
	if ok {
		delete(storage, string(key))
	}
	return value, ok
}

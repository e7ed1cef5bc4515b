package engine

import (
	"github.com/Brushfam/ink/internal/types"
)

// EmittedEvent is a single event deposited by a contract.
type EmittedEvent struct {
	Topics [][]byte
	Data   []byte
}

// DebugInfo records the engine interactions a real chain would not expose:
// per-account read/write counters, emitted events, debug messages and the
// set of storage cells a contract has written. It is append-only during a
// run; a fresh engine resets it.
type DebugInfo struct {
	reads         map[types.AccountId]int
	writes        map[types.AccountId]int
	events        []EmittedEvent
	debugMessages []string
	touchedCells  map[types.AccountId]map[string]struct{}
}

func NewDebugInfo() *DebugInfo {
	return &DebugInfo{
		reads:        make(map[types.AccountId]int),
		writes:       make(map[types.AccountId]int),
		touchedCells: make(map[types.AccountId]map[string]struct{}),
	}
}

func (d *DebugInfo) IncReads(account types.AccountId) {
	d.reads[account]++
}

func (d *DebugInfo) IncWrites(account types.AccountId) {
	d.writes[account]++
}

// CountReads returns how many times the account's storage was read.
func (d *DebugInfo) CountReads(account types.AccountId) int {
	return d.reads[account]
}

// CountWrites returns how many times the account's storage was written.
func (d *DebugInfo) CountWrites(account types.AccountId) int {
	return d.writes[account]
}

func (d *DebugInfo) RecordEvent(event EmittedEvent) {
	d.events = append(d.events, event)
}

// EmittedEvents returns all events recorded so far, in emission order.
func (d *DebugInfo) EmittedEvents() []EmittedEvent {
	return d.events
}

func (d *DebugInfo) RecordDebugMessage(message string) {
	d.debugMessages = append(d.debugMessages, message)
}

// RecordedDebugMessages returns all debug messages recorded so far.
func (d *DebugInfo) RecordedDebugMessages() []string {
	return d.debugMessages
}

// RecordCellForAccount marks the storage cell at key as written by account.
func (d *DebugInfo) RecordCellForAccount(account types.AccountId, key []byte) {
	cells, ok := d.touchedCells[account]
	if !ok {
		cells = make(map[string]struct{})
		d.touchedCells[account] = cells
	}
	cells[string(key)] = struct{}{}
}

// RemoveCellForAccount unmarks the storage cell at key and reports whether
// it was marked.
func (d *DebugInfo) RemoveCellForAccount(account types.AccountId, key []byte) bool {
	cells, ok := d.touchedCells[account]
	if !ok {
		return false
	}
	_, existed := cells[string(key)]
	delete(cells, string(key))
	return existed
}

// CountUsedStorageCells returns the number of cells currently marked as
// written by account.
func (d *DebugInfo) CountUsedStorageCells(account types.AccountId) int {
	return len(d.touchedCells[account])
}

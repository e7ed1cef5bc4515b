package engine

import (
	"github.com/Brushfam/ink/internal/types"
)

// ChainSpec holds the static parameters of the simulated chain. The values
// are read-only during execution; a test harness may override them before a
// run.
type ChainSpec struct {
	// GasPrice is the current gas price.
	GasPrice types.Balance

	// MinimumBalance is the minimum value an account of the chain must have
	// (i.e. the chain's existential deposit).
	MinimumBalance types.Balance

	// BlockTime is the targeted block time.
	BlockTime types.BlockTimestamp
}

// DefaultChainSpec returns the default simulated chain parameters. There is
// no particular reason behind choosing them this way.
func DefaultChainSpec() *ChainSpec {
	return &ChainSpec{
		GasPrice:       types.NewBalanceFromUint64(100),
		MinimumBalance: types.NewBalanceFromUint64(1_000_000),
		BlockTime:      types.BlockTimestamp(6),
	}
}

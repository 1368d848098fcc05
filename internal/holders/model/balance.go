package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// BalanceLedger maps an account to its signed net balance in base units.
// Negative values are allowed while folding a partial history.
type BalanceLedger map[common.Address]*big.Int

// Balance returns a copy of the account balance, zero when unknown.
func (l BalanceLedger) Balance(account common.Address) *big.Int {
	v, ok := l[account]
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// HolderBalance is a single ranked entry.
type HolderBalance struct {
	Account common.Address
	Raw     *big.Int
	Balance float64
}

// HolderRanking is ordered by balance descending.
type HolderRanking []HolderBalance

// BalanceResult is the outcome of one balance lookup inside a batch.
type BalanceResult struct {
	Account common.Address
	Balance float64
	Err     error
}

// HolderActivity pairs a ranked holder with its last observed transfer.
type HolderActivity struct {
	HolderBalance
	Activity ActivityRecord
}

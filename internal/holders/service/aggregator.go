package service

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
)

// Aggregate folds transfer events into net balances. The zero address is the
// mint/burn marker and is never credited or debited. Events are not mutated.
func Aggregate(events []model.TransferEvent) model.BalanceLedger {
	ledger := make(model.BalanceLedger)
	for _, ev := range events {
		if ev.Amount == nil {
			continue
		}
		if ev.From != model.ZeroAddress {
			entry(ledger, ev.From).Sub(ledger[ev.From], ev.Amount)
		}
		if ev.To != model.ZeroAddress {
			entry(ledger, ev.To).Add(ledger[ev.To], ev.Amount)
		}
	}
	return ledger
}

func entry(ledger model.BalanceLedger, account common.Address) *big.Int {
	v, ok := ledger[account]
	if !ok {
		v = new(big.Int)
		ledger[account] = v
	}
	return v
}

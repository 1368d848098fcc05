package service

import (
	"bytes"
	"math/big"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
)

// Rank returns the n largest positive balances converted to display units.
// Ties are broken by account address ascending so the output is stable.
func Rank(ledger model.BalanceLedger, n int, decimals uint8) model.HolderRanking {
	if n <= 0 {
		return model.HolderRanking{}
	}

	holders := make(model.HolderRanking, 0, len(ledger))
	for account, raw := range ledger {
		if raw == nil || raw.Sign() <= 0 {
			continue
		}
		holders = append(holders, model.HolderBalance{
			Account: account,
			Raw:     new(big.Int).Set(raw),
			Balance: ToDisplay(raw, decimals),
		})
	}

	slices.SortFunc(holders, func(a, b model.HolderBalance) int {
		if c := b.Raw.Cmp(a.Raw); c != 0 {
			return c
		}
		return bytes.Compare(a.Account[:], b.Account[:])
	})

	if len(holders) > n {
		holders = holders[:n]
	}
	return holders
}

// ToDisplay converts base units into token units using the token decimals.
func ToDisplay(raw *big.Int, decimals uint8) float64 {
	if raw == nil {
		return 0
	}
	return decimal.NewFromBigInt(raw, -int32(decimals)).InexactFloat64()
}

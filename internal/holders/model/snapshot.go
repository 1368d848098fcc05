package model

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// HolderSnapshot is one ranked holder persisted after a scan.
type HolderSnapshot struct {
	Network        Network
	Token          common.Address
	Symbol         string
	Height         uint64
	Rank           uint32
	Account        common.Address
	Raw            *big.Int
	Balance        float64
	ActivityStatus ActivityStatus
	LastActivity   time.Time
	ScannedAt      time.Time
}

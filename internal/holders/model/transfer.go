// Package model defines domain models for token holder reconstruction.
package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ZeroAddress marks the mint source and the burn destination of a transfer.
var ZeroAddress = common.Address{}

// TransferEvent is a decoded token Transfer log.
type TransferEvent struct {
	From        common.Address
	To          common.Address
	Amount      *big.Int
	BlockNumber uint64
	LogIndex    uint
	TxHash      common.Hash
}

// IsMint reports whether the transfer created tokens.
func (e TransferEvent) IsMint() bool {
	return e.From == ZeroAddress
}

// IsBurn reports whether the transfer destroyed tokens.
func (e TransferEvent) IsBurn() bool {
	return e.To == ZeroAddress
}

// TransferRole selects which side of a transfer an account is matched on.
type TransferRole int

const (
	// Sender matches the indexed from topic.
	Sender TransferRole = iota + 1
	// Receiver matches the indexed to topic.
	Receiver
)

func (r TransferRole) String() string {
	switch r {
	case Sender:
		return "sender"
	case Receiver:
		return "receiver"
	default:
		return "unknown"
	}
}

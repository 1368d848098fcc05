package evm

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
)

// ErrMalformedTransfer marks a log that is not a well-formed ERC-20 Transfer.
var ErrMalformedTransfer = errors.New("malformed transfer log")

const transferTopicCount = 3

// TransferDecoder turns raw Transfer logs into transfer events.
type TransferDecoder struct{}

// NewTransferDecoder returns a TransferDecoder.
func NewTransferDecoder() TransferDecoder {
	return TransferDecoder{}
}

// Decode extracts sender, receiver and amount from a Transfer log.
func (TransferDecoder) Decode(l types.Log) (model.TransferEvent, error) {
	if l.Removed {
		return model.TransferEvent{}, fmt.Errorf("%w: log %d in tx %s was removed", ErrMalformedTransfer, l.Index, l.TxHash)
	}
	if len(l.Topics) != transferTopicCount {
		return model.TransferEvent{}, fmt.Errorf("%w: expected %d topics, got %d", ErrMalformedTransfer, transferTopicCount, len(l.Topics))
	}
	if l.Topics[0] != TransferTopic {
		return model.TransferEvent{}, fmt.Errorf("%w: unexpected event signature %s", ErrMalformedTransfer, l.Topics[0])
	}
	if !isAddressTopic(l.Topics[1]) || !isAddressTopic(l.Topics[2]) {
		return model.TransferEvent{}, fmt.Errorf("%w: indexed address has non-zero padding", ErrMalformedTransfer)
	}

	if len(l.Data) != common.HashLength {
		return model.TransferEvent{}, fmt.Errorf("%w: expected %d data bytes, got %d", ErrMalformedTransfer, common.HashLength, len(l.Data))
	}

	values, err := erc20ABI.Unpack(transferEventName, l.Data)
	if err != nil {
		return model.TransferEvent{}, fmt.Errorf("%w: unpack value: %v", ErrMalformedTransfer, err)
	}
	if len(values) != 1 {
		return model.TransferEvent{}, fmt.Errorf("%w: expected 1 value, got %d", ErrMalformedTransfer, len(values))
	}
	amount, ok := values[0].(*big.Int)
	if !ok {
		return model.TransferEvent{}, fmt.Errorf("%w: value has type %T", ErrMalformedTransfer, values[0])
	}

	return model.TransferEvent{
		From:        common.BytesToAddress(l.Topics[1].Bytes()),
		To:          common.BytesToAddress(l.Topics[2].Bytes()),
		Amount:      amount,
		BlockNumber: l.BlockNumber,
		LogIndex:    l.Index,
		TxHash:      l.TxHash,
	}, nil
}

func isAddressTopic(topic common.Hash) bool {
	for _, b := range topic[:common.HashLength-common.AddressLength] {
		if b != 0 {
			return false
		}
	}
	return true
}

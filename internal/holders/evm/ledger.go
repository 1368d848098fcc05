package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
	"github.com/goodnatureofminers/blockinsight7000-holders/pkg/safe"
)

// Ledger reads Transfer logs, blocks and ERC-20 state for one token contract.
type Ledger struct {
	rpc   EthClient
	token common.Address
}

// NewLedger builds a Ledger for the token at the given address.
func NewLedger(rpc EthClient, token common.Address) (*Ledger, error) {
	if rpc == nil {
		return nil, errors.New("eth client is required")
	}
	if token == model.ZeroAddress {
		return nil, errors.New("token address is required")
	}
	return &Ledger{rpc: rpc, token: token}, nil
}

// Address returns the token contract address.
func (l *Ledger) Address() common.Address {
	return l.token
}

// BlockNumber returns the current chain height.
func (l *Ledger) BlockNumber(ctx context.Context) (uint64, error) {
	height, err := l.rpc.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return height, nil
}

// TransferLogs returns every Transfer log of the token inside the range.
func (l *Ledger) TransferLogs(ctx context.Context, r model.BlockRange) ([]types.Log, error) {
	q := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(r.From),
		ToBlock:   new(big.Int).SetUint64(r.To),
		Addresses: []common.Address{l.token},
		Topics:    [][]common.Hash{{TransferTopic}},
	}
	return l.rpc.FilterLogs(ctx, q)
}

// LatestTransfer returns the most recent Transfer log in which account plays
// the given role, or nil when there is none. The query spans the whole history.
func (l *Ledger) LatestTransfer(ctx context.Context, account common.Address, role model.TransferRole) (*types.Log, error) {
	topics := [][]common.Hash{{TransferTopic}}
	switch role {
	case model.Sender:
		topics = append(topics, []common.Hash{AccountTopic(account)})
	case model.Receiver:
		topics = append(topics, nil, []common.Hash{AccountTopic(account)})
	default:
		return nil, fmt.Errorf("unsupported transfer role %d", role)
	}

	logs, err := l.rpc.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: big.NewInt(0),
		Addresses: []common.Address{l.token},
		Topics:    topics,
	})
	if err != nil {
		return nil, fmt.Errorf("get %s logs for %s: %w", role, account, err)
	}
	return latestLog(logs), nil
}

// BlockTimestamp returns the UTC timestamp of the block.
func (l *Ledger) BlockTimestamp(ctx context.Context, number uint64) (time.Time, error) {
	header, err := l.rpc.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		return time.Time{}, fmt.Errorf("get block %d: %w", number, err)
	}
	if header == nil {
		return time.Time{}, fmt.Errorf("block %d not found", number)
	}
	ts, err := safe.Int64(header.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("block %d timestamp: %w", number, err)
	}
	return time.Unix(ts, 0).UTC(), nil
}

// Decimals reads the token decimals.
func (l *Ledger) Decimals(ctx context.Context) (uint8, error) {
	v, err := l.call(ctx, "decimals")
	if err != nil {
		return 0, err
	}
	decimals, ok := v.(uint8)
	if !ok {
		return 0, fmt.Errorf("decimals: unexpected type %T", v)
	}
	return decimals, nil
}

// Symbol reads the token symbol.
func (l *Ledger) Symbol(ctx context.Context) (string, error) {
	return l.callString(ctx, "symbol")
}

// Name reads the token name.
func (l *Ledger) Name(ctx context.Context) (string, error) {
	return l.callString(ctx, "name")
}

// TotalSupply reads the total supply in base units.
func (l *Ledger) TotalSupply(ctx context.Context) (*big.Int, error) {
	return l.callBig(ctx, "totalSupply")
}

// BalanceOf reads the account balance in base units.
func (l *Ledger) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	return l.callBig(ctx, "balanceOf", account)
}

func (l *Ledger) callString(ctx context.Context, method string) (string, error) {
	v, err := l.call(ctx, method)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: unexpected type %T", method, v)
	}
	return s, nil
}

func (l *Ledger) callBig(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	v, err := l.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	n, ok := v.(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected type %T", method, v)
	}
	return n, nil
}

func (l *Ledger) call(ctx context.Context, method string, args ...interface{}) (interface{}, error) {
	input, err := erc20ABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	token := l.token
	out, err := l.rpc.CallContract(ctx, ethereum.CallMsg{To: &token, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	values, err := erc20ABI.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("%s: expected 1 value, got %d", method, len(values))
	}
	return values[0], nil
}

// latestLog picks the log with the highest block number, then log index.
func latestLog(logs []types.Log) *types.Log {
	if len(logs) == 0 {
		return nil
	}
	latest := logs[0]
	for _, l := range logs[1:] {
		if l.BlockNumber > latest.BlockNumber || (l.BlockNumber == latest.BlockNumber && l.Index > latest.Index) {
			latest = l
		}
	}
	return &latest
}

package evm

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/ratelimit"
)

// ObservedClient wraps an EthClient with metrics and a shared rate limit.
type ObservedClient struct {
	client     EthClient
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewObservedClient constructs an instrumented client. A nil limiter disables rate limiting.
func NewObservedClient(client EthClient, rpcMetrics RPCMetrics, limiter ratelimit.Limiter) *ObservedClient {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

// BlockNumber returns the latest block number.
func (r *ObservedClient) BlockNumber(ctx context.Context) (height uint64, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("eth_blockNumber", err, started)
	}()
	return r.client.BlockNumber(ctx)
}

// FilterLogs executes an eth_getLogs query.
func (r *ObservedClient) FilterLogs(ctx context.Context, q ethereum.FilterQuery) (logs []types.Log, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("eth_getLogs", err, started)
	}()
	return r.client.FilterLogs(ctx, q)
}

// HeaderByNumber returns a block header; nil number means latest.
func (r *ObservedClient) HeaderByNumber(ctx context.Context, number *big.Int) (header *types.Header, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("eth_getBlockByNumber", err, started)
	}()
	return r.client.HeaderByNumber(ctx, number)
}

// CallContract executes a read-only eth_call.
func (r *ObservedClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) (out []byte, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("eth_call", err, started)
	}()
	return r.client.CallContract(ctx, msg, blockNumber)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
)

type activityResolver struct {
	ledger  LedgerService
	metrics ActivityMetrics
	logger  *zap.Logger
	timeout time.Duration
}

// Resolve finds the latest transfer the account sent or received. Failures
// are reported through the record status and never returned.
func (r *activityResolver) Resolve(ctx context.Context, account common.Address) model.ActivityRecord {
	started := time.Now()
	record, err := r.resolve(ctx, account)
	if err != nil {
		r.logger.Warn("activity lookup failed", zap.Stringer("account", account), zap.Error(err))
	}
	r.metrics.ObserveLookup(record.Status, started)
	return record
}

func (r *activityResolver) resolve(ctx context.Context, account common.Address) (model.ActivityRecord, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	record := model.ActivityRecord{Account: account, Status: model.ActivityError}

	sent, sentErr := r.ledger.LatestTransfer(ctx, account, model.Sender)
	received, receivedErr := r.ledger.LatestTransfer(ctx, account, model.Receiver)

	latest := laterLog(sent, received)
	if latest == nil {
		if err := errors.Join(sentErr, receivedErr); err != nil {
			// an empty answer next to a failed one proves nothing about the account
			return record, fmt.Errorf("%w: %w", ErrActivityLookup, err)
		}
		record.Status = model.ActivityNone
		return record, nil
	}
	if sentErr != nil || receivedErr != nil {
		r.logger.Debug("activity resolved from one side",
			zap.Stringer("account", account),
			zap.NamedError("sender_error", sentErr),
			zap.NamedError("receiver_error", receivedErr),
		)
	}

	ts, err := r.ledger.BlockTimestamp(ctx, latest.BlockNumber)
	if err != nil {
		return record, fmt.Errorf("%w: %w", ErrActivityLookup, err)
	}

	record.LastBlock = latest.BlockNumber
	record.Timestamp = ts.UTC()
	record.Status = model.ActivityFound
	return record, nil
}

func laterLog(a, b *types.Log) *types.Log {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.BlockNumber > a.BlockNumber:
		return b
	case b.BlockNumber == a.BlockNumber && b.Index > a.Index:
		return b
	default:
		return a
	}
}

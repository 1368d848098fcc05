// Package service reconstructs token holder balances from Transfer logs.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
)

// ChunkHandler receives the raw logs of one fetched chunk.
type ChunkHandler func(ctx context.Context, r model.BlockRange, logs []types.Log) error

type logFetcher struct {
	ledger       LedgerService
	metrics      ScanMetrics
	logger       *zap.Logger
	sleep        func(context.Context, time.Duration) error
	chunkTimeout time.Duration
	maxAttempts  int
	backoffUnit  time.Duration
}

// Fetch walks the window chunk by chunk. Chunks that cannot be fetched are
// reported as gaps and the walk moves on; only ctx cancellation or a handler
// error stops it early.
func (f *logFetcher) Fetch(ctx context.Context, window model.ScanWindow, handle ChunkHandler) (model.ScanReport, error) {
	report := model.ScanReport{Window: window}
	chunks := window.Chunks()
	total := window.ToBlock - window.FromBlock + 1

	var (
		processed uint64
		logsSeen  int
	)
	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		logs, attempts, err := f.fetchChunk(ctx, chunk)
		if attempts > 1 {
			report.Retries += attempts - 1
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return report, ctxErr
			}
			report.Gaps = append(report.Gaps, model.Gap{BlockRange: chunk, Attempts: attempts, Err: err})
			f.metrics.ObserveGap(chunk)
			f.logger.Warn("chunk abandoned",
				zap.Uint64("from_block", chunk.From),
				zap.Uint64("to_block", chunk.To),
				zap.Int("attempts", attempts),
				zap.Error(err),
			)
		} else if err := handle(ctx, chunk, logs); err != nil {
			return report, fmt.Errorf("handle chunk %d-%d: %w", chunk.From, chunk.To, err)
		}

		report.Chunks++
		processed += chunk.Blocks()
		logsSeen += len(logs)
		f.metrics.ObserveProgress(processed, total, logsSeen)
		f.logger.Info("scan progress",
			zap.Uint64("from_block", chunk.From),
			zap.Uint64("to_block", chunk.To),
			zap.Uint64("processed_blocks", processed),
			zap.Uint64("total_blocks", total),
			zap.Int("logs", logsSeen),
		)
	}

	return report, nil
}

// fetchChunk returns the chunk logs and the number of attempts made.
// Timeouts are retried with exponential backoff; other errors are final.
func (f *logFetcher) fetchChunk(ctx context.Context, r model.BlockRange) ([]types.Log, int, error) {
	var lastErr error
	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		if attempt > 1 {
			f.metrics.ObserveRetry()
			delay := clock.ExponentialBackoff(attempt-1, f.backoffUnit, 0)
			f.logger.Debug("retrying chunk",
				zap.Uint64("from_block", r.From),
				zap.Uint64("to_block", r.To),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", delay),
			)
			if err := f.sleep(ctx, delay); err != nil {
				return nil, attempt - 1, err
			}
		}

		logs, err := f.query(ctx, r)
		if err == nil {
			return logs, attempt, nil
		}
		if ctx.Err() != nil {
			return nil, attempt, ctx.Err()
		}
		if !isTimeout(err) {
			return nil, attempt, fmt.Errorf("%w: blocks %d-%d: %w", ErrPermanentFetch, r.From, r.To, err)
		}
		lastErr = fmt.Errorf("%w: blocks %d-%d: %w", ErrTransientFetch, r.From, r.To, err)
		f.logger.Warn("chunk query timed out",
			zap.Uint64("from_block", r.From),
			zap.Uint64("to_block", r.To),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", f.maxAttempts),
		)
	}
	return nil, f.maxAttempts, lastErr
}

func (f *logFetcher) query(ctx context.Context, r model.BlockRange) ([]types.Log, error) {
	ctx, cancel := context.WithTimeout(ctx, f.chunkTimeout)
	defer cancel()

	started := time.Now()
	logs, err := f.ledger.TransferLogs(ctx, r)
	f.metrics.ObserveAttempt(err, started)
	return logs, err
}

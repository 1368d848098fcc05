package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
	"github.com/goodnatureofminers/blockinsight7000-holders/pkg/batcher"
	"github.com/goodnatureofminers/blockinsight7000-holders/pkg/safe"
)

// SnapshotWriter persists ranked holders through a batching repository writer.
type SnapshotWriter struct {
	batcher *batcher.Batcher[model.HolderSnapshot]
	network model.Network
	logger  *zap.Logger
}

// NewSnapshotWriter builds a SnapshotWriter. Call Start before Write and
// Stop to flush what is still queued.
func NewSnapshotWriter(repo SnapshotRepository, network model.Network, logger *zap.Logger) (*SnapshotWriter, error) {
	if repo == nil {
		return nil, errors.New("snapshot repository is required")
	}
	logger = logger.With(zap.String("network", string(network)))
	return &SnapshotWriter{
		batcher: batcher.New(logger.Named("batcher"), repo.InsertHolderSnapshots, batcher.Config{
			FlushSize:     snapshotFlushSize,
			FlushInterval: snapshotFlushInterval,
			RPS:           snapshotFlushRPS,
		}),
		network: network,
		logger:  logger,
	}, nil
}

func (w *SnapshotWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

func (w *SnapshotWriter) Stop() error {
	return w.batcher.Stop()
}

// Write queues one row per holder, ranked from 1 in slice order.
func (w *SnapshotWriter) Write(
	ctx context.Context,
	token model.TokenMetadata,
	report model.ScanReport,
	holders []model.HolderActivity,
	scannedAt time.Time,
) error {
	for i, h := range holders {
		rank, err := safe.Uint32(i + 1)
		if err != nil {
			return fmt.Errorf("rank holder %s: %w", h.Account, err)
		}
		row := model.HolderSnapshot{
			Network:        w.network,
			Token:          token.Address,
			Symbol:         token.Symbol,
			Height:         report.Window.ToBlock,
			Rank:           rank,
			Account:        h.Account,
			Raw:            h.Raw,
			Balance:        h.Balance,
			ActivityStatus: h.Activity.Status,
			LastActivity:   h.Activity.Timestamp,
			ScannedAt:      scannedAt.UTC(),
		}
		if err := w.batcher.Add(ctx, row); err != nil {
			return fmt.Errorf("queue snapshot row %d: %w", rank, err)
		}
	}
	w.logger.Info("snapshot queued",
		zap.Stringer("token", token.Address),
		zap.Uint64("height", report.Window.ToBlock),
		zap.Int("rows", len(holders)),
	)
	return nil
}

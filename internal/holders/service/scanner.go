package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
)

type transferScanner struct {
	ledger    LedgerService
	decoder   TransferDecoder
	fetcher   *logFetcher
	metrics   ScanMetrics
	logger    *zap.Logger
	chunkSize uint64
}

// Scan snapshots the chain height and collects every decodable Transfer
// event in [0, height].
func (s *transferScanner) Scan(ctx context.Context) ([]model.TransferEvent, model.ScanReport, error) {
	height, err := s.ledger.BlockNumber(ctx)
	if err != nil {
		return nil, model.ScanReport{}, fmt.Errorf("read chain height: %w", err)
	}

	window := model.ScanWindow{FromBlock: 0, ToBlock: height, ChunkSize: s.chunkSize}
	s.logger.Info("scan started",
		zap.Uint64("height", height),
		zap.Uint64("chunk_size", s.chunkSize),
		zap.Int("chunks", len(window.Chunks())),
	)

	var (
		events       []model.TransferEvent
		decodeErrors int
	)
	report, err := s.fetcher.Fetch(ctx, window, func(_ context.Context, r model.BlockRange, logs []types.Log) error {
		skipped := 0
		for _, l := range logs {
			ev, err := s.decoder.Decode(l)
			if err != nil {
				skipped++
				s.logger.Debug("transfer log skipped",
					zap.Uint64("block", l.BlockNumber),
					zap.Uint("log_index", l.Index),
					zap.Error(err),
				)
				continue
			}
			events = append(events, ev)
		}
		decodeErrors += skipped
		s.metrics.ObserveDecodeErrors(skipped)
		return nil
	})
	report.Events = len(events)
	report.DecodeErrors = decodeErrors
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, report, err
		}
		return nil, report, fmt.Errorf("scan transfers: %w", err)
	}

	s.logger.Info("scan finished",
		zap.Int("events", report.Events),
		zap.Int("decode_errors", report.DecodeErrors),
		zap.Int("retries", report.Retries),
		zap.Int("gaps", len(report.Gaps)),
		zap.Uint64("skipped_blocks", report.SkippedBlocks()),
	)
	return events, report, nil
}

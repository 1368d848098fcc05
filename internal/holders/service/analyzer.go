package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
	"github.com/goodnatureofminers/blockinsight7000-holders/pkg/workerpool"
)

// Config tunes the analyzer. Zero values fall back to defaults.
type Config struct {
	ChunkSize       uint64
	ChunkTimeout    time.Duration
	MaxAttempts     int
	BackoffUnit     time.Duration
	ActivityTimeout time.Duration
	BalanceWorkers  int
	ActivityWorkers int
}

func (c Config) withDefaults() Config {
	if c.ChunkSize == 0 {
		c.ChunkSize = defaultChunkSize
	}
	if c.ChunkTimeout <= 0 {
		c.ChunkTimeout = defaultChunkTimeout
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	if c.BackoffUnit <= 0 {
		c.BackoffUnit = defaultBackoffUnit
	}
	if c.ActivityTimeout <= 0 {
		c.ActivityTimeout = defaultActivityTimeout
	}
	if c.BalanceWorkers <= 0 {
		c.BalanceWorkers = defaultBalanceWorkers
	}
	if c.ActivityWorkers <= 0 {
		c.ActivityWorkers = defaultActivityWorkers
	}
	return c
}

type tokenMeta struct {
	decimals uint8
	symbol   string
}

// Analyzer answers balance and holder questions for a single token.
type Analyzer struct {
	token    TokenContract
	scanner  *transferScanner
	resolver *activityResolver
	cfg      Config
	logger   *zap.Logger

	mu   sync.Mutex
	meta *tokenMeta
}

// NewAnalyzer wires the scan pipeline for the token.
func NewAnalyzer(
	ledger LedgerService,
	token TokenContract,
	decoder TransferDecoder,
	scanMetrics ScanMetrics,
	activityMetrics ActivityMetrics,
	cfg Config,
	logger *zap.Logger,
) (*Analyzer, error) {
	if ledger == nil {
		return nil, errors.New("ledger service is required")
	}
	if token == nil {
		return nil, errors.New("token contract is required")
	}
	if decoder == nil {
		return nil, errors.New("transfer decoder is required")
	}
	if scanMetrics == nil {
		return nil, errors.New("scan metrics is required")
	}
	if activityMetrics == nil {
		return nil, errors.New("activity metrics is required")
	}
	cfg = cfg.withDefaults()
	logger = logger.With(zap.Stringer("token", token.Address()))

	return &Analyzer{
		token: token,
		scanner: &transferScanner{
			ledger:    ledger,
			decoder:   decoder,
			metrics:   scanMetrics,
			logger:    logger.Named("scanner"),
			chunkSize: cfg.ChunkSize,
			fetcher: &logFetcher{
				ledger:       ledger,
				metrics:      scanMetrics,
				logger:       logger.Named("fetcher"),
				sleep:        clock.SleepWithContext,
				chunkTimeout: cfg.ChunkTimeout,
				maxAttempts:  cfg.MaxAttempts,
				backoffUnit:  cfg.BackoffUnit,
			},
		},
		resolver: &activityResolver{
			ledger:  ledger,
			metrics: activityMetrics,
			logger:  logger.Named("activity"),
			timeout: cfg.ActivityTimeout,
		},
		cfg:    cfg,
		logger: logger,
	}, nil
}

// metadata loads decimals and symbol once. A failed load leaves nothing
// cached so the next call tries again.
func (a *Analyzer) metadata(ctx context.Context) (tokenMeta, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.meta != nil {
		return *a.meta, nil
	}

	decimals, err := a.token.Decimals(ctx)
	if err != nil {
		return tokenMeta{}, fmt.Errorf("read token decimals: %w", err)
	}
	symbol, err := a.token.Symbol(ctx)
	if err != nil {
		return tokenMeta{}, fmt.Errorf("read token symbol: %w", err)
	}

	a.meta = &tokenMeta{decimals: decimals, symbol: symbol}
	a.logger.Info("token metadata loaded", zap.String("symbol", symbol), zap.Uint8("decimals", decimals))
	return *a.meta, nil
}

// Symbol returns the token symbol.
func (a *Analyzer) Symbol(ctx context.Context) (string, error) {
	meta, err := a.metadata(ctx)
	if err != nil {
		return "", err
	}
	return meta.symbol, nil
}

// Balance returns the account balance in display units.
func (a *Analyzer) Balance(ctx context.Context, account common.Address) (float64, error) {
	meta, err := a.metadata(ctx)
	if err != nil {
		return 0, err
	}
	raw, err := a.token.BalanceOf(ctx, account)
	if err != nil {
		return 0, fmt.Errorf("read balance of %s: %w", account, err)
	}
	return ToDisplay(raw, meta.decimals), nil
}

// BalanceBatch resolves balances concurrently. Each account carries its own
// error; one failure never affects the others.
func (a *Analyzer) BalanceBatch(ctx context.Context, accounts []common.Address) []model.BalanceResult {
	results := workerpool.Map(ctx, a.cfg.BalanceWorkers, accounts, a.Balance)

	out := make([]model.BalanceResult, len(accounts))
	for i, res := range results {
		out[i] = model.BalanceResult{Account: accounts[i], Balance: res.Value, Err: res.Err}
	}
	return out
}

// BalanceBatchAll resolves balances concurrently and fails on the first
// error, canceling the lookups still in flight.
func (a *Analyzer) BalanceBatchAll(ctx context.Context, accounts []common.Address) ([]float64, error) {
	balances := make([]float64, len(accounts))
	indexes := make([]int, len(accounts))
	for i := range indexes {
		indexes[i] = i
	}

	err := workerpool.Process(ctx, a.cfg.BalanceWorkers, indexes, func(ctx context.Context, i int) error {
		v, err := a.Balance(ctx, accounts[i])
		if err != nil {
			return err
		}
		balances[i] = v
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return balances, nil
}

// TopHolders replays the full Transfer history and returns the n largest
// holders together with the scan report. Chunks that could not be fetched
// are listed in the report rather than failing the call.
func (a *Analyzer) TopHolders(ctx context.Context, n int) (model.HolderRanking, model.ScanReport, error) {
	if n <= 0 {
		return model.HolderRanking{}, model.ScanReport{}, nil
	}

	meta, err := a.metadata(ctx)
	if err != nil {
		return nil, model.ScanReport{}, err
	}

	events, report, err := a.scanner.Scan(ctx)
	if err != nil {
		return nil, report, err
	}
	if !report.Complete() {
		a.logger.Warn("scan incomplete, balances may be inaccurate",
			zap.Int("gaps", len(report.Gaps)),
			zap.Uint64("skipped_blocks", report.SkippedBlocks()),
		)
	}
	if len(events) == 0 {
		a.logger.Info("no transfer events found")
		return model.HolderRanking{}, report, nil
	}

	ledger := Aggregate(events)
	ranking := Rank(ledger, n, meta.decimals)
	a.logger.Info("holders ranked", zap.Int("accounts", len(ledger)), zap.Int("ranked", len(ranking)))
	return ranking, report, nil
}

// TopHoldersWithActivity extends TopHolders with the last transfer date of
// every ranked holder.
func (a *Analyzer) TopHoldersWithActivity(ctx context.Context, n int) ([]model.HolderActivity, model.ScanReport, error) {
	ranking, report, err := a.TopHolders(ctx, n)
	if err != nil {
		return nil, report, err
	}

	results := workerpool.Map(ctx, a.cfg.ActivityWorkers, ranking, func(ctx context.Context, h model.HolderBalance) (model.ActivityRecord, error) {
		return a.resolver.Resolve(ctx, h.Account), nil
	})

	holders := make([]model.HolderActivity, len(ranking))
	for i, h := range ranking {
		activity := results[i].Value
		if results[i].Err != nil {
			activity = model.ActivityRecord{Account: h.Account, Status: model.ActivityError}
		}
		holders[i] = model.HolderActivity{HolderBalance: h, Activity: activity}
	}
	return holders, report, nil
}

// LastActivity returns the latest transfer the account took part in.
func (a *Analyzer) LastActivity(ctx context.Context, account common.Address) model.ActivityRecord {
	return a.resolver.Resolve(ctx, account)
}

// TokenInfo returns descriptive token data. Name and total supply are read
// concurrently.
func (a *Analyzer) TokenInfo(ctx context.Context) (model.TokenMetadata, error) {
	meta, err := a.metadata(ctx)
	if err != nil {
		return model.TokenMetadata{}, err
	}

	var (
		name   string
		supply *big.Int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := a.token.Name(gctx)
		if err != nil {
			return fmt.Errorf("read token name: %w", err)
		}
		name = v
		return nil
	})
	g.Go(func() error {
		v, err := a.token.TotalSupply(gctx)
		if err != nil {
			return fmt.Errorf("read total supply: %w", err)
		}
		supply = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.TokenMetadata{}, err
	}

	return model.TokenMetadata{
		Address:     a.token.Address(),
		Symbol:      meta.symbol,
		Name:        name,
		Decimals:    meta.decimals,
		TotalSupply: ToDisplay(supply, meta.decimals),
	}, nil
}

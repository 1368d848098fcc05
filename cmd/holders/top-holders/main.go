// Package main runs one top-holder analysis for an ERC-20 token.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/evm"
	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/service"
	"github.com/goodnatureofminers/blockinsight7000-holders/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-holders/pkg/safe"
)

type config struct {
	RPCURL          string        `long:"rpc-url" env:"TOP_HOLDERS_RPC_URL" description:"EVM JSON-RPC URL" required:"true"`
	Token           string        `long:"token" env:"TOP_HOLDERS_TOKEN" description:"ERC-20 contract address" required:"true"`
	Network         model.Network `long:"network" env:"TOP_HOLDERS_NETWORK" description:"network label" default:"ethereum"`
	TopN            int           `long:"top-n" env:"TOP_HOLDERS_TOP_N" description:"number of holders to rank" default:"10"`
	ChunkSize       int           `long:"chunk-size" env:"TOP_HOLDERS_CHUNK_SIZE" description:"blocks per log range query" default:"1000000"`
	ChunkTimeout    time.Duration `long:"chunk-timeout" env:"TOP_HOLDERS_CHUNK_TIMEOUT" description:"timeout of a single log range query" default:"30s"`
	MaxAttempts     int           `long:"max-attempts" env:"TOP_HOLDERS_MAX_ATTEMPTS" description:"attempts per chunk before it is skipped" default:"3"`
	ActivityTimeout time.Duration `long:"activity-timeout" env:"TOP_HOLDERS_ACTIVITY_TIMEOUT" description:"timeout of a last-activity lookup" default:"60s"`
	WithActivity    bool          `long:"with-activity" env:"TOP_HOLDERS_WITH_ACTIVITY" description:"resolve the last transfer date of every ranked holder"`
	BalanceOf       []string      `long:"balance-of" env:"TOP_HOLDERS_BALANCE_OF" env-delim:"," description:"accounts to print current balances for"`
	RPS             int           `long:"rps" env:"TOP_HOLDERS_RPS" description:"max RPC requests per second, 0 for unlimited" default:"0"`
	HTTPTimeout     time.Duration `long:"http-timeout" env:"TOP_HOLDERS_HTTP_TIMEOUT" description:"HTTP timeout for RPC requests" default:"2m"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"TOP_HOLDERS_CLICKHOUSE_DSN" description:"ClickHouse DSN, stores the ranking when set"`
	MetricsAddr     string        `long:"metrics-addr" env:"TOP_HOLDERS_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("top holders analysis failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	token, err := parseAddress(cfg.Token)
	if err != nil {
		return fmt.Errorf("token: %w", err)
	}
	accounts, err := parseAddresses(cfg.BalanceOf)
	if err != nil {
		return fmt.Errorf("balance-of: %w", err)
	}
	chunkSize, err := safe.Uint64(cfg.ChunkSize)
	if err != nil {
		return fmt.Errorf("chunk-size: %w", err)
	}
	logger = logger.With(zap.String("network", string(cfg.Network)))

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	client, err := newEthClient(ctx, cfg.RPCURL, cfg.HTTPTimeout)
	if err != nil {
		return fmt.Errorf("init eth client: %w", err)
	}
	defer client.Close()

	var limiter ratelimit.Limiter
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	ledger, err := evm.NewLedger(evm.NewObservedClient(client, metrics.NewRPCClient(cfg.Network), limiter), token)
	if err != nil {
		return err
	}

	analyzer, err := service.NewAnalyzer(
		ledger,
		ledger,
		evm.NewTransferDecoder(),
		metrics.NewScanner(cfg.Network, token.Hex()),
		metrics.NewActivityResolver(cfg.Network),
		service.Config{
			ChunkSize:       chunkSize,
			ChunkTimeout:    cfg.ChunkTimeout,
			MaxAttempts:     cfg.MaxAttempts,
			ActivityTimeout: cfg.ActivityTimeout,
		},
		logger,
	)
	if err != nil {
		return err
	}

	info, err := analyzer.TokenInfo(ctx)
	if err != nil {
		return err
	}
	printTokenInfo(os.Stdout, info)

	if len(accounts) > 0 {
		printBalances(os.Stdout, info.Symbol, analyzer.BalanceBatch(ctx, accounts))
	}

	scannedAt := time.Now()
	var (
		holders []model.HolderActivity
		report  model.ScanReport
	)
	if cfg.WithActivity {
		holders, report, err = analyzer.TopHoldersWithActivity(ctx, cfg.TopN)
	} else {
		var ranking model.HolderRanking
		ranking, report, err = analyzer.TopHolders(ctx, cfg.TopN)
		holders = withoutActivity(ranking)
	}
	if err != nil {
		return err
	}
	printHolders(os.Stdout, info.Symbol, holders, cfg.WithActivity)
	printReport(os.Stdout, report)

	if cfg.ClickhouseDSN == "" {
		return nil
	}
	return storeSnapshot(ctx, cfg, info, report, holders, scannedAt, logger)
}

func storeSnapshot(
	ctx context.Context,
	cfg config,
	info model.TokenMetadata,
	report model.ScanReport,
	holders []model.HolderActivity,
	scannedAt time.Time,
	logger *zap.Logger,
) error {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	stored, err := repo.MaxSnapshotHeight(ctx, cfg.Network, info.Address)
	if err != nil {
		return fmt.Errorf("read stored snapshot height: %w", err)
	}
	if stored >= report.Window.ToBlock {
		logger.Info("snapshot already stored for this height", zap.Uint64("height", stored))
		return nil
	}

	writer, err := service.NewSnapshotWriter(repo, cfg.Network, logger)
	if err != nil {
		return err
	}
	writer.Start(ctx)
	writeErr := writer.Write(ctx, info, report, holders, scannedAt)
	if err := errors.Join(writeErr, writer.Stop()); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}

func newEthClient(ctx context.Context, rawURL string, timeout time.Duration) (*ethclient.Client, error) {
	if rawURL == "" {
		return nil, errors.New("rpc url is required")
	}
	var opts []rpc.ClientOption
	if timeout > 0 {
		opts = append(opts, rpc.WithHTTPClient(&http.Client{Timeout: timeout}))
	}
	c, err := rpc.DialOptions(ctx, rawURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", rawURL, err)
	}
	return ethclient.NewClient(c), nil
}

func parseAddress(raw string) (common.Address, error) {
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%q is not a hex address", raw)
	}
	return common.HexToAddress(raw), nil
}

func parseAddresses(raw []string) ([]common.Address, error) {
	out := make([]common.Address, 0, len(raw))
	for _, r := range raw {
		a, err := parseAddress(r)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func withoutActivity(ranking model.HolderRanking) []model.HolderActivity {
	out := make([]model.HolderActivity, len(ranking))
	for i, h := range ranking {
		out[i] = model.HolderActivity{HolderBalance: h}
	}
	return out
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LedgerService interface {
		BlockNumber(ctx context.Context) (uint64, error)
		TransferLogs(ctx context.Context, r model.BlockRange) ([]types.Log, error)
		LatestTransfer(ctx context.Context, account common.Address, role model.TransferRole) (*types.Log, error)
		BlockTimestamp(ctx context.Context, number uint64) (time.Time, error)
	}
	TokenContract interface {
		Address() common.Address
		Decimals(ctx context.Context) (uint8, error)
		Symbol(ctx context.Context) (string, error)
		Name(ctx context.Context) (string, error)
		TotalSupply(ctx context.Context) (*big.Int, error)
		BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
	}
	TransferDecoder interface {
		Decode(l types.Log) (model.TransferEvent, error)
	}
	ScanMetrics interface {
		ObserveAttempt(err error, started time.Time)
		ObserveRetry()
		ObserveGap(r model.BlockRange)
		ObserveDecodeErrors(n int)
		ObserveProgress(processed, total uint64, events int)
	}
	ActivityMetrics interface {
		ObserveLookup(status model.ActivityStatus, started time.Time)
	}
	SnapshotRepository interface {
		InsertHolderSnapshots(ctx context.Context, rows []model.HolderSnapshot) error
	}
)

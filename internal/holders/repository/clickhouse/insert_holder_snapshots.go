package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
)

const insertHolderSnapshotsQuery = `
INSERT INTO holder_snapshots (
	network,
	token,
	symbol,
	height,
	rank,
	account,
	raw_balance,
	balance,
	activity_status,
	last_activity,
	scanned_at
) VALUES`

// InsertHolderSnapshots stores ranked holder rows in ClickHouse.
func (r *Repository) InsertHolderSnapshots(ctx context.Context, rows []model.HolderSnapshot) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_holder_snapshots", firstNetwork(rows), err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertHolderSnapshotsQuery)
	if err != nil {
		return fmt.Errorf("prepare holder snapshots batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			string(row.Network),
			row.Token.Hex(),
			row.Symbol,
			row.Height,
			row.Rank,
			row.Account.Hex(),
			rawBalance(row.Raw),
			row.Balance,
			string(row.ActivityStatus),
			nullableTime(row.LastActivity),
			row.ScannedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append holder snapshot rank %d: %w", row.Rank, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert holder snapshots: %w", err)
	}
	return nil
}

func firstNetwork(rows []model.HolderSnapshot) model.Network {
	if len(rows) == 0 {
		return ""
	}
	return rows[0].Network
}

func rawBalance(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

// nullableTime maps the zero time to NULL; DateTime cannot hold year 1.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}

package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
)

const maxSnapshotHeightQuery = `
SELECT coalesce(max(height), toUInt64(0)) AS max_height
FROM holder_snapshots
WHERE network = ? AND token = ?`

// MaxSnapshotHeight returns the highest scan height stored for the token,
// zero when nothing was stored yet.
func (r *Repository) MaxSnapshotHeight(ctx context.Context, network model.Network, token common.Address) (height uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_snapshot_height", network, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxSnapshotHeightQuery, string(network), token.Hex())
	if err != nil {
		return 0, fmt.Errorf("query max snapshot height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, errors.New("max snapshot height not found")
	}
	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan max snapshot height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max snapshot height: %w", err)
	}

	return height, nil
}

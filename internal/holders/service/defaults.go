package service

import "time"

const (
	defaultChunkSize       uint64 = 1_000_000
	defaultChunkTimeout           = 30 * time.Second
	defaultMaxAttempts            = 3
	defaultBackoffUnit            = time.Second
	defaultActivityTimeout        = 60 * time.Second
	defaultBalanceWorkers         = 16
	defaultActivityWorkers        = 4

	snapshotFlushSize     = 500
	snapshotFlushInterval = 5 * time.Second
	snapshotFlushRPS      = 10
)

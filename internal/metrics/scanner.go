package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "holder_scanner",
		Name:      "chunk_attempts_total",
		Help:      "Count of log range queries issued for scan chunks.",
	}, []string{"network", "token", "status"})

	scannerAttemptDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "holder_scanner",
		Name:      "chunk_attempt_duration_seconds",
		Help:      "Duration of a single chunk log range query.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30},
	}, []string{"network", "token", "status"})

	scannerRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "holder_scanner",
		Name:      "chunk_retries_total",
		Help:      "Count of chunk retries after a timeout.",
	}, []string{"network", "token"})

	scannerGapsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "holder_scanner",
		Name:      "gaps_total",
		Help:      "Count of abandoned chunks.",
	}, []string{"network", "token"})

	scannerGapBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "holder_scanner",
		Name:      "gap_blocks_total",
		Help:      "Count of blocks inside abandoned chunks.",
	}, []string{"network", "token"})

	scannerDecodeErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "holder_scanner",
		Name:      "decode_errors_total",
		Help:      "Count of transfer logs skipped because they failed to decode.",
	}, []string{"network", "token"})

	scannerProcessedBlocks = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "holder_scanner",
		Name:      "processed_blocks",
		Help:      "Blocks covered by the running scan so far.",
	}, []string{"network", "token"})

	scannerTargetBlocks = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "holder_scanner",
		Name:      "target_blocks",
		Help:      "Blocks in the running scan window.",
	}, []string{"network", "token"})

	scannerEvents = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "holder_scanner",
		Name:      "events",
		Help:      "Transfer events collected by the running scan so far.",
	}, []string{"network", "token"})
)

// Scanner tracks metrics for chunked transfer log scans.
type Scanner struct {
	network string
	token   string
}

// NewScanner constructs a Scanner metrics collector.
func NewScanner(network model.Network, token string) *Scanner {
	if network == "" {
		network = "unknown"
	}
	if token == "" {
		token = "unknown"
	}
	return &Scanner{network: string(network), token: token}
}

// ObserveAttempt records one chunk query.
func (m Scanner) ObserveAttempt(err error, started time.Time) {
	status := statusOf(err)
	scannerAttemptsTotal.WithLabelValues(m.network, m.token, status).Inc()
	scannerAttemptDuration.WithLabelValues(m.network, m.token, status).Observe(time.Since(started).Seconds())
}

func (m Scanner) ObserveRetry() {
	scannerRetriesTotal.WithLabelValues(m.network, m.token).Inc()
}

func (m Scanner) ObserveGap(r model.BlockRange) {
	scannerGapsTotal.WithLabelValues(m.network, m.token).Inc()
	scannerGapBlocksTotal.WithLabelValues(m.network, m.token).Add(float64(r.Blocks()))
}

func (m Scanner) ObserveDecodeErrors(n int) {
	if n <= 0 {
		return
	}
	scannerDecodeErrorsTotal.WithLabelValues(m.network, m.token).Add(float64(n))
}

// ObserveProgress publishes scan progress gauges.
func (m Scanner) ObserveProgress(processed, total uint64, events int) {
	scannerProcessedBlocks.WithLabelValues(m.network, m.token).Set(float64(processed))
	scannerTargetBlocks.WithLabelValues(m.network, m.token).Set(float64(total))
	scannerEvents.WithLabelValues(m.network, m.token).Set(float64(events))
}

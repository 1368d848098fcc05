package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activityLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "activity_resolver",
		Name:      "lookups_total",
		Help:      "Count of last-activity lookups by outcome.",
	}, []string{"network", "status"})

	activityLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "activity_resolver",
		Name:      "lookup_duration_seconds",
		Help:      "Duration of a last-activity lookup.",
		Buckets:   []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"network", "status"})
)

type ActivityResolver struct {
	network model.Network
}

func NewActivityResolver(network model.Network) *ActivityResolver {
	if network == "" {
		network = "unknown"
	}
	return &ActivityResolver{network: network}
}

func (m ActivityResolver) ObserveLookup(status model.ActivityStatus, started time.Time) {
	activityLookupsTotal.WithLabelValues(string(m.network), string(status)).Inc()
	activityLookupDuration.WithLabelValues(string(m.network), string(status)).Observe(time.Since(started).Seconds())
}

package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/JoyasAPI_Go/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Inventory query metrics
var (
	InventoryQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInventoryQueriesTotal,
			Help: HelpTextInventoryQueriesTotal,
		},
		[]string{LabelKind, LabelOutcome},
	)

	InventoryQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameInventoryQueryDuration,
			Help:    HelpTextInventoryQueryDuration,
			Buckets: QueryLatencyBuckets,
		},
		[]string{LabelKind},
	)

	InventoryRowsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameInventoryRowsReturned,
			Help:    HelpTextInventoryRowsReturned,
			Buckets: RowCountBuckets,
		},
		[]string{LabelKind},
	)
)

// ObserveInventoryQuery records one executed statement of the given kind
func ObserveInventoryQuery(kind string, d time.Duration, rows int, err error) {
	InventoryQueriesTotal.WithLabelValues(kind, outcome(err)).Inc()
	InventoryQueryDuration.WithLabelValues(kind).Observe(d.Seconds())
	if err == nil {
		InventoryRowsReturned.WithLabelValues(kind).Observe(float64(rows))
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrItemNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrConnection):
		return OutcomeConnection
	default:
		return OutcomeQuery
	}
}

package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_operations_total",
			Help: "Ticket lifecycle operations by outcome",
		},
		[]string{"operation", "result"},
	)

	checkInDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ticket_check_in_duration_seconds",
			Help:    "Time spent validating and recording a check-in",
			Buckets: prometheus.DefBuckets,
		},
	)

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_cache_lookups_total",
			Help: "Cache lookups by cache name and hit/miss",
		},
		[]string{"cache", "result"},
	)

	reconciledCheckIns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticket_reconciled_check_ins_total",
			Help: "Participant check-in flags repaired by the reconciler",
		},
	)
)

func TrackOperation(operation, result string) {
	ticketOperations.WithLabelValues(operation, result).Inc()
}

func ObserveCheckIn(d time.Duration) {
	checkInDuration.Observe(d.Seconds())
}

func TrackCacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.WithLabelValues(cache, result).Inc()
}

func TrackReconciled(n int) {
	reconciledCheckIns.Add(float64(n))
}

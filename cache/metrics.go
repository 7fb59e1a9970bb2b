package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	hitsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "f1statfinder_cache_lookups_total",
		Help: "Cache lookups partitioned by outcome.",
	}, []string{"outcome"})

	errorsMetric = promauto.NewCounter(prometheus.CounterOpts{
		Name: "f1statfinder_cache_errors_total",
		Help: "Cache read/write failures.",
	})
)

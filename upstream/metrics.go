package upstream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var upstreamCalls = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "f1statfinder_upstream_calls_total",
	Help: "Upstream API calls partitioned by outcome.",
}, []string{"outcome"})

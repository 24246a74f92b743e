package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	partitionLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_resolver_partition_loads_total",
			Help: "Total number of partition fetches by partition kind and result",
		},
		[]string{"kind", "result"},
	)

	partitionLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipes_resolver_partition_load_duration_seconds",
			Help:    "Duration of partition fetch and decode in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	cacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_resolver_cache_hits_total",
			Help: "Total number of partition lookups served from memory",
		},
	)

	danglingDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_resolver_dangling_references_total",
			Help: "Total number of references dropped because their position had no recipe",
		},
	)
)

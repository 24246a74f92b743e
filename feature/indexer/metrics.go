package indexer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipes_indexer_run_duration_seconds",
			Help:    "Duration of a full index build in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_indexer_runs_total",
			Help: "Total number of index builds by result",
		},
		[]string{"result"},
	)

	danglingRefs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipes_indexer_dangling_references",
			Help: "Dangling references found by the last index build",
		},
	)
)

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	projectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "difusa_projections_total",
		Help: "Completed projections by resulting band.",
	}, []string{"band"})

	projectionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "difusa_projection_failures_total",
		Help: "Projection requests that produced no result.",
	}, []string{"reason"})

	successPercent = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "difusa_success_percent",
		Help:    "Distribution of projected success percentages.",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})
)

package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsServedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommender_recommendations_served_total",
			Help: "Count of ranked recommendation lists produced by the engine.",
		},
	)

	CFSourceTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_cf_source_total",
			Help: "How each collaborative score was produced (direct, neighbors, fallback).",
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsServedTotal, CFSourceTotal)
}

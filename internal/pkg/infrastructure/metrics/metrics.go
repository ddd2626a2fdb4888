package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AccessDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datgateway",
		Name:      "access_decisions_total",
		Help:      "Ownership checks by registry and outcome.",
	}, []string{"registry", "outcome"})

	DirectoryRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datgateway",
		Name:      "directory_requests_total",
		Help:      "Directory listings by the source they were served from.",
	}, []string{"source"})

	DroppedTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datgateway",
		Name:      "directory_dropped_tokens_total",
		Help:      "Tokens left out of an enumeration because a read failed.",
	}, []string{"registry"})

	EnumerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "datgateway",
		Name:      "directory_enumeration_seconds",
		Help:      "Duration of full registry enumerations.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}

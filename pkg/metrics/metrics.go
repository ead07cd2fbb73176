package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	QueriesTotal         = "userdb_queries_total"
	QueryDurationSeconds = "userdb_query_duration_seconds"
)

var (
	PromCounters = map[string]*prometheus.CounterVec{
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: QueriesTotal,
			Help: "Count of all database statements",
		}, []string{"table", "operation", "status"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		QueryDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: QueryDurationSeconds,
			Help: "Duration of all database statements",
		}, []string{"table", "operation"}),
	}
)

func NewHandler() http.Handler {
	registry := prometheus.NewRegistry()

	// default collectors
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	for _, counter := range PromCounters {
		registry.MustRegister(counter)
	}

	for _, histogram := range PromHistograms {
		registry.MustRegister(histogram)
	}

	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

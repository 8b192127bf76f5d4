// Package metrics exposes Prometheus instrumentation for the dashboard.
//
// HTTP:    http_requests_total{method,route,status}, http_request_duration_seconds{method,route}
// Charts:  chart_renders_total{chart,result}, chart_render_duration_seconds{chart}
// Dataset: dataset_rows{table}
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ChartRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chart_renders_total",
			Help: "Chart renders by chart name and result (ok, error)",
		},
		[]string{"chart", "result"},
	)

	ChartRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chart_render_duration_seconds",
			Help:    "Time spent drawing and writing a chart",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"chart"},
	)

	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Row count of the in-memory tables (original, working)",
		},
		[]string{"table"},
	)
)

// RecordHTTPRequest records one served request
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordChartRender records one chart render attempt
func RecordChartRender(chart string, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	ChartRendersTotal.WithLabelValues(chart, result).Inc()
	ChartRenderDuration.WithLabelValues(chart).Observe(duration.Seconds())
}

// SetDatasetRows publishes the current table sizes
func SetDatasetRows(original, working int) {
	DatasetRows.WithLabelValues("original").Set(float64(original))
	DatasetRows.WithLabelValues("working").Set(float64(working))
}

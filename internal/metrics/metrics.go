// Package metrics exposes the site's prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every metric the site records.
type Registry struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	HeroFramesTotal   prometheus.Counter
	HeroFramesDropped prometheus.Counter
	HeroActiveNodes   prometheus.Gauge
	HeroPhraseIndex   prometheus.Gauge
	StreamClients     prometheus.Gauge

	LayoutsGenerated *prometheus.CounterVec
}

// NewRegistry creates a registry with every metric registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.HTTPRequestsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	r.HTTPRequestDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	r.HeroFramesTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_hero_frames_total",
		Help: "Hero frames published",
	})
	r.HeroFramesDropped = f.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_hero_frames_dropped_total",
		Help: "Hero frames skipped for lagging stream clients",
	})
	r.HeroActiveNodes = f.NewGauge(prometheus.GaugeOpts{
		Name: "portfolio_hero_active_nodes",
		Help: "Nodes in the current activation set",
	})
	r.HeroPhraseIndex = f.NewGauge(prometheus.GaugeOpts{
		Name: "portfolio_hero_phrase_index",
		Help: "Index of the phrase being typed",
	})
	r.StreamClients = f.NewGauge(prometheus.GaugeOpts{
		Name: "portfolio_stream_clients",
		Help: "Connected hero stream clients",
	})

	r.LayoutsGenerated = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_layouts_generated_total",
			Help: "Network layouts generated, by result",
		},
		[]string{"result"}, // ok, invalid
	)
	return r
}

// RecordHTTPRequest records one request.
func (r *Registry) RecordHTTPRequest(method, path, status string, d time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// RecordFrame records a published hero frame.
func (r *Registry) RecordFrame(activeNodes, phraseIndex, dropped int) {
	r.HeroFramesTotal.Inc()
	r.HeroFramesDropped.Add(float64(dropped))
	r.HeroActiveNodes.Set(float64(activeNodes))
	r.HeroPhraseIndex.Set(float64(phraseIndex))
}

// RecordLayout records a layout request.
func (r *Registry) RecordLayout(err error) {
	if err != nil {
		r.LayoutsGenerated.WithLabelValues("invalid").Inc()
		return
	}
	r.LayoutsGenerated.WithLabelValues("ok").Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

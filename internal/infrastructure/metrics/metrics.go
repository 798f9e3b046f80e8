// Package metrics exposes the service's Prometheus instruments.
// Every recording method is safe to call on a nil *Registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "flightprint"

// Search outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
	OutcomeTimeout     = "timeout"
)

// Registry owns a private Prometheus registry and the instruments registered on it.
type Registry struct {
	reg *prometheus.Registry

	Searches        *prometheus.CounterVec
	SearchLatency   prometheus.Histogram
	OffersReceived  prometheus.Counter
	OffersDropped   prometheus.Counter
	ProviderLatency *prometheus.HistogramVec
	ProviderRetries *prometheus.CounterVec
	TokenRefreshes  prometheus.Counter
	HTTPRequests    *prometheus.CounterVec
	HTTPLatency     *prometheus.HistogramVec
}

// NewRegistry creates and registers every instrument, plus Go runtime collectors.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	searches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Flight searches by outcome.",
	}, []string{"outcome"})
	searchLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "End to end flight search latency.",
		Buckets:   prometheus.DefBuckets,
	})
	offersReceived := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offers_received_total",
		Help:      "Raw offers returned by the provider.",
	})
	offersDropped := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offers_dropped_total",
		Help:      "Raw offers that failed normalization.",
	})
	providerLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_request_duration_seconds",
		Help:      "Provider call latency, retries included.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
	}, []string{"provider", "outcome"})
	providerRetries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_retries_total",
		Help:      "Provider call retries.",
	}, []string{"provider"})
	tokenRefreshes := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_token_refreshes_total",
		Help:      "OAuth token fetches against the provider.",
	})
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status.",
	}, []string{"method", "route", "status"})
	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		searches, searchLatency, offersReceived, offersDropped,
		providerLatency, providerRetries, tokenRefreshes,
		httpRequests, httpLatency,
	)

	return &Registry{
		reg:             r,
		Searches:        searches,
		SearchLatency:   searchLatency,
		OffersReceived:  offersReceived,
		OffersDropped:   offersDropped,
		ProviderLatency: providerLatency,
		ProviderRetries: providerRetries,
		TokenRefreshes:  tokenRefreshes,
		HTTPRequests:    httpRequests,
		HTTPLatency:     httpLatency,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// ObserveSearch records one finished search.
func (r *Registry) ObserveSearch(outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.Searches.WithLabelValues(outcome).Inc()
	r.SearchLatency.Observe(elapsed.Seconds())
}

// ObserveOffers records how many offers arrived and how many were dropped.
func (r *Registry) ObserveOffers(received, dropped int) {
	if r == nil {
		return
	}
	r.OffersReceived.Add(float64(received))
	r.OffersDropped.Add(float64(dropped))
}

// ObserveProvider records one provider call.
func (r *Registry) ObserveProvider(provider, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.ProviderLatency.WithLabelValues(provider, outcome).Observe(elapsed.Seconds())
}

// IncProviderRetry counts a retried provider call.
func (r *Registry) IncProviderRetry(provider string) {
	if r == nil {
		return
	}
	r.ProviderRetries.WithLabelValues(provider).Inc()
}

// IncTokenRefresh counts a provider token fetch.
func (r *Registry) IncTokenRefresh() {
	if r == nil {
		return
	}
	r.TokenRefreshes.Inc()
}

// ObserveHTTP records one served HTTP request.
func (r *Registry) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.HTTPLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

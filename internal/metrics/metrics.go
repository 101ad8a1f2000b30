package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors of the service. A nil *Metrics
// is valid and records nothing, so use cases can be built without it.
type Metrics struct {
	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec

	PhotoSelectionsTotal *prometheus.CounterVec
	PhotoSearchesTotal   *prometheus.CounterVec

	CampaignsGeneratedTotal prometheus.Counter
	CampaignImagesTotal     *prometheus.CounterVec

	UpstreamErrorsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a Metrics instance with every collector registered on a
// private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_wizard_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campaign_wizard_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"method", "path"},
		),
		PhotoSelectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_wizard_photo_selections_total",
				Help: "Photo selections by the attempt that produced the photo",
			},
			[]string{"outcome"},
		),
		PhotoSearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_wizard_photo_searches_total",
				Help: "Stock photo searches by result",
			},
			[]string{"result"},
		),
		CampaignsGeneratedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "campaign_wizard_campaigns_generated_total",
				Help: "Campaigns produced by the content pipeline",
			},
		),
		CampaignImagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_wizard_campaign_images_total",
				Help: "Rendered campaign images by result",
			},
			[]string{"result"},
		),
		UpstreamErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_wizard_upstream_errors_total",
				Help: "Failed calls to external providers",
			},
			[]string{"provider"},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationSeconds,
		m.PhotoSelectionsTotal,
		m.PhotoSearchesTotal,
		m.CampaignsGeneratedTotal,
		m.CampaignImagesTotal,
		m.UpstreamErrorsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// PhotoSelected counts a photo selection outcome.
func (m *Metrics) PhotoSelected(outcome string) {
	if m == nil {
		return
	}
	m.PhotoSelectionsTotal.WithLabelValues(outcome).Inc()
}

// PhotoSearched counts a provider search; empty is true when it returned
// nothing.
func (m *Metrics) PhotoSearched(empty bool) {
	if m == nil {
		return
	}
	result := "hit"
	if empty {
		result = "empty"
	}
	m.PhotoSearchesTotal.WithLabelValues(result).Inc()
}

// CampaignGenerated counts a finished pipeline run.
func (m *Metrics) CampaignGenerated() {
	if m == nil {
		return
	}
	m.CampaignsGeneratedTotal.Inc()
}

// CampaignImage counts one image stage result ("rendered" or "placeholder").
func (m *Metrics) CampaignImage(result string) {
	if m == nil {
		return
	}
	m.CampaignImagesTotal.WithLabelValues(result).Inc()
}

// UpstreamError counts a failed provider call.
func (m *Metrics) UpstreamError(provider string) {
	if m == nil {
		return
	}
	m.UpstreamErrorsTotal.WithLabelValues(provider).Inc()
}

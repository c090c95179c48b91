package metrics

import (
	"context"
	"net/http"

	"github.com/atomo10/atomo/pkg/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec   // labels: method, route, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: method, route

	ETAProjections      *prometheus.CounterVec // label: outcome
	ETAProjectedStops   prometheus.Histogram
	LineEventsPublished *prometheus.CounterVec // label: type
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "atomo_http_requests_total",
			Help: "Total HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "atomo_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}, []string{"method", "route"}),
		ETAProjections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "atomo_eta_projections_total",
			Help: "ETA projections computed, by outcome.",
		}, []string{"outcome"}),
		ETAProjectedStops: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "atomo_eta_projected_stops",
			Help:    "Number of stops in returned ETA projections.",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		}),
		LineEventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "atomo_line_events_published_total",
			Help: "Line events handed to the events queue.",
		}, []string{"type"}),
	}

	reg.MustRegister(
		c.HTTPRequests, c.HTTPRequestDuration,
		c.ETAProjections, c.ETAProjectedStops, c.LineEventsPublished,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// ObservePublisher counts every event handed to publisher
func (c *Collector) ObservePublisher(publisher events.Publisher) events.Publisher {
	return &observedPublisher{publisher: publisher, published: c.LineEventsPublished}
}

type observedPublisher struct {
	publisher events.Publisher
	published *prometheus.CounterVec
}

func (p *observedPublisher) Publish(ctx context.Context, event *events.Event) {
	p.published.WithLabelValues(string(event.Type)).Inc()
	p.publisher.Publish(ctx, event)
}

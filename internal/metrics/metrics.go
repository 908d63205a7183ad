// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "succeed_web_http_requests_total",
		Help: "HTTP requests served by route pattern, method and status code",
	}, []string{"route", "method", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "succeed_web_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	pageRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "succeed_web_page_renders_total",
		Help: "Page renders by kind and outcome",
	}, []string{"kind", "outcome"}) // outcome=success|failure

	configLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "succeed_web_config_loads_total",
		Help: "Site configuration loads by outcome",
	}, []string{"outcome"}) // outcome=success|failure

	configValidationProblems = promauto.NewCounter(prometheus.CounterOpts{
		Name: "succeed_web_config_validation_problems_total",
		Help: "Problems reported by site configuration validation",
	})

	siteVariants = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "succeed_web_site_variants",
		Help: "Landing page variants in the loaded site configuration",
	})

	contentPages = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "succeed_web_content_pages",
		Help: "Static content pages loaded at startup",
	})

	pagesExported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "succeed_web_pages_exported_total",
		Help: "HTML files written by the static exporter",
	})
)

// ObserveRequest records one completed HTTP request.
func ObserveRequest(route, method string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// RecordRender counts a page render attempt.
func RecordRender(kind string, err error) {
	pageRendersTotal.WithLabelValues(kind, outcome(err)).Inc()
}

// RecordConfigLoad counts a site configuration load along with the number of
// validation problems it reported.
func RecordConfigLoad(problems int, err error) {
	configLoadsTotal.WithLabelValues(outcome(err)).Inc()
	if problems > 0 {
		configValidationProblems.Add(float64(problems))
	}
}

// RecordSite publishes the size of the loaded site.
func RecordSite(variants, pages int) {
	siteVariants.Set(float64(variants))
	contentPages.Set(float64(pages))
}

// IncPagesExported counts one exported file.
func IncPagesExported() { pagesExported.Inc() }

func outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

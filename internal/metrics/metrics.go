// Package metrics provides Prometheus metric collection for the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the usecases record through
type Recorder interface {
	RecordSearch(resultCount int)
	RecordDisclosure(outcome string)
	RecordSurveySubmission(classification string)
}

// Disclosure outcomes
const (
	OutcomeRevealed    = "revealed"
	OutcomeNotEligible = "not_eligible"
	OutcomeNotFound    = "not_found"
)

// Collector implements Recorder on a Prometheus registry
type Collector struct {
	registry *prometheus.Registry

	searches       prometheus.Counter
	searchResults  prometheus.Histogram
	disclosures    *prometheus.CounterVec
	submissions    *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics
func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		registry: reg,
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fincircle_profile_searches_total",
			Help: "Total profile directory searches",
		}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fincircle_profile_search_results",
			Help:    "Result-set sizes returned by profile searches",
			Buckets: []float64{0, 1, 5, 10, 25, 50},
		}),
		disclosures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fincircle_disclosures_total",
			Help: "Sensitive-field disclosure attempts by outcome",
		}, []string{"outcome"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fincircle_survey_submissions_total",
			Help: "Survey submissions by classification",
		}, []string{"classification"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fincircle_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	reg.MustRegister(
		c.searches,
		c.searchResults,
		c.disclosures,
		c.submissions,
		c.requestLatency,
	)
	return c
}

// RecordSearch counts a search and its result-set size
func (c *Collector) RecordSearch(resultCount int) {
	c.searches.Inc()
	c.searchResults.Observe(float64(resultCount))
}

// RecordDisclosure counts a disclosure attempt by outcome
func (c *Collector) RecordDisclosure(outcome string) {
	c.disclosures.WithLabelValues(outcome).Inc()
}

// RecordSurveySubmission counts a scored submission by classification
func (c *Collector) RecordSurveySubmission(classification string) {
	c.submissions.WithLabelValues(classification).Inc()
}

// HTTPMiddleware observes request latency per route
func (c *Collector) HTTPMiddleware() gin.HandlerFunc {
	return func(g *gin.Context) {
		start := time.Now()
		g.Next()

		path := g.FullPath()
		if path == "" {
			path = "unmatched"
		}
		c.requestLatency.
			WithLabelValues(g.Request.Method, path, strconv.Itoa(g.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registry for scraping
func (c *Collector) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

// Nop is a Recorder that discards everything; used in tests
type Nop struct{}

func (Nop) RecordSearch(int) {}

func (Nop) RecordDisclosure(string) {}

func (Nop) RecordSurveySubmission(string) {}

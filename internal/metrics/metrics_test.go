package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordsAndExposes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := NewCollector(prometheus.NewRegistry())

	c.RecordSearch(3)
	c.RecordDisclosure(OutcomeRevealed)
	c.RecordDisclosure(OutcomeNotEligible)
	c.RecordSurveySubmission("VIP")

	r := gin.New()
	r.Use(c.HTTPMiddleware())
	r.GET("/metrics", c.Handler())
	r.GET("/x", func(g *gin.Context) { g.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "fincircle_profile_searches_total 1")
	assert.Contains(t, body, `fincircle_disclosures_total{outcome="revealed"} 1`)
	assert.Contains(t, body, `fincircle_disclosures_total{outcome="not_eligible"} 1`)
	assert.Contains(t, body, `fincircle_survey_submissions_total{classification="VIP"} 1`)
	assert.Contains(t, body, "fincircle_http_request_duration_seconds")
}

func TestCollector_UnmatchedRouteLabel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := NewCollector(prometheus.NewRegistry())

	r := gin.New()
	r.Use(c.HTTPMiddleware())
	r.GET("/metrics", c.Handler())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.True(t, strings.Contains(rec.Body.String(), `path="unmatched"`))
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = Nop{}
	r.RecordSearch(10)
	r.RecordDisclosure(OutcomeNotFound)
	r.RecordSurveySubmission("BASIC")
}

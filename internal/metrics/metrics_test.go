package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/courtside-stats/internal/metrics"
	"github.com/maxviazov/courtside-stats/internal/model"
)

func TestNew_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) })
}

func TestRecorder_DomainCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	rec.ShotRecorded(model.ThreePoint, true)
	rec.ShotRecorded(model.ThreePoint, true)
	rec.ShotRecorded(model.FreeThrow, false)
	rec.StatRecorded(model.StatAssist)
	rec.GameCreated()
	rec.GameCompleted()

	expected := `
# HELP courtside_shots_recorded_total Shots appended to game logs by type and result.
# TYPE courtside_shots_recorded_total counter
courtside_shots_recorded_total{result="made",shot_type="3PT"} 2
courtside_shots_recorded_total{result="missed",shot_type="FT"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "courtside_shots_recorded_total"))

	count, err := testutil.GatherAndCount(reg, "courtside_stat_events_total", "courtside_games_created_total", "courtside_games_completed_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var rec *metrics.Recorder
	assert.NotPanics(t, func() {
		rec.ShotRecorded(model.TwoPoint, true)
		rec.StatRecorded(model.StatSteal)
		rec.GameCreated()
		rec.GameCompleted()
	})
}

func TestMiddleware_LabelsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	r := gin.New()
	r.Use(rec.Middleware())
	r.GET("/games/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(metrics.Handler(reg)))

	for _, path := range []string{"/games/a", "/games/b", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `courtside_http_requests_total{method="GET",route="/games/:id",status="204"} 2`)
	assert.Contains(t, body, `courtside_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.NotContains(t, body, `route="/games/a"`)
}

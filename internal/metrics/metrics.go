// Package metrics exposes Prometheus instrumentation for game recording and the HTTP API.
//
// Collectors live on a Recorder bound to an injected registry rather than package globals,
// so tests get an isolated prometheus.NewRegistry(). A nil *Recorder is valid and records nothing.
//
// Exposed series:
//
//	courtside_shots_recorded_total{shot_type,result}
//	courtside_stat_events_total{stat}
//	courtside_games_created_total
//	courtside_games_completed_total
//	courtside_http_requests_total{method,route,status}
//	courtside_http_request_duration_seconds{method,route}
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maxviazov/courtside-stats/internal/model"
)

const namespace = "courtside"

// unmatchedRoute labels requests gin could not route, keeping raw paths out of label values.
const unmatchedRoute = "unmatched"

type Recorder struct {
	shots          *prometheus.CounterVec
	stats          *prometheus.CounterVec
	gamesCreated   prometheus.Counter
	gamesCompleted prometheus.Counter
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New registers every collector with reg. It panics on duplicate registration, like MustRegister.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		shots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shots_recorded_total",
			Help:      "Shots appended to game logs by type and result.",
		}, []string{"shot_type", "result"}),
		stats: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stat_events_total",
			Help:      "Box-score counter increments by stat key.",
		}, []string{"stat"}),
		gamesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_created_total",
			Help:      "Games set up.",
		}),
		gamesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_completed_total",
			Help:      "Games moved to completed.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(r.shots, r.stats, r.gamesCreated, r.gamesCompleted, r.httpRequests, r.httpDuration)
	return r
}

func result(made bool) string {
	if made {
		return "made"
	}
	return "missed"
}

func (r *Recorder) ShotRecorded(t model.ShotType, made bool) {
	if r == nil {
		return
	}
	r.shots.WithLabelValues(t.String(), result(made)).Inc()
}

func (r *Recorder) StatRecorded(key model.StatKey) {
	if r == nil {
		return
	}
	r.stats.WithLabelValues(string(key)).Inc()
}

func (r *Recorder) GameCreated() {
	if r == nil {
		return
	}
	r.gamesCreated.Inc()
}

func (r *Recorder) GameCompleted() {
	if r == nil {
		return
	}
	r.gamesCompleted.Inc()
}

// Middleware records count and latency per route template (c.FullPath), never the raw URL.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		r.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		r.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the scrape endpoint for g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

package metrics

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "obs_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	StatusSnapshotDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "obs_status_snapshot_duration_seconds",
			Help:    "Time spent computing project status snapshots",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
	)

	StatusCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "obs_status_cache_lookups_total",
			Help: "Project status snapshot cache lookups by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, StatusSnapshotDuration, StatusCacheLookups)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware counts requests by route template so project names do not explode the label set
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
	})
}

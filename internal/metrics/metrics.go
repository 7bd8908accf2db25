package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bountyboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bountyboard_http_request_duration_seconds",
			Help:    "Histogram of response durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	// NotificationsCreated counts persisted notifications per kind
	NotificationsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bountyboard_notifications_created_total",
			Help: "Number of notifications created",
		},
		[]string{"kind"},
	)

	// ActionsOffered counts which submission action the viewers were shown
	ActionsOffered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bountyboard_submission_actions_offered_total",
			Help: "Submission actions offered to viewers",
		},
		[]string{"action"},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bountyboard_ws_connections",
			Help: "Open notification websocket connections",
		},
	)

	WorkerRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bountyboard_worker_runs_total",
			Help: "Background worker runs by outcome",
		},
		[]string{"worker", "status"},
	)
)

var once sync.Once

// Init registers the collectors once; SetupRouter may run many times in tests.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(RequestCount, RequestDuration, NotificationsCreated, ActionsOffered, WSConnections, WorkerRuns)
	})
}

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Portfolio
	ProjectsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_projects_created_total",
			Help: "Projects created through the API or the startup seed",
		},
	)
	ContactMessagesReceived = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_contact_messages_received_total",
			Help: "Contact form submissions stored",
		},
	)
	ContactMessagesRead = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_contact_messages_read_total",
			Help: "Mark-as-read calls that succeeded",
		},
	)
	NotificationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_contact_notifications_failed_total",
			Help: "Contact notifications that returned an error",
		},
	)

	// Worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	initOnce sync.Once
)

// Handler serves /metrics.
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Safe to call
// more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			ProjectsCreated,
			ContactMessagesReceived,
			ContactMessagesRead,
			NotificationsFailed,
			WorkerQueueDepth,
		)
	})
}

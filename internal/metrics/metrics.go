package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and path.",
		},
		[]string{"method", "path"},
	)

	bookingsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shareit",
		Name:      "bookings_created_total",
		Help:      "Bookings accepted into WAITING.",
	})

	bookingsDecided = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "bookings_decided_total",
			Help:      "Owner decisions by resulting status.",
		},
		[]string{"status"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, bookingsDecided)
	})
}

func IncHTTP(method, path string) {
	httpRequests.WithLabelValues(method, path).Inc()
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncBookingDecided(status string) {
	bookingsDecided.WithLabelValues(status).Inc()
}

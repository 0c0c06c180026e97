// Package metrics exposes the coordinator's prometheus counters.
package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsCreated counts service requests accepted by the coordinator
	RequestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_requests_created_total",
		Help: "Number of service requests created",
	})

	// AcceptConflicts counts accept attempts refused because another
	// candidate already held the accepted slot
	AcceptConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_accept_conflicts_total",
		Help: "Number of accept attempts rejected due to an existing accepted candidate",
	})

	// EscalationsFired counts fallback searches triggered by scan-window expiry
	EscalationsFired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_escalations_fired_total",
		Help: "Number of fallback candidate searches fired",
	})

	// RequestsCompleted counts requests that reached the completed state
	RequestsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_requests_completed_total",
		Help: "Number of service requests completed",
	})

	// RequestsByStatus tracks terminal outcomes by status label
	RequestsByStatus = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_requests_terminal_total",
		Help: "Number of requests reaching a terminal status",
	}, []string{"status"})
)

// RegisterEndpoint mounts the prometheus scrape handler on the echo server
func RegisterEndpoint(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

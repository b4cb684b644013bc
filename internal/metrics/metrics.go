package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters exported on /metrics.
type Metrics struct {
	FlightMutations *prometheus.CounterVec
	AdminLogins     prometheus.Counter
	ListRequests    prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		FlightMutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "flightadmin_flight_mutations_total",
			Help: "Flight create/update/delete operations by action and outcome.",
		}, []string{"action", "outcome"}),
		AdminLogins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "flightadmin_admin_logins_total",
			Help: "Successful admin logins.",
		}),
		ListRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "flightadmin_flight_list_requests_total",
			Help: "Flight list requests served.",
		}),
	}
}

package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Remote search service Prometheus metrics.
var (
	RemoteRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "happywhale",
			Name:      "remote_requests_total",
			Help:      "Total number of search submissions to the remote service",
		},
		[]string{"kind", "status"},
	)

	RemoteRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "happywhale",
			Name:      "remote_request_duration_seconds",
			Help:      "Remote search submission duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"kind"},
	)

	RemoteErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "happywhale",
			Name:      "remote_errors_total",
			Help:      "Total remote search submission errors",
		},
		[]string{"kind", "error_type"}, // "transport" / "status"
	)
)

// Register adds the remote metrics to reg. Registering twice on the same
// registerer is not an error.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{RemoteRequestsTotal, RemoteRequestDuration, RemoteErrorsTotal} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) && are.ExistingCollector == c {
				continue
			}
			return fmt.Errorf("register remote metric: %w", err)
		}
	}
	return nil
}

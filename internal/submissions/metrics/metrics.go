package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Kind labels for submission metrics.
const (
	KindDonation   = "donation"
	KindMembership = "membership"
	KindVolunteer  = "volunteer"
	KindContact    = "contact"
)

// Metrics provides observability for the submissions module.
type Metrics struct {
	Created  *prometheus.CounterVec
	Rejected *prometheus.CounterVec
}

// New creates a new Metrics instance with all submissions metrics registered.
// Call once per process; promauto panics on duplicate registration.
func New() *Metrics {
	return &Metrics{
		Created: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "shp_submissions_created_total",
			Help: "Total number of submissions persisted, by kind",
		}, []string{"kind"}),
		Rejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "shp_submissions_rejected_total",
			Help: "Total number of submissions rejected by validation, by kind",
		}, []string{"kind"}),
	}
}

// IncrementCreated records a successfully persisted submission.
func (m *Metrics) IncrementCreated(kind string) {
	m.Created.WithLabelValues(kind).Inc()
}

// IncrementRejected records a validation rejection.
func (m *Metrics) IncrementRejected(kind string) {
	m.Rejected.WithLabelValues(kind).Inc()
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all application metrics. Counters are registered on a
// private registry so independent instances (one per test, one per
// process) never collide.
type Metrics struct {
	registry *prometheus.Registry

	PatientsRegistered    prometheus.Counter
	AppointmentsBooked    prometheus.Counter
	AppointmentsCancelled prometheus.Counter
	AppointmentsCompleted prometheus.Counter
	InvoicesGenerated     prometheus.Counter
}

// New creates and registers all application metrics
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PatientsRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "patients_registered_total",
			Help:      "Total number of patients registered",
		}),
		AppointmentsBooked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_booked_total",
			Help:      "Total number of appointments booked",
		}),
		AppointmentsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_cancelled_total",
			Help:      "Total number of appointments cancelled",
		}),
		AppointmentsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_completed_total",
			Help:      "Total number of appointments marked completed",
		}),
		InvoicesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_generated_total",
			Help:      "Total number of invoices generated",
		}),
	}

	m.registry.MustRegister(
		m.PatientsRegistered,
		m.AppointmentsBooked,
		m.AppointmentsCancelled,
		m.AppointmentsCompleted,
		m.InvoicesGenerated,
	)

	return m
}

// Snapshot gathers the registry into a metric-name to counter-value map.
// There is no scrape endpoint; the CLI reports this on exit.
func (m *Metrics) Snapshot() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	snapshot := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			if counter := metric.GetCounter(); counter != nil {
				snapshot[mf.GetName()] = counter.GetValue()
			}
		}
	}
	return snapshot, nil
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the appointment wizard flows.
type BookingMetrics struct {
	availabilityTotal   *prometheus.CounterVec
	availabilityLatency *prometheus.HistogramVec
	triageTotal         *prometheus.CounterVec
	transcribeTotal     *prometheus.CounterVec
	emailTotal          *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		availabilityTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "availability",
			Name:      "queries_total",
			Help:      "Total availability queries",
		}, []string{"specialty", "outcome"}),
		availabilityLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clinic",
			Subsystem: "availability",
			Name:      "query_latency_seconds",
			Help:      "Latency of availability resolution",
			Buckets:   prometheus.DefBuckets,
		}, []string{"specialty"}),
		triageTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "triage",
			Name:      "classifications_total",
			Help:      "Total symptom classification requests",
		}, []string{"specialty", "status"}),
		transcribeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "transcribe",
			Name:      "requests_total",
			Help:      "Total audio transcription requests",
		}, []string{"status"}),
		emailTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "notify",
			Name:      "emails_total",
			Help:      "Total confirmation emails attempted",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.availabilityTotal, m.availabilityLatency, m.triageTotal, m.transcribeTotal, m.emailTotal)
	return m
}

func (m *BookingMetrics) ObserveAvailabilityQuery(specialty, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.availabilityTotal.WithLabelValues(specialty, outcome).Inc()
	m.availabilityLatency.WithLabelValues(specialty).Observe(seconds)
}

func (m *BookingMetrics) ObserveTriage(specialty, status string) {
	if m == nil {
		return
	}
	m.triageTotal.WithLabelValues(specialty, status).Inc()
}

func (m *BookingMetrics) ObserveTranscription(status string) {
	if m == nil {
		return
	}
	m.transcribeTotal.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveEmail(status string) {
	if m == nil {
		return
	}
	m.emailTotal.WithLabelValues(status).Inc()
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters/histograms for the lead write path.
type LeadMetrics struct {
	insertTotal   *prometheus.CounterVec
	appendLatency prometheus.Histogram
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		insertTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hke",
			Subsystem: "leads",
			Name:      "insert_total",
			Help:      "Total lead insert attempts by outcome",
		}, []string{"outcome"}),
		appendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hke",
			Subsystem: "leads",
			Name:      "sheet_append_latency_seconds",
			Help:      "Latency of the full resolve+open+append sequence",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.insertTotal, m.appendLatency)
	return m
}

func (m *LeadMetrics) ObserveInsert(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.insertTotal.WithLabelValues(outcome).Inc()
	m.appendLatency.Observe(seconds)
}

// PlannerMetrics exposes counters/histograms for itinerary LLM calls.
type PlannerMetrics struct {
	requestsTotal *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

func NewPlannerMetrics(reg prometheus.Registerer) *PlannerMetrics {
	m := &PlannerMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hke",
			Subsystem: "planner",
			Name:      "requests_total",
			Help:      "Total planner LLM requests by endpoint and status",
		}, []string{"endpoint", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hke",
			Subsystem: "planner",
			Name:      "latency_seconds",
			Help:      "Latency of planner LLM completions",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"endpoint"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.latency)
	return m
}

func (m *PlannerMetrics) ObserveRequest(endpoint, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(endpoint, status).Inc()
	m.latency.WithLabelValues(endpoint).Observe(seconds)
}

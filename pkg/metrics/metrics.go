package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	fieldforms = "fieldforms"

	formsSubmittedTotal      = "forms_submitted_total"
	fsoUploadsTotal          = "fso_uploads_total"
	fsoStatusTransitionTotal = "fso_status_transitions_total"

	// Labels
	resultLabel = "result"
	statusLabel = "status"
)

var formsSubmittedTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: fieldforms,
		Name:      formsSubmittedTotal,
		Help:      "number of inspection form submissions by result",
	},
	[]string{resultLabel},
)

var fsoUploadsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: fieldforms,
		Name:      fsoUploadsTotal,
		Help:      "number of FSO document uploads by result",
	},
	[]string{resultLabel},
)

var fsoStatusTransitionsMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: fieldforms,
		Name:      fsoStatusTransitionTotal,
		Help:      "number of FSO status transitions by target status",
	},
	[]string{statusLabel},
)

func IncreaseFormsSubmittedTotalMetric(result string) {
	formsSubmittedTotalMetric.With(prometheus.Labels{resultLabel: result}).Inc()
}

func IncreaseFSOUploadsTotalMetric(result string) {
	fsoUploadsTotalMetric.With(prometheus.Labels{resultLabel: result}).Inc()
}

func IncreaseFSOStatusTransitionsMetric(status string) {
	fsoStatusTransitionsMetric.With(prometheus.Labels{statusLabel: status}).Inc()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(formsSubmittedTotalMetric)
	prometheus.MustRegister(fsoUploadsTotalMetric)
	prometheus.MustRegister(fsoStatusTransitionsMetric)
}

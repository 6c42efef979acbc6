package observability

import "github.com/prometheus/client_golang/prometheus"

// Domain counters. Labels are small closed sets (kind, result, provider).
var (
	authEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resi_auth_events_total",
			Help: "Login and signup attempts by outcome.",
		},
		[]string{"kind", "result"},
	)

	assessments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resi_assessments_total",
			Help: "DASS-21 submissions by outcome.",
		},
		[]string{"result"},
	)

	assistantStreams = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resi_assistant_streams_total",
			Help: "Assistant replies by provider and outcome.",
		},
		[]string{"provider", "result"},
	)

	contentWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resi_content_writes_total",
			Help: "Create and delete operations on user and catalog content.",
		},
		[]string{"entity", "action"},
	)
)

func init() {
	prometheus.MustRegister(authEvents, assessments, assistantStreams, contentWrites)
}

// Outcome maps an error to the "result" label value.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordAuth counts a login or signup attempt.
func RecordAuth(kind string, err error) {
	authEvents.WithLabelValues(kind, Outcome(err)).Inc()
}

// RecordAssessment counts a DASS-21 submission.
func RecordAssessment(err error) {
	assessments.WithLabelValues(Outcome(err)).Inc()
}

// RecordAssistant counts a finished assistant reply.
func RecordAssistant(provider string, err error) {
	assistantStreams.WithLabelValues(provider, Outcome(err)).Inc()
}

// RecordContent counts a successful content mutation.
func RecordContent(entity, action string) {
	contentWrites.WithLabelValues(entity, action).Inc()
}

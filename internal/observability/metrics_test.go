package observability

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestOutcome(t *testing.T) {
	if Outcome(nil) != "ok" || Outcome(errors.New("x")) != "error" {
		t.Fatalf("unexpected outcome labels")
	}
}

func TestRecorders_IncrementLabelledSeries(t *testing.T) {
	before := testutil.ToFloat64(authEvents.WithLabelValues("login", "error"))
	RecordAuth("login", errors.New("bad password"))
	if got := testutil.ToFloat64(authEvents.WithLabelValues("login", "error")); got != before+1 {
		t.Fatalf("auth: got %v want %v", got, before+1)
	}

	before = testutil.ToFloat64(assessments.WithLabelValues("ok"))
	RecordAssessment(nil)
	if got := testutil.ToFloat64(assessments.WithLabelValues("ok")); got != before+1 {
		t.Fatalf("assessments: got %v", got)
	}

	before = testutil.ToFloat64(assistantStreams.WithLabelValues("local", "ok"))
	RecordAssistant("local", nil)
	if got := testutil.ToFloat64(assistantStreams.WithLabelValues("local", "ok")); got != before+1 {
		t.Fatalf("assistant: got %v", got)
	}

	before = testutil.ToFloat64(contentWrites.WithLabelValues("video", "delete"))
	RecordContent("video", "delete")
	if got := testutil.ToFloat64(contentWrites.WithLabelValues("video", "delete")); got != before+1 {
		t.Fatalf("content: got %v", got)
	}
}

package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tbourn/go-wellness-backend/internal/assessment"
	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/observability"
	"github.com/tbourn/go-wellness-backend/internal/repo"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// AssessmentService scores DASS-21 submissions and keeps the history.
type AssessmentService struct {
	Store *store.Store
	Now   Clock
}

// Outcome is a stored result with its severity classification.
type Outcome struct {
	Result   domain.TestResult   `json:"result"`
	Severity assessment.Severity `json:"severity"`
}

// Submit scores answers and stores the result in front of the history.
// Incomplete or invalid answers store nothing.
func (s *AssessmentService) Submit(ctx context.Context, actor *domain.User, answers []int) (Outcome, error) {
	ctx, span := otel.Tracer("services/AssessmentService").Start(ctx, "Submit")
	defer span.End()

	scores, err := assessment.Score(answers)
	observability.RecordAssessment(err)
	if err != nil {
		return Outcome{}, err
	}
	span.SetAttributes(
		attribute.Int("dass.depression", scores.Depression),
		attribute.Int("dass.anxiety", scores.Anxiety),
		attribute.Int("dass.stress", scores.Stress),
	)
	r := domain.TestResult{Date: stamp(s.Now.now()), Scores: scores}
	if err := repo.TestResults(scope(actor)).Prepend(ctx, s.Store, r); err != nil {
		return Outcome{}, err
	}
	return Outcome{Result: r, Severity: assessment.ClassifyScores(scores)}, nil
}

// History returns past results, newest first, with their classification.
func (s *AssessmentService) History(ctx context.Context, actor *domain.User) []Outcome {
	list := repo.TestResults(scope(actor)).List(ctx, s.Store)
	out := make([]Outcome, 0, len(list))
	for _, r := range list {
		out = append(out, Outcome{Result: r, Severity: assessment.ClassifyScores(r.Scores)})
	}
	return out
}

// Latest returns the most recent result, if any.
func (s *AssessmentService) Latest(ctx context.Context, actor *domain.User) (Outcome, bool) {
	h := s.History(ctx, actor)
	if len(h) == 0 {
		return Outcome{}, false
	}
	return h[0], true
}

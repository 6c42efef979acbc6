// Package assessment scores the DASS-21 self-assessment and classifies each
// sub-scale score into its published severity band.
package assessment

import (
	"errors"
	"fmt"

	"github.com/tbourn/go-wellness-backend/internal/domain"
)

// QuestionCount is the number of DASS-21 items.
const QuestionCount = 21

var (
	ErrIncompleteAnswers = errors.New("all questions must be answered")
	ErrInvalidAnswer     = errors.New("answer out of range")
)

// Scale is a DASS-21 sub-scale.
type Scale string

const (
	Depression Scale = "D"
	Anxiety    Scale = "A"
	Stress     Scale = "S"
)

// Items maps each question position to its sub-scale, in questionnaire order.
var Items = [QuestionCount]Scale{
	Stress, Anxiety, Depression, Anxiety, Depression, Stress, Anxiety,
	Stress, Anxiety, Depression, Stress, Stress, Depression, Stress,
	Anxiety, Depression, Depression, Stress, Anxiety, Anxiety, Depression,
}

// Score sums the answers per sub-scale and doubles them. Every one of the 21
// answers must be present and in 0..3; nothing is scored otherwise.
func Score(answers []int) (domain.Scores, error) {
	if len(answers) < QuestionCount {
		return domain.Scores{}, fmt.Errorf("%w: got %d of %d", ErrIncompleteAnswers, len(answers), QuestionCount)
	}
	if len(answers) > QuestionCount {
		return domain.Scores{}, fmt.Errorf("%w: got %d answers, want %d", ErrInvalidAnswer, len(answers), QuestionCount)
	}
	var s domain.Scores
	for i, a := range answers {
		if a < 0 || a > 3 {
			return domain.Scores{}, fmt.Errorf("%w: question %d = %d", ErrInvalidAnswer, i+1, a)
		}
		switch Items[i] {
		case Depression:
			s.Depression += a
		case Anxiety:
			s.Anxiety += a
		case Stress:
			s.Stress += a
		}
	}
	s.Depression *= 2
	s.Anxiety *= 2
	s.Stress *= 2
	return s, nil
}

// ScoreAnswers is Score for sparse input keyed by zero-based question index,
// as collected by a form that may leave questions unanswered.
func ScoreAnswers(answers map[int]int) (domain.Scores, error) {
	list := make([]int, 0, QuestionCount)
	for i := 0; i < QuestionCount; i++ {
		a, ok := answers[i]
		if !ok {
			return domain.Scores{}, fmt.Errorf("%w: question %d unanswered", ErrIncompleteAnswers, i+1)
		}
		list = append(list, a)
	}
	return Score(list)
}

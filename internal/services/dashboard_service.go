package services

import (
	"context"
	"time"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/repo"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// Dashboard summarizes a user's progress.
type Dashboard struct {
	CompletedChallenges int             `json:"completedChallenges"`
	TotalChallenges     int             `json:"totalChallenges"`
	MissedChallenges    int             `json:"missedChallenges"`
	JournalEntries      int             `json:"journalEntries"`
	JournalActivity     []repo.DayCount `json:"journalActivity"`
	LatestResult        *Outcome        `json:"latestResult,omitempty"`
}

// DashboardService computes Dashboard views.
type DashboardService struct {
	Store       *store.Store
	Assessments *AssessmentService
	// Location buckets journal entries into days; nil means UTC.
	Location *time.Location
	// Days is the number of most recent active days charted.
	Days int
}

// Summary returns the actor's dashboard.
func (s *DashboardService) Summary(ctx context.Context, actor *domain.User) Dashboard {
	email := scope(actor)
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	days := s.Days
	if days <= 0 {
		days = 7
	}
	done, total := repo.ChallengeStats(ctx, s.Store, email)
	d := Dashboard{
		CompletedChallenges: done,
		TotalChallenges:     total,
		MissedChallenges:    max(0, total-done),
		JournalEntries:      len(repo.JournalEntries(email).List(ctx, s.Store)),
		JournalActivity:     repo.JournalActivity(ctx, s.Store, email, days, loc),
	}
	if s.Assessments != nil {
		if latest, ok := s.Assessments.Latest(ctx, actor); ok {
			d.LatestResult = &latest
		}
	}
	return d
}

package services

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/observability"
	"github.com/tbourn/go-wellness-backend/internal/repo"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// JournalService keeps per-user journals. Signed-out callers write to the
// shared guest journal.
type JournalService struct {
	Store *store.Store
	Now   Clock

	// MaxRunes caps entry length; 0 disables the check.
	MaxRunes int
}

// List returns the actor's entries, newest first.
func (s *JournalService) List(ctx context.Context, actor *domain.User) []domain.JournalEntry {
	ctx, span := otel.Tracer("services/JournalService").Start(ctx, "List")
	defer span.End()
	return repo.JournalEntries(scope(actor)).List(ctx, s.Store)
}

// Add stores a new entry in front of the journal.
func (s *JournalService) Add(ctx context.Context, actor *domain.User, content string) (domain.JournalEntry, error) {
	ctx, span := otel.Tracer("services/JournalService").Start(ctx, "Add")
	defer span.End()

	content, err := text(content, s.MaxRunes)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	now := s.Now.now()
	e := domain.JournalEntry{
		ID:      stamp(now),
		Date:    now.Format("Mon Jan 02 2006"),
		Content: content,
	}
	if err := repo.JournalEntries(scope(actor)).Prepend(ctx, s.Store, e); err != nil {
		return domain.JournalEntry{}, err
	}
	observability.RecordContent("journal", "create")
	return e, nil
}

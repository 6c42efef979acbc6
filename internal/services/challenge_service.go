package services

import (
	"context"
	"errors"
	"time"
	"unicode/utf16"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/i18n"
	"github.com/tbourn/go-wellness-backend/internal/repo"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// DefaultChallenges is used when no dictionary provides challenges.list.
var DefaultChallenges = []string{
	"Write down three things you're grateful for today.",
	"Spend 5 minutes doing a mindful breathing exercise.",
	"Go for a 15-minute walk outside and notice your surroundings.",
	"Reach out to a friend or family member you haven't spoken to in a while.",
	"Do one small act of kindness for someone else.",
	"Spend 10 minutes tidying up a small area of your space.",
	"Listen to a favorite uplifting song without distractions.",
	"Write down a short-term goal you want to accomplish this week.",
	"Try a 5-minute guided meditation.",
	"Stretch your body for 10 minutes.",
	"Drink a full glass of water as soon as you wake up.",
	"Read a chapter of a book.",
	"Avoid checking social media for the first hour of your day.",
	"Compliment a stranger or a colleague.",
	"Write down one thing you like about yourself.",
}

// ChallengeService assigns one challenge per user per UTC day.
type ChallengeService struct {
	Store *store.Store
	// I18n supplies localized challenge texts; nil uses DefaultChallenges.
	I18n *i18n.Resolver
	Now  Clock
}

// Today returns the actor's challenge for today, creating it on first
// access. The text is picked by challengeIndex, so every user gets a stable
// but different rotation.
func (s *ChallengeService) Today(ctx context.Context, actor *domain.User, locale string) (domain.DailyChallenge, error) {
	ctx, span := otel.Tracer("services/ChallengeService").Start(ctx, "Today")
	defer span.End()

	now := s.Now.now().UTC()
	today := now.Format(time.DateOnly)
	email := scope(actor)
	coll := repo.Challenges(email)

	for _, c := range coll.List(ctx, s.Store) {
		if c.Date == today {
			return c, nil
		}
	}

	texts := s.texts(locale)
	c := domain.DailyChallenge{
		ID:   now.UnixMilli(),
		Text: texts[challengeIndex(now.YearDay(), email, len(texts))],
		Date: today,
	}
	if err := coll.Append(ctx, s.Store, c); err != nil {
		return domain.DailyChallenge{}, err
	}
	return c, nil
}

// challengeIndex picks the day's challenge. The per-user salt is the email
// length in UTF-16 code units so existing clients pick the same challenge.
func challengeIndex(yearDay int, email string, n int) int {
	return (yearDay + len(utf16.Encode([]rune(email)))) % n
}

// History returns every challenge assigned to the actor, oldest first.
func (s *ChallengeService) History(ctx context.Context, actor *domain.User) []domain.DailyChallenge {
	return repo.Challenges(scope(actor)).List(ctx, s.Store)
}

// Toggle flips the completion flag of challenge id in place.
func (s *ChallengeService) Toggle(ctx context.Context, actor *domain.User, id int64) (domain.DailyChallenge, error) {
	ctx, span := otel.Tracer("services/ChallengeService").Start(ctx, "Toggle")
	defer span.End()

	coll := repo.Challenges(scope(actor))
	for _, c := range coll.List(ctx, s.Store) {
		if c.ID != id {
			continue
		}
		c.Completed = !c.Completed
		if err := coll.Replace(ctx, s.Store, c); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return domain.DailyChallenge{}, ErrChallengeNotFound
			}
			return domain.DailyChallenge{}, err
		}
		return c, nil
	}
	return domain.DailyChallenge{}, ErrChallengeNotFound
}

func (s *ChallengeService) texts(locale string) []string {
	if s.I18n == nil {
		return DefaultChallenges
	}
	var list []string
	if err := s.I18n.In(locale).Decode("challenges.list", &list); err != nil || len(list) == 0 {
		log.Warn().Err(err).Str("locale", locale).Msg("challenge list unavailable, using defaults")
		return DefaultChallenges
	}
	return list
}

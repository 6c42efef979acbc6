package services

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tbourn/go-wellness-backend/internal/domain"
)

// Clock returns the current time. Services default to time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// stamp is the creation timestamp used as record id.
func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }

// scope is the per-user key suffix: the email, or guest when signed out.
func scope(actor *domain.User) string {
	if actor == nil {
		return ""
	}
	return actor.Email
}

func requireUser(actor *domain.User) error {
	if actor == nil || actor.ID == "" {
		return ErrUnauthorized
	}
	return nil
}

func requireAdmin(actor *domain.User) error {
	if err := requireUser(actor); err != nil {
		return err
	}
	if !actor.IsAdmin {
		return ErrForbidden
	}
	return nil
}

// text trims s and enforces non-empty and, when max > 0, a rune limit.
func text(s string, max int) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyContent
	}
	if max > 0 && utf8.RuneCountInString(s) > max {
		return "", ErrTooLong
	}
	return s, nil
}

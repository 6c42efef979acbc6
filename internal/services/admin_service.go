package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"

	"github.com/tbourn/go-wellness-backend/internal/auth"
	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/observability"
	"github.com/tbourn/go-wellness-backend/internal/repo"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// AdminService covers user moderation and conversation logs.
type AdminService struct {
	Store     *store.Store
	Directory *auth.Directory
}

// Users lists registered users ordered by email. The configured
// administrator is not part of the directory and is not listed.
func (s *AdminService) Users(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return repo.ListUsers(ctx, s.Store), nil
}

// DeleteUser removes a directory entry. Administrators cannot delete
// themselves or the configured administrator. The user's journal, challenges
// and results are left in place.
func (s *AdminService) DeleteUser(ctx context.Context, actor *domain.User, email string) error {
	ctx, span := otel.Tracer("services/AdminService").Start(ctx, "DeleteUser")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return err
	}
	if email == actor.Email || (s.Directory != nil && s.Directory.IsReserved(email)) {
		return ErrProtectedAccount
	}
	if err := repo.DeleteCredential(ctx, s.Store, email); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	observability.RecordContent("user", "delete")
	return nil
}

// ChatSessions returns every logged conversation in the order they ended.
func (s *AdminService) ChatSessions(ctx context.Context, actor *domain.User) ([]domain.ChatSession, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return repo.ChatSessions().List(ctx, s.Store), nil
}

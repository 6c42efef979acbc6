// Package auth holds the credential directory, the session state machine used
// by single-user clients and the signed tokens the HTTP API hands out.
//
// The directory stores passwords in clear text under the "users" key; real
// credential security is out of scope. The administrator account never lives
// in the directory: it is configured externally and checked before lookup.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/repo"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// AdminUserID is the fixed id of the configured administrator.
const AdminUserID = "admin-user"

// Admin is the externally configured administrator credential. An empty
// Password disables admin login; a non-empty Email stays reserved regardless.
type Admin struct {
	Email    string
	Password string
}

// User returns the administrator identity.
func (a Admin) User() domain.User {
	return domain.User{ID: AdminUserID, Email: a.Email, IsAdmin: true}
}

func (a Admin) matches(email, password string) bool {
	return a.Email != "" && a.Password != "" && email == a.Email && password == a.Password
}

// Directory authenticates and registers users against the persisted store.
// It holds no session state and is safe to share between requests.
type Directory struct {
	store *store.Store
	admin Admin
	now   func() time.Time
}

// NewDirectory binds a directory to s with the given administrator.
func NewDirectory(s *store.Store, admin Admin) *Directory {
	return &Directory{store: s, admin: admin, now: time.Now}
}

// Admin returns the configured administrator.
func (d *Directory) Admin() Admin { return d.admin }

// IsReserved reports whether email belongs to the administrator.
func (d *Directory) IsReserved(email string) bool {
	return d.admin.Email != "" && email == d.admin.Email
}

// Authenticate returns the user for email/password. The administrator is
// checked first and bypasses the directory. Any mismatch yields
// ErrInvalidCredentials.
func (d *Directory) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	if d.admin.matches(email, password) {
		return d.admin.User(), nil
	}
	c, err := repo.GetCredential(ctx, d.store, email)
	if err != nil || c.Password != password {
		return domain.User{}, ErrInvalidCredentials
	}
	return c.User(), nil
}

// Register creates a non-admin credential for email. The id is the creation
// timestamp.
func (d *Directory) Register(ctx context.Context, email, password string) (domain.User, error) {
	if d.IsReserved(email) {
		return domain.User{}, ErrReservedEmail
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return domain.User{}, ErrMissingCredentials
	}
	dir := repo.LoadDirectory(ctx, d.store)
	if _, ok := dir[email]; ok {
		return domain.User{}, ErrEmailAlreadyExists
	}
	c := domain.Credential{
		ID:       d.now().UTC().Format(time.RFC3339Nano),
		Email:    email,
		Password: password,
	}
	dir[email] = c
	if err := repo.SaveDirectory(ctx, d.store, dir); err != nil {
		return domain.User{}, err
	}
	return c.User(), nil
}

// Current confirms that u, taken from a previously issued token, still names
// a live account. The administrator must carry its fixed id and the reserved
// email; anyone else must still be in the directory under the same id, so a
// deleted or re-registered email no longer matches. The returned user is
// rebuilt from the directory.
func (d *Directory) Current(ctx context.Context, u domain.User) (domain.User, error) {
	if u.ID == AdminUserID {
		if !u.IsAdmin || !d.IsReserved(u.Email) {
			return domain.User{}, ErrInvalidToken
		}
		return d.admin.User(), nil
	}
	c, err := repo.GetCredential(ctx, d.store, u.Email)
	if err != nil || c.ID != u.ID {
		return domain.User{}, ErrInvalidToken
	}
	return c.User(), nil
}

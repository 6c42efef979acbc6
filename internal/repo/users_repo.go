package repo

import (
	"context"
	"sort"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// Directory is the credential map keyed by email, stored under "users".
type Directory map[string]domain.Credential

// LoadDirectory returns the stored directory, or an empty one.
func LoadDirectory(ctx context.Context, s *store.Store) Directory {
	d := store.Read[Directory](ctx, s, store.KeyUsers, nil)
	if d == nil {
		return Directory{}
	}
	return d
}

// SaveDirectory overwrites the stored directory.
func SaveDirectory(ctx context.Context, s *store.Store, d Directory) error {
	if d == nil {
		d = Directory{}
	}
	return store.Write(ctx, s, store.KeyUsers, d)
}

// GetCredential looks up email (case-sensitive).
func GetCredential(ctx context.Context, s *store.Store, email string) (domain.Credential, error) {
	c, ok := LoadDirectory(ctx, s)[email]
	if !ok {
		return domain.Credential{}, ErrNotFound
	}
	return c, nil
}

// DeleteCredential removes email from the directory.
func DeleteCredential(ctx context.Context, s *store.Store, email string) error {
	d := LoadDirectory(ctx, s)
	if _, ok := d[email]; !ok {
		return ErrNotFound
	}
	delete(d, email)
	return SaveDirectory(ctx, s, d)
}

// ListUsers returns the public view of every directory entry ordered by email.
func ListUsers(ctx context.Context, s *store.Store) []domain.User {
	d := LoadDirectory(ctx, s)
	out := make([]domain.User, 0, len(d))
	for _, c := range d {
		out = append(out, c.User())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out
}

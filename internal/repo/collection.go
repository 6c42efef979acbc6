// Package repo implements entity repositories on top of the persisted store.
// Every entity list lives under one store key as a JSON array; a repository
// is a typed view of that key.
//
// Repositories are thin: no business rules, only list manipulation and
// persistence. Read-modify-write sequences are not atomic across writers
// (last writer wins), matching the store semantics.
//
// Error semantics:
//   - Lookups of a missing id return ErrNotFound.
//   - Persistence failures are returned as produced by the store (they wrap
//     store.ErrStorageWriteFailed).
//
// Usage:
//
//	posts := repo.ForumPosts()
//	p, err := posts.Get(ctx, st, id)
//	if errors.Is(err, repo.ErrNotFound) {
//	    // handle missing
//	}
package repo

import (
	"context"
	"errors"

	"github.com/tbourn/go-wellness-backend/internal/store"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Collection is a list of T persisted under a single store key. id extracts
// the identity used by Get, Replace and Delete.
type Collection[T any] struct {
	key string
	id  func(T) string
}

// NewCollection returns a collection bound to key.
func NewCollection[T any](key string, id func(T) string) Collection[T] {
	return Collection[T]{key: key, id: id}
}

// Key returns the store key backing the collection.
func (c Collection[T]) Key() string { return c.key }

// List returns every record in stored order. A missing or corrupted key
// yields an empty, non-nil slice.
func (c Collection[T]) List(ctx context.Context, s *store.Store) []T {
	out := store.Read[[]T](ctx, s, c.key, nil)
	if out == nil {
		return []T{}
	}
	return out
}

// Get returns the record with the given id.
func (c Collection[T]) Get(ctx context.Context, s *store.Store, id string) (T, error) {
	for _, v := range c.List(ctx, s) {
		if c.id(v) == id {
			return v, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Prepend stores v in front of the existing records (newest first).
func (c Collection[T]) Prepend(ctx context.Context, s *store.Store, v T) error {
	cur := c.List(ctx, s)
	next := make([]T, 0, len(cur)+1)
	next = append(next, v)
	next = append(next, cur...)
	return store.Write(ctx, s, c.key, next)
}

// Append stores v after the existing records.
func (c Collection[T]) Append(ctx context.Context, s *store.Store, v T) error {
	return store.Write(ctx, s, c.key, append(c.List(ctx, s), v))
}

// Replace swaps the record sharing v's id in place.
func (c Collection[T]) Replace(ctx context.Context, s *store.Store, v T) error {
	cur := c.List(ctx, s)
	id := c.id(v)
	for i := range cur {
		if c.id(cur[i]) == id {
			cur[i] = v
			return store.Write(ctx, s, c.key, cur)
		}
	}
	return ErrNotFound
}

// Delete removes the record with the given id.
func (c Collection[T]) Delete(ctx context.Context, s *store.Store, id string) error {
	cur := c.List(ctx, s)
	next := make([]T, 0, len(cur))
	found := false
	for _, v := range cur {
		if c.id(v) == id {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		return ErrNotFound
	}
	return store.Write(ctx, s, c.key, next)
}

// Save overwrites the whole list.
func (c Collection[T]) Save(ctx context.Context, s *store.Store, items []T) error {
	if items == nil {
		items = []T{}
	}
	return store.Write(ctx, s, c.key, items)
}

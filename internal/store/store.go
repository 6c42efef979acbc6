// Package store implements the persisted key-value layer every repository
// writes through. Values are JSON documents kept under well-known string keys
// (see keys.go) inside a pluggable byte Engine.
//
// Semantics:
//   - Read never fails: a missing key, an engine read error or a corrupted
//     document all yield the caller's default. Corrupted entries are removed
//     so the next read starts clean.
//   - Write surfaces every failure wrapped in ErrStorageWriteFailed.
//   - There is no locking across a read followed by a write. Concurrent
//     writers to the same key follow last-writer-wins.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// ErrStorageWriteFailed wraps any failure to persist a value.
	ErrStorageWriteFailed = errors.New("storage write failed")
	// ErrQuotaExceeded is returned by engines with a capacity limit.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Engine is the raw byte store behind a Store. Get reports ok=false for a
// missing key; Delete of a missing key is not an error.
type Engine interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store encodes and decodes JSON values on top of an Engine.
type Store struct {
	engine Engine
	log    zerolog.Logger
}

// New wraps engine. The store logs through the global zerolog logger.
func New(engine Engine) *Store {
	return &Store{engine: engine, log: log.With().Str("component", "store").Logger()}
}

// Engine exposes the underlying engine (used by health checks).
func (s *Store) Engine() Engine { return s.engine }

// Read decodes the value stored under key into a T. It returns def when the
// key is missing, holds JSON null, cannot be read or cannot be decoded.
func Read[T any](ctx context.Context, s *Store, key string, def T) T {
	raw, ok, err := s.engine.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("read failed, using default")
		return def
	}
	if !ok || len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("corrupted entry discarded")
		if derr := s.engine.Delete(ctx, key); derr != nil {
			s.log.Warn().Err(derr).Str("key", key).Msg("discard corrupted entry")
		}
		return def
	}
	return v
}

// Write encodes v and stores it under key.
func Write[T any](ctx context.Context, s *Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStorageWriteFailed, key, err)
	}
	if err := s.engine.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStorageWriteFailed, key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key succeeds.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.engine.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStorageWriteFailed, key, err)
	}
	return nil
}

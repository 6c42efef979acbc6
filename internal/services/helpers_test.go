package services

import (
	"context"
	"testing"
	"time"

	"github.com/tbourn/go-wellness-backend/internal/assistant"
	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// ---------- test helpers ----------

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.NewMemoryEngine(0))
}

// tick returns a clock that advances one millisecond per call.
func tick(start time.Time) Clock {
	cur := start
	return func() time.Time {
		cur = cur.Add(time.Millisecond)
		return cur
	}
}

var (
	t0    = time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)
	alice = &domain.User{ID: "u1", Email: "alice@e.com"}
	bob   = &domain.User{ID: "u2", Email: "bob@e.com"}
	admin = &domain.User{ID: "admin-user", Email: "admin@e.com", IsAdmin: true}
)

type fakeProvider struct {
	chunks []string
	err    error
	// failAfter emits chunks before returning err
	failAfter bool
	got       []assistant.Request
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Stream(ctx context.Context, req assistant.Request, onChunk func(string) error) error {
	f.got = append(f.got, req)
	if f.err != nil && !f.failAfter {
		return f.err
	}
	for _, c := range f.chunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := onChunk(c); err != nil {
			return err
		}
	}
	return f.err
}

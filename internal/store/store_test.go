package store

import (
	"context"
	"errors"
	"testing"
)

type failingEngine struct {
	*MemoryEngine
	setErr error
	getErr error
}

func (f *failingEngine) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.MemoryEngine.Get(ctx, key)
}

func (f *failingEngine) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.MemoryEngine.Set(ctx, key, value)
}

func TestRead_MissingKeyReturnsDefault(t *testing.T) {
	s := New(NewMemoryEngine(0))
	got := Read(context.Background(), s, "nope", []string{"d"})
	if len(got) != 1 || got[0] != "d" {
		t.Fatalf("expected default, got %v", got)
	}
}

func TestWriteThenRead_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryEngine(0))
	type rec struct {
		A string `json:"a"`
		B int    `json:"b"`
	}
	if err := Write(ctx, s, "k", []rec{{"x", 1}, {"y", 2}}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := Read[[]rec](ctx, s, "k", nil)
	if len(got) != 2 || got[1].A != "y" || got[1].B != 2 {
		t.Fatalf("unexpected read: %+v", got)
	}
}

func TestRead_CorruptValueFallsBackAndIsRemoved(t *testing.T) {
	ctx := context.Background()
	eng := NewMemoryEngine(0)
	_ = eng.Set(ctx, "users", []byte("{not json"))
	s := New(eng)

	got := Read(ctx, s, "users", map[string]int{"fallback": 1})
	if got["fallback"] != 1 {
		t.Fatalf("expected default on corrupt entry, got %v", got)
	}
	if _, ok, _ := eng.Get(ctx, "users"); ok {
		t.Fatalf("corrupt entry should have been removed")
	}
}

func TestRead_NullAndBlankAreTreatedAsMissing(t *testing.T) {
	ctx := context.Background()
	eng := NewMemoryEngine(0)
	_ = eng.Set(ctx, "a", []byte("null"))
	_ = eng.Set(ctx, "b", []byte("   "))
	s := New(eng)
	if got := Read(ctx, s, "a", 7); got != 7 {
		t.Fatalf("null: got %d", got)
	}
	if got := Read(ctx, s, "b", 7); got != 7 {
		t.Fatalf("blank: got %d", got)
	}
}

func TestRead_EngineErrorReturnsDefault(t *testing.T) {
	s := New(&failingEngine{MemoryEngine: NewMemoryEngine(0), getErr: errors.New("io")})
	if got := Read(context.Background(), s, "k", "def"); got != "def" {
		t.Fatalf("got %q", got)
	}
}

func TestWrite_EngineErrorIsSurfaced(t *testing.T) {
	boom := errors.New("disk full")
	s := New(&failingEngine{MemoryEngine: NewMemoryEngine(0), setErr: boom})
	err := Write(context.Background(), s, "k", 1)
	if !errors.Is(err, ErrStorageWriteFailed) || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped write failure, got %v", err)
	}
}

func TestWrite_UnencodableValue(t *testing.T) {
	s := New(NewMemoryEngine(0))
	err := Write(context.Background(), s, "k", func() {})
	if !errors.Is(err, ErrStorageWriteFailed) {
		t.Fatalf("expected ErrStorageWriteFailed, got %v", err)
	}
}

func TestMemoryEngine_QuotaExceeded(t *testing.T) {
	ctx := context.Background()
	eng := NewMemoryEngine(10)
	s := New(eng)
	if err := Write(ctx, s, "k", "abc"); err != nil { // 1 + 5 bytes
		t.Fatalf("first write: %v", err)
	}
	err := Write(ctx, s, "k2", "abcdefgh")
	if !errors.Is(err, ErrQuotaExceeded) || !errors.Is(err, ErrStorageWriteFailed) {
		t.Fatalf("expected quota error, got %v", err)
	}
	// overwriting the same key only counts the delta
	if err := Write(ctx, s, "k", "abcd"); err != nil {
		t.Fatalf("overwrite within quota: %v", err)
	}
	if eng.Used() != 1+6 {
		t.Fatalf("Used = %d; want 7", eng.Used())
	}
	_ = s.Remove(ctx, "k")
	if eng.Used() != 0 {
		t.Fatalf("Used after remove = %d", eng.Used())
	}
}

func TestMemoryEngine_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	eng := NewMemoryEngine(0)
	_ = eng.Set(ctx, "k", []byte("abc"))
	v, _, _ := eng.Get(ctx, "k")
	v[0] = 'z'
	again, _, _ := eng.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("engine value mutated through Get: %q", again)
	}
}

func TestUserKey(t *testing.T) {
	if got := UserKey(PrefixJournal, "u@e.com"); got != "journalEntries_u@e.com" {
		t.Fatalf("got %q", got)
	}
	if got := UserKey(PrefixTests, ""); got != "testResults_guest" {
		t.Fatalf("got %q", got)
	}
	if UserKey(PrefixChallenges, "a@x.io") == UserKey(PrefixChallenges, "b@x.io") {
		t.Fatalf("distinct users must not share keys")
	}
}

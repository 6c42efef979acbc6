package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Runs only against a live server: REDIS_ADDR=localhost:6379 go test ./...
func TestRedisEngine_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	eng := NewRedisEngine(client, "test:"+uuid.NewString()+":")
	s := New(eng)
	if got := Read(ctx, s, KeyUsers, map[string]string{}); len(got) != 0 {
		t.Fatalf("expected empty default, got %v", got)
	}
	if err := Write(ctx, s, KeyUsers, map[string]string{"a": "b"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := Read(ctx, s, KeyUsers, map[string]string{}); got["a"] != "b" {
		t.Fatalf("Read = %v", got)
	}
	if err := s.Remove(ctx, KeyUsers); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := eng.Get(ctx, KeyUsers); ok {
		t.Fatalf("expected key removed")
	}
}

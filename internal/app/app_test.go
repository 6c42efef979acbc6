package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tbourn/go-wellness-backend/internal/assistant"
	"github.com/tbourn/go-wellness-backend/internal/config"
	"github.com/tbourn/go-wellness-backend/internal/i18n"
	"github.com/tbourn/go-wellness-backend/internal/services"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

func TestOpenStore_Memory(t *testing.T) {
	s, closeFn, err := OpenStore(context.Background(), config.StoreConfig{Driver: config.DriverMemory})
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer closeFn()
	if _, ok := s.Engine().(*store.MemoryEngine); !ok {
		t.Fatalf("engine = %T, want *store.MemoryEngine", s.Engine())
	}
}

func TestOpenStore_SQLitePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "resi.db")
	cfg := config.StoreConfig{Driver: config.DriverSQLite, DBPath: path}

	s, closeFn, err := OpenStore(ctx, cfg)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	if err := store.Write(ctx, s, store.KeyLanguage, "vi"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s, closeFn, err = OpenStore(ctx, cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer closeFn()
	if got := store.Read(ctx, s, store.KeyLanguage, ""); got != "vi" {
		t.Fatalf("language = %q, want vi", got)
	}
}

func TestOpenStore_Errors(t *testing.T) {
	ctx := context.Background()
	cases := []config.StoreConfig{
		{Driver: "etcd"},
		{Driver: config.DriverSQLite, DBPath: filepath.Join(t.TempDir(), "missing", "resi.db")},
		{Driver: config.DriverRedis, RedisAddr: "127.0.0.1:1"},
	}
	for _, cfg := range cases {
		t.Run(cfg.Driver, func(t *testing.T) {
			s, closeFn, err := OpenStore(ctx, cfg)
			if err == nil {
				t.Fatalf("expected error for %+v", cfg)
			}
			if s != nil || closeFn == nil {
				t.Fatalf("want nil store and non-nil close, got %v closeFn==nil:%t", s, closeFn == nil)
			}
		})
	}
}

func TestNewProvider(t *testing.T) {
	if p := NewProvider(config.AssistantConfig{Provider: config.ProviderLocal}); p.Name() != "local" {
		t.Fatalf("local provider name = %q", p.Name())
	}
	p := NewProvider(config.AssistantConfig{Provider: config.ProviderGemini, GeminiModel: "gemini-1.5-flash", Timeout: time.Second})
	if _, ok := p.(*assistant.Gemini); !ok {
		t.Fatalf("provider = %T, want *assistant.Gemini", p)
	}
}

func TestLoadTranslations_EmbeddedAndDir(t *testing.T) {
	ctx := context.Background()

	res := i18n.New(nil, "en")
	if err := LoadTranslations(ctx, res, ""); err != nil {
		t.Fatalf("embedded: %v", err)
	}
	if !res.Supports("vi") {
		t.Fatalf("embedded dictionaries should include vi, got %v", res.Locales())
	}

	res = i18n.New(nil, "en")
	if err := LoadTranslations(ctx, res, filepath.Join("..", "i18n", "locales")); err != nil {
		t.Fatalf("dir: %v", err)
	}
	if !res.Loaded() || !res.Supports("en") {
		t.Fatalf("dir dictionaries not loaded: %v", res.Locales())
	}
}

func TestNewHandlers_Wiring(t *testing.T) {
	s := store.New(store.NewMemoryEngine(0))
	res := i18n.New(nil, "en")
	cfg := config.Config{
		Auth: config.AuthConfig{
			AdminEmail: "admin@resi.app", AdminPassword: "pw",
			JWTSecret: "0123456789abcdef-test", JWTIssuer: "resi", JWTTTL: time.Hour,
		},
		Assistant: config.AssistantConfig{MaxPromptRunes: 123},
	}
	h := NewHandlers(s, res, assistant.NewLocal(), cfg)

	if h.Chat.MaxPromptRunes != 123 {
		t.Fatalf("MaxPromptRunes = %d", h.Chat.MaxPromptRunes)
	}
	if h.Admin.Directory.Admin().Email != "admin@resi.app" {
		t.Fatalf("admin not wired")
	}
	if h.Dashboard.Assessments != h.Assessments {
		t.Fatalf("dashboard should share the assessment service")
	}

	sess, err := h.Accounts.Login(context.Background(), "admin@resi.app", "pw")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	u, err := h.Accounts.Verify(context.Background(), sess.Token)
	if err != nil || !u.IsAdmin {
		t.Fatalf("Verify = %+v, %v", u, err)
	}
}

func TestRunSweeper_ClosesIdleConversations(t *testing.T) {
	s := store.New(store.NewMemoryEngine(0))
	chat := services.NewChatService(s, assistant.NewLocal())
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	chat.Now = func() time.Time { return start }
	conv := chat.Begin(nil)

	chat.Now = func() time.Time { return start.Add(time.Hour) }
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunSweeper(ctx, chat, 5*time.Millisecond, time.Minute)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		if _, err := chat.Lookup(nil, conv.ID()); errors.Is(err, services.ErrItemNotFound) {
			break
		}
		select {
		case <-deadline:
			cancel()
			t.Fatal("conversation was not swept")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	<-done
}

func TestRunSweeper_DisabledReturns(t *testing.T) {
	chat := services.NewChatService(store.New(store.NewMemoryEngine(0)), assistant.NewLocal())
	done := make(chan struct{})
	go func() {
		RunSweeper(context.Background(), chat, 0, time.Minute)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunSweeper with zero interval should return immediately")
	}
}

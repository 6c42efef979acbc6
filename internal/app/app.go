// Package app assembles the server from configuration: it opens the
// selected storage engine, picks the assistant provider, loads translations
// and wires the services behind the HTTP handlers.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-wellness-backend/internal/assistant"
	"github.com/tbourn/go-wellness-backend/internal/auth"
	"github.com/tbourn/go-wellness-backend/internal/config"
	"github.com/tbourn/go-wellness-backend/internal/http/handlers"
	"github.com/tbourn/go-wellness-backend/internal/i18n"
	"github.com/tbourn/go-wellness-backend/internal/services"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// OpenStore opens the engine named by cfg.Driver. The returned func releases
// the underlying connection and is never nil.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (*store.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverMemory, "":
		return store.New(store.NewMemoryEngine(cfg.QuotaBytes)), noop, nil

	case config.DriverSQLite:
		db, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite %q: %w", cfg.DBPath, err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, err
		}
		if err := store.AutoMigrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, noop, fmt.Errorf("migrate: %w", err)
		}
		log.Info().Str("driver", cfg.Driver).Str("path", cfg.DBPath).Msg("store opened")
		return store.New(store.NewSQLiteEngine(db)), sqlDB.Close, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
		}
		log.Info().Str("driver", cfg.Driver).Str("addr", cfg.RedisAddr).Msg("store opened")
		return store.New(store.NewRedisEngine(client, cfg.RedisKey)), client.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// NewProvider returns the configured assistant. A Gemini provider without an
// API key is still returned; conversations then fail with ErrAPIKeyMissing.
func NewProvider(cfg config.AssistantConfig) assistant.Provider {
	if cfg.Provider == config.ProviderLocal {
		return assistant.NewLocal()
	}
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set; chat replies will report a missing key")
	}
	return assistant.NewGemini(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Timeout)
}

// LoadTranslations fills res from dir, or from the embedded dictionaries
// when dir is empty.
func LoadTranslations(ctx context.Context, res *i18n.Resolver, dir string) error {
	if dir == "" {
		return res.LoadEmbedded(ctx)
	}
	return res.Load(ctx, os.DirFS(dir))
}

// NewHandlers wires every service over s.
func NewHandlers(s *store.Store, res *i18n.Resolver, p assistant.Provider, cfg config.Config) *handlers.Handlers {
	dir := auth.NewDirectory(s, auth.Admin{Email: cfg.Auth.AdminEmail, Password: cfg.Auth.AdminPassword})
	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTTTL)
	assessments := &services.AssessmentService{Store: s}

	chat := services.NewChatService(s, p)
	if cfg.Assistant.MaxPromptRunes > 0 {
		chat.MaxPromptRunes = cfg.Assistant.MaxPromptRunes
	}

	return &handlers.Handlers{
		Accounts:    &services.AccountService{Directory: dir, Tokens: tokens},
		Journal:     &services.JournalService{Store: s},
		Challenges:  &services.ChallengeService{Store: s, I18n: res},
		Assessments: assessments,
		Forum:       services.NewForumService(s),
		Catalog:     &services.CatalogService{Store: s},
		Admin:       &services.AdminService{Store: s, Directory: dir},
		Dashboard:   &services.DashboardService{Store: s, Assessments: assessments, Days: 7},
		Chat:        chat,
		I18n:        res,
	}
}

// RunSweeper closes conversations idle for longer than idle every interval
// until ctx is done. A non-positive interval or idle disables sweeping.
func RunSweeper(ctx context.Context, chat *services.ChatService, interval, idle time.Duration) {
	if interval <= 0 || idle <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := chat.Sweep(ctx, idle); n > 0 {
				log.Info().Int("closed", n).Msg("idle conversations closed")
			}
		}
	}
}

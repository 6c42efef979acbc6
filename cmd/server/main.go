// Command server runs the Resi wellness HTTP API.
//
//	@title						Resi wellness API
//	@version					1.0
//	@description				Journaling, daily challenges, DASS-21 self assessment, a community forum and an AI assistant.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-wellness-backend/internal/app"
	"github.com/tbourn/go-wellness-backend/internal/config"
	httpapi "github.com/tbourn/go-wellness-backend/internal/http"
	"github.com/tbourn/go-wellness-backend/internal/i18n"
	"github.com/tbourn/go-wellness-backend/internal/observability"
	"github.com/tbourn/go-wellness-backend/internal/sysutil"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 15 * time.Second

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.ConfigureLogging(os.Stderr, cfg.OTEL.ServiceName, cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, nil); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// run serves until ctx is cancelled or the listener fails. ready, when not
// nil, receives the bound address once the server accepts connections.
func run(ctx context.Context, cfg config.Config, ready chan<- string) error {
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		return err
	}

	s, closeStore, err := app.OpenStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("closing store")
		}
	}()

	res := i18n.New(nil, cfg.I18n.DefaultLocale)
	go func() {
		if err := app.LoadTranslations(ctx, res, cfg.I18n.LocalesDir); err != nil {
			log.Error().Err(err).Str("dir", cfg.I18n.LocalesDir).Msg("loading translations")
		}
	}()

	h := app.NewHandlers(s, res, app.NewProvider(cfg.Assistant), cfg)
	r := gin.New()
	httpapi.RegisterRoutes(r, h, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", srv.Addr)
	if err != nil {
		return err
	}
	log.Info().
		Str("addr", ln.Addr().String()).
		Str("store", cfg.Store.Driver).
		Str("assistant", cfg.Assistant.Provider).
		Str("version", version).
		Msg("server listening")
	if ready != nil {
		ready <- ln.Addr().String()
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go app.RunSweeper(sweepCtx, h.Chat, cfg.Assistant.SweepInterval, cfg.Assistant.IdleTimeout)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(shCtx); err != nil {
		errs = append(errs, err)
	}
	stopSweep()
	h.Chat.CloseAll(shCtx)
	if err := shutdownOTel(shCtx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

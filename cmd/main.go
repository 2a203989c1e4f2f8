package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rawafid/taqyim/internal/adapters/http/api"
	"github.com/rawafid/taqyim/internal/adapters/http/swagger"
	"github.com/rawafid/taqyim/internal/app"
	"github.com/rawafid/taqyim/internal/config"
	"github.com/rawafid/taqyim/internal/domain/catalog"
	"github.com/rawafid/taqyim/internal/i18n"
	"github.com/rawafid/taqyim/internal/notify"
	"github.com/rawafid/taqyim/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Rubric catalog: external document or built-in. Invariant violations
	// (weight sums off 20/80) refuse startup here.
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			log.Error(ctx, "catalog rejected", logger.String("path", cfg.CatalogPath), logger.Error(err))
			return
		}
		log.Info(ctx, "loaded external catalog", logger.String("path", cfg.CatalogPath))
	}

	var sender notify.Sender = notify.NopSender{}
	if cfg.NotifyEnabled {
		sender = notify.NewTelegramSender(cfg.TelegramBotToken, cfg.TelegramChatID,
			notify.WithTimeout(time.Duration(cfg.SendTimeoutMS)*time.Millisecond))
		log.Info(ctx, "telegram notifications enabled", logger.String("chat_id", cfg.TelegramChatID))
	} else {
		log.Info(ctx, "notifications disabled; reports will be discarded")
	}

	lang, err := i18n.Parse(cfg.DefaultLanguage)
	if err != nil {
		os.Stderr.WriteString("invalid default_language: " + err.Error() + "\n")
		return
	}

	session := app.New(
		app.WithCatalog(cat),
		app.WithSender(sender),
		app.WithLogger(log),
		app.WithLanguage(lang),
	)
	if cfg.InitialDepartment != "" {
		session.SelectDepartment(ctx, cfg.InitialDepartment)
	}

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(session)
	apiServer.Register(ctx, mux)
	swagger.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

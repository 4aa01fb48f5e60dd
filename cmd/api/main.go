package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Reeshadali/PG/internal/config"
	"github.com/Reeshadali/PG/internal/handler/api"
	"github.com/Reeshadali/PG/internal/logger"
	cMiddleware "github.com/Reeshadali/PG/internal/middleware"
	"github.com/Reeshadali/PG/internal/port"
	"github.com/Reeshadali/PG/internal/session"
	"github.com/Reeshadali/PG/internal/store"
	"github.com/Reeshadali/PG/internal/usecase/locker"
	lockeruuid "github.com/Reeshadali/PG/internal/uuid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	userStore := initStore(ctx, cfg)
	seedAccounts(ctx, userStore)

	sessions, err := session.NewManager(cfg.SessionSecret)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialise sessions: %v", err)
		os.Exit(1)
	}

	limits := locker.Limits{
		MaxUploadSize:  cfg.MaxUploadSize,
		MaxStorageSize: cfg.MaxStorageSize,
	}

	r := initRouter(ctx)

	authSvc := locker.NewAuthenticator(userStore)
	r.Post("/login", api.LoginHandler(authSvc, sessions))
	r.Post("/logout", api.LogoutHandler(sessions))

	r.Group(func(pr chi.Router) {
		pr.Use(cMiddleware.WithSession(sessions))

		uploaderSvc := locker.NewUploader(userStore, limits, lockeruuid.NewUUID)
		pr.Post("/media", api.UploadMediaHandler(uploaderSvc))

		gallerySvc := locker.NewGallery(userStore)
		pr.Get("/media", api.ListMediaHandler(gallerySvc))
		pr.With(cMiddleware.WithItemID()).
			Get("/media/{id}/download", api.DownloadMediaHandler(gallerySvc))

		deleteSvc := locker.NewMediaDeleter(userStore)
		pr.With(cMiddleware.WithItemID()).
			Delete("/media/{id}", api.DeleteMediaHandler(deleteSvc))

		exportSvc := locker.NewExporter(userStore)
		pr.Get("/media/export", api.ExportMediaHandler(exportSvc))

		meterSvc := locker.NewMeter(userStore, limits)
		pr.Get("/usage", api.UsageHandler(meterSvc))
	})

	listenRouter(ctx, r, cfg)
}

func initStore(ctx context.Context, cfg *config.Settings) port.UserStore {
	if cfg.RedisAddr != "" {
		logger.Info(ctx, "✅  Redis user store enabled")
		return store.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
	}
	logger.Warnf(ctx, "⚠️  Redis not configured, using file store at %s", cfg.DataFile)
	return store.NewFileStore(cfg.DataFile)
}

func seedAccounts(ctx context.Context, userStore port.UserStore) {
	seeded, err := locker.EnsureSeeded(ctx, userStore)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to seed accounts: %v", err)
		os.Exit(1)
	}
	if seeded {
		logger.Infof(ctx, "✅  Seeded account %q with password %q, create new users with the admin tool",
			locker.DefaultUsername, locker.DefaultPassword)
	}
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")
}

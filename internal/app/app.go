package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avoronov/certprep-backend/internal/adapter/postgres"
	"github.com/avoronov/certprep-backend/internal/adapter/postgres/flashcard"
	"github.com/avoronov/certprep-backend/internal/adapter/postgres/progress"
	"github.com/avoronov/certprep-backend/internal/adapter/postgres/reviewlog"
	"github.com/avoronov/certprep-backend/internal/auth"
	"github.com/avoronov/certprep-backend/internal/config"
	"github.com/avoronov/certprep-backend/internal/service/study"
	"github.com/avoronov/certprep-backend/internal/transport/middleware"
	"github.com/avoronov/certprep-backend/internal/transport/rest"
)

// Run is the application entry point: it loads configuration, connects to
// the database, wires services and the HTTP transport, and serves until the
// context is cancelled. Shutdown drains in-flight requests up to the
// configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	flashcardRepo := flashcard.New(pool)
	progressRepo := progress.New(pool)
	reviewLogRepo := reviewlog.New(pool)

	studySvc := study.NewService(logger, flashcardRepo, progressRepo, reviewLogRepo, txManager, cfg.Study)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	studyHandler := rest.NewStudyHandler(studySvc, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	router := rest.NewRouter(studyHandler, healthHandler)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(300),
		middleware.Auth(jwtManager),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      chain(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

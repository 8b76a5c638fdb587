package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/moodlog-backend/internal/adapter/postgres"
	moodrepo "github.com/heartmarshall/moodlog-backend/internal/adapter/postgres/mood"
	userrepo "github.com/heartmarshall/moodlog-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/moodlog-backend/internal/auth"
	"github.com/heartmarshall/moodlog-backend/internal/config"
	moodsvc "github.com/heartmarshall/moodlog-backend/internal/service/mood"
	usersvc "github.com/heartmarshall/moodlog-backend/internal/service/user"
	"github.com/heartmarshall/moodlog-backend/internal/transport/dataloader"
	"github.com/heartmarshall/moodlog-backend/internal/transport/middleware"
	"github.com/heartmarshall/moodlog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Mood.Location.String()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	handler, closeHandler := NewHandler(cfg, pool, logger)
	defer closeHandler()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// NewHandler wires repositories, services and the middleware stack over
// pool and returns the root HTTP handler. The returned func releases the
// rate limiter.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func()) {
	txManager := postgres.NewTxManager(pool)
	moods := moodrepo.New(pool)
	users := userrepo.New(pool)

	moodService := moodsvc.NewService(logger, moods, moodsvc.Config{
		Location:         cfg.Mood.Location,
		StrictFilters:    cfg.Mood.StrictFilters,
		DefaultPageSize:  cfg.Mood.HistoryPageSize,
		ExportMaxRecords: cfg.Mood.ExportMaxRecords,
	})
	userService := usersvc.NewService(logger, users, moods, txManager)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	health := rest.NewHealthHandler(pool, Version)

	limit, closeLimiter := newRateLimit(cfg.RateLimit, logger, health)

	router := rest.NewRouter(rest.Handlers{
		Health: health,
		Mood:   rest.NewMoodHandler(moodService, logger, cfg.Mood.DefaultStatsWindow, cfg.Mood.HistoryPageSize),
		User:   rest.NewUserHandler(userService, logger),
		API:    dataloader.Middleware(&dataloader.Repos{User: users}),
	})

	// Auth runs before Logger so access logs carry the caller.
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
		limit,
	)(router)

	return handler, closeLimiter
}

// newRateLimit builds the rate limit middleware, nil when disabled. A
// configured Redis address shares buckets between instances and is
// registered as a health component.
func newRateLimit(cfg config.RateLimitConfig, logger *slog.Logger, health *rest.HealthHandler) (middleware.Middleware, func()) {
	if !cfg.Enabled {
		return nil, func() {}
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		health.WithComponent("redis", rest.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}))
		logger.Info("rate limiter uses redis", slog.String("addr", cfg.RedisAddr))
		limiter := middleware.NewRedisLimiter(client, cfg.RedisKeyPrefix)
		return middleware.RateLimit(limiter, cfg.RequestsPerMin, logger), func() { _ = client.Close() }
	}

	limiter := middleware.NewRateLimiter(cfg.CleanupInterval)
	return middleware.RateLimit(limiter, cfg.RequestsPerMin, logger), limiter.Stop
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}

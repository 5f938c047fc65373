package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nurpe/factory-records/internal/auth"
	"github.com/nurpe/factory-records/internal/config"
	"github.com/nurpe/factory-records/internal/db"
	"github.com/nurpe/factory-records/internal/excel"
	httphandler "github.com/nurpe/factory-records/internal/http"
	"github.com/nurpe/factory-records/internal/http/middleware"
	"github.com/nurpe/factory-records/internal/logger"
	"github.com/nurpe/factory-records/internal/pdf"
	"github.com/nurpe/factory-records/internal/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)

	database, err := db.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}

	records := service.NewRegistry(database)
	exports := service.NewExportService(excel.NewGenerator(), pdf.NewGenerator())
	handler := httphandler.NewHandler(records, exports, sqlDB, log)

	authMiddleware := middleware.NoAuth()
	if cfg.Auth.AccessSecret != "" {
		authMiddleware = middleware.Auth(auth.NewParser(cfg.Auth.AccessSecret))
	} else {
		log.Warn().Msg("JWT_ACCESS_SECRET is empty, record routes are not authenticated")
	}

	var extra []gin.HandlerFunc
	if cfg.RateLimitEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, rate limiter will fail open")
		}
		extra = append(extra, middleware.RateLimit(rdb, "api", cfg.RateLimit.Requests, cfg.RateLimit.Window, middleware.ClientIPKey, log))
	}

	router := httphandler.NewRouter(handler, authMiddleware, log, httphandler.RouterOptions{
		Environment:    cfg.Environment,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Middleware:     extra,
	})

	srv := &http.Server{Addr: cfg.Addr(), Handler: router}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("starting records service")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		log.Info().Msg("server stopped")
		return nil
	})
	return g.Wait()
}

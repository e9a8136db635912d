package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"go-gin-event-program/config"
	"go-gin-event-program/internal/auth"
	"go-gin-event-program/internal/cache"
	"go-gin-event-program/internal/database"
	"go-gin-event-program/internal/handler"
	"go-gin-event-program/internal/queue"
	"go-gin-event-program/internal/realtime"
	"go-gin-event-program/internal/repository"
	"go-gin-event-program/internal/service"
	"go-gin-event-program/internal/worker"
	"go-gin-event-program/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const peerOutboxSize = 32

func main() {
	defer logger.Sync()

	if err := run(); err != nil {
		logger.L.Fatal("Server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logger.WithComponent("server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	var rdb *redis.Client
	if cfg.NeedsRedis() {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			return fmt.Errorf("initialize redis: %w", err)
		}
		defer rdb.Close()
	}

	var updates queue.StepUpdateQueue
	switch cfg.Broadcast.Backend {
	case "redis":
		updates = queue.NewRedisPubSubStepUpdateQueue(rdb, cfg.Broadcast.BufferSize, nil)
	case "memory":
		updates = queue.NewStepUpdateQueue(cfg.Broadcast.BufferSize)
	default:
		return fmt.Errorf("unknown broadcast backend %q", cfg.Broadcast.Backend)
	}
	defer updates.Close()

	hub := realtime.NewHub(peerOutboxSize)
	broadcaster := worker.NewBroadcastWorker(updates, hub)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if err := broadcaster.Start(workerCtx); err != nil {
		return err
	}

	repo := repository.NewEventRepository(pool)
	if cfg.Cache.Enabled {
		repo = repository.NewCachedEventRepository(repo, cache.NewRedisEventCache(rdb, cfg.Cache.TTL))
	}
	events := service.NewEventService(repo, nil)
	program := service.NewProgramService(repo, updates, nil)

	verifier, err := newVerifier(&cfg.Auth, pool)
	if err != nil {
		return fmt.Errorf("configure admin credentials: %w", err)
	}
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	requireAdmin := handler.RequireAdmin(tokens)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestLogger())

	health := map[string]handler.Pinger{"postgres": pool}
	if rdb != nil {
		health["redis"] = handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}

	api := router.Group(cfg.HTTP.APIPrefix)
	handler.NewHealthHandler(health).RegisterRoutes(api)
	handler.NewPublicHandler(events).RegisterRoutes(api)
	handler.NewAuthHandler(verifier, tokens).RegisterRoutes(api)
	handler.NewAdminHandler(events, program).RegisterRoutes(api, requireAdmin)
	handler.NewUploadHandler(cfg.Upload.Dir, cfg.Upload.MaxBytes).RegisterRoutes(api, requireAdmin)

	router.GET("/ws", gin.WrapH(hub.Handler()))
	router.Static("/uploads", cfg.Upload.Dir)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: corsHandler.Handler(router),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server listening",
			zap.String("addr", srv.Addr),
			zap.String("broadcast", cfg.Broadcast.Backend),
			zap.String("auth", cfg.Auth.Backend),
			zap.Bool("cache", cfg.Cache.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", zap.Error(err))
	}

	stopWorker()
	select {
	case <-broadcaster.Done():
	case <-shutdownCtx.Done():
		log.Warn("Broadcast worker did not drain before timeout")
	}
	return nil
}

func newVerifier(cfg *config.AuthConfig, pool *pgxpool.Pool) (auth.CredentialVerifier, error) {
	switch cfg.Backend {
	case "static":
		return auth.NewStaticAdminVerifier(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash)
	case "db":
		return auth.NewDBCredentialVerifier(repository.NewAdminRepository(pool))
	default:
		return nil, fmt.Errorf("unknown auth backend %q", cfg.Backend)
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-recruitment-ops/config"
	_ "go-recruitment-ops/docs" // Important for Swagger
	v1 "go-recruitment-ops/internal/delivery/http/v1"
	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/internal/repository/memory"
	"go-recruitment-ops/internal/repository/postgres"
	"go-recruitment-ops/internal/repository/records"
	"go-recruitment-ops/internal/usecase"
	"go-recruitment-ops/pkg/database"
	"go-recruitment-ops/pkg/lock"
	"go-recruitment-ops/pkg/logger"
	"go-recruitment-ops/pkg/redis"
	"go-recruitment-ops/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Recruitment Operations API
// @version         1.0
// @description     Staff backend for clients, projects, candidate dossiers, search, statistics and shortlists.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting recruitment operations backend", "port", cfg.Port, "store", cfg.StoreDriver)

	ctx := context.Background()

	// 3. Setup Record Store
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to open record store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	var locker domain.Locker = lock.NewLocal()
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting and locks", "error", err)
		} else {
			defer redisClient.Close()
			locker = lock.NewRedis(redisClient, "ops:lock:", time.Duration(cfg.SyncLockTTLSeconds)*time.Second)
			logger.Log.Info("Redis connected")
		}
	}

	// 5. Setup Repositories
	clientRepo := records.NewClientRepository(store)
	projectRepo := records.NewProjectRepository(store)
	candidateRepo := records.NewCandidateRepository(store)
	shortlistRepo := records.NewShortlistRepository(store)

	// 6. Setup UseCases
	validate := validation.New()
	now := usecase.Clock(time.Now)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		DashboardUC: usecase.NewDashboardUsecase(clientRepo, projectRepo, candidateRepo),
		SearchUC:    usecase.NewSearchUsecase(candidateRepo, now),
		ClientUC:    usecase.NewClientUsecase(clientRepo, validate),
		ProjectUC:   usecase.NewProjectUsecase(projectRepo, clientRepo, validate),
		CandidateUC: usecase.NewCandidateUsecase(candidateRepo, projectRepo, validate),
		ShortlistUC: usecase.NewShortlistUsecase(shortlistRepo, candidateRepo, projectRepo, locker, validate, now),
		HealthUC:    usecase.NewHealthUsecase(store, redisClient),
		Redis:       redisClient,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// openStore builds the configured RecordStore and its close function
func openStore(ctx context.Context, cfg *config.Config) (domain.RecordStore, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		var seed map[string][]domain.Row
		if cfg.MemorySeedFile != "" {
			var err error
			if seed, err = memory.LoadSeedFile(cfg.MemorySeedFile); err != nil {
				return nil, nil, err
			}
		}
		return memory.NewStore(seed), func() {}, nil
	}

	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		return nil, nil, err
	}
	if cfg.MigrateOnStart {
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
	}
	return postgres.NewRecordStore(pool), pool.Close, nil
}

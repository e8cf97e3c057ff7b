package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pitchhub/internal/api"
	"pitchhub/internal/cache"
	"pitchhub/internal/config"
	applogger "pitchhub/internal/logger"
	"pitchhub/internal/metrics"
	"pitchhub/internal/middleware"
	"pitchhub/internal/models"
	"pitchhub/internal/repository"
	"pitchhub/internal/service"
	"pitchhub/internal/storage"
	"pitchhub/internal/token"
	"pitchhub/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := applogger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfg.JWT.Secret == "" {
		logger.Fatal("jwt secret is not configured (set PITCHHUB_JWT_SECRET)")
	}

	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.User{}, &models.Pitch{}, &models.Offer{}, &models.Deal{}); err != nil {
		logger.Fatal("failed to auto migrate database", zap.Error(err))
	}

	// Listing cache is optional: no redis address, no cache.
	var listing *cache.Listing
	if cfg.Redis.Addr != "" {
		rdb, err := cache.ConnectRedis(cfg.Redis.Addr)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		listing = cache.NewListing(rdb, cfg.Redis.TTL)
	}

	tokens := token.NewManager(cfg.JWT.Secret, cfg.JWT.TTL)
	hub := ws.NewHub()

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, tokens, listing, hub, logger)

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestLogger(logger),
		middleware.HTTPMetrics(),
		middleware.Timeout(cfg.Server.RequestTimeout),
		gin.Recovery(),
	)
	api.SetupRoutes(r, services, tokens, hub)

	metrics.StartServer(cfg.Metrics.Port, db.Ping)

	logger.Info("server starting", zap.String("address", cfg.Server.Address))
	if err := r.Run(cfg.Server.Address); err != nil {
		logger.Fatal("failed to run server", zap.Error(err))
	}
}

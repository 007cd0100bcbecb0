package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vidvault/vidvault/backend/internal/auth"
	"github.com/vidvault/vidvault/backend/internal/cache"
	"github.com/vidvault/vidvault/backend/internal/config"
	"github.com/vidvault/vidvault/backend/internal/health"
	"github.com/vidvault/vidvault/backend/internal/hosting"
	httpapi "github.com/vidvault/vidvault/backend/internal/http"
	"github.com/vidvault/vidvault/backend/internal/logger"
	"github.com/vidvault/vidvault/backend/internal/platform"
	"github.com/vidvault/vidvault/backend/internal/storage"
	s3storage "github.com/vidvault/vidvault/backend/internal/storage/s3"
	"github.com/vidvault/vidvault/backend/internal/video"
	"gorm.io/gorm"
)

// App holds all application dependencies
type App struct {
	ctx        context.Context
	Config     *config.Config
	db         *gorm.DB
	cache      *cache.RedisService
	router     *gin.Engine
	server     *http.Server
	logger     logger.Logger
	aggregator *video.Aggregator
	auth       *auth.Service
}

// NewApp creates a new application instance with all dependencies
func NewApp(ctx context.Context, cfg *config.Config, loggerService logger.Logger) (*App, error) {
	db, err := initDatabase(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %v", err)
	}

	cacheService, err := cache.NewRedisService(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %v", err)
	}

	responseHandler := httpapi.NewResponseHandler(loggerService)

	// Source adapters; a disabled source stays nil and the aggregator
	// skips it.
	var linkStore video.LinkStore
	if cfg.Sources.Links {
		linkStore = video.NewLinkStore(db, loggerService)
	}

	var objectStore storage.ObjectStore
	if cfg.Sources.Storage {
		s3Service, err := s3storage.NewService(&storage.Config{
			Endpoint:        cfg.Storage.S3.Endpoint,
			AccessKeyID:     cfg.Storage.S3.AccessKeyID,
			SecretAccessKey: cfg.Storage.S3.SecretAccessKey,
			UseSSL:          cfg.Storage.S3.UseSSL,
			Region:          cfg.Storage.S3.Region,
			Bucket:          cfg.Storage.S3.Bucket,
			ListLimit:       cfg.Storage.S3.ListLimit,
			MaxUploadSize:   cfg.Video.MaxUploadSize,
		}, loggerService)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize object storage: %v", err)
		}
		objectStore = s3Service
	}

	var hostingClient *hosting.Client
	var hostingStore video.HostingStore
	if cfg.Sources.Hosting {
		hostingClient = hosting.NewClient(&hosting.Config{
			BaseURL: cfg.Hosting.BaseURL,
			APIKey:  cfg.Hosting.APIKey,
		}, loggerService)
		hostingStore = hostingClient
	}

	classifier := platform.NewClassifier(cfg.Server.PublicHost)
	aggregator := video.NewAggregator(linkStore, objectStore, hostingStore, classifier, loggerService)

	authConfig := auth.NewConfigFromAuthConfig(&cfg.Auth)
	tokenService := auth.NewJWTService(authConfig)
	authService := auth.NewService(db, cacheService, tokenService, authConfig, loggerService)

	router := gin.New()
	router.Use(httpapi.RecoveryMiddleware(responseHandler, loggerService))
	router.Use(httpapi.RequestIDMiddleware())
	router.Use(httpapi.CORSMiddleware())
	router.Use(httpapi.RequestLoggerMiddleware(loggerService))
	router.Use(auth.SessionGate(authService, authConfig, loggerService))

	app := &App{
		ctx:        ctx,
		Config:     cfg,
		db:         db,
		cache:      cacheService,
		router:     router,
		logger:     loggerService,
		aggregator: aggregator,
		auth:       authService,
	}

	app.setupRoutes(responseHandler, authConfig, authService, hostingClient)

	return app, nil
}

func (a *App) setupRoutes(responseHandler httpapi.ResponseHandler, authConfig *auth.Config, authService *auth.Service, hostingClient *hosting.Client) {
	healthHandler := health.NewHandler(health.Status{
		Environment: a.Config.Environment,
		Sources: map[string]bool{
			"links":   a.Config.Sources.Links,
			"storage": a.Config.Sources.Storage,
			"hosting": a.Config.Sources.Hosting,
		},
	}, responseHandler)
	a.router.GET("/health", healthHandler.HandleHealthCheck)

	authHandler := auth.NewHandler(authService, authConfig, responseHandler, a.logger)
	authHandler.RegisterRoutes(a.router)

	videoConfig := &video.Config{MaxUploadSize: a.Config.Video.MaxUploadSize}
	videoHandler := video.NewHandler(a.aggregator, videoConfig, responseHandler, a.logger)
	videoHandler.RegisterRoutes(a.router)

	if hostingClient != nil {
		hostingHandler := hosting.NewHandler(hostingClient, responseHandler, a.logger)
		hostingHandler.RegisterRoutes(a.router)
	}
}

// Run starts the HTTP server
func (a *App) Run() error {
	addr := fmt.Sprintf(":%d", a.Config.Server.Port)
	a.logger.LogInfo("Starting server", map[string]interface{}{
		"addr":        addr,
		"environment": a.Config.Environment,
	})

	a.server = &http.Server{
		Addr:    addr,
		Handler: a.router,
	}

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return a.logger.LogError(err, "server failed to start")
	}
	return nil
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown() error {
	a.logger.LogInfo("Initiating graceful shutdown", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			a.logger.LogWarn("Error shutting down HTTP server", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.LogWarn("Error closing session store connections", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if a.db != nil {
		sqlDB, err := a.db.DB()
		if err != nil {
			a.logger.LogWarn("Error getting underlying database instance", map[string]interface{}{
				"error": err.Error(),
			})
		} else if err := sqlDB.Close(); err != nil {
			a.logger.LogWarn("Error closing database connections", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	a.logger.LogInfo("Application shutdown complete", nil)
	return nil
}

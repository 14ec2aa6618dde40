package main

import (
	"context"
	"log"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizmaster/internal/adapter"
	"quizmaster/internal/cache"
	"quizmaster/internal/config"
	"quizmaster/internal/database"
	"quizmaster/internal/domain"
	"quizmaster/internal/handler"
	"quizmaster/internal/logger"
	"quizmaster/internal/metrics"
	"quizmaster/internal/middleware"
	"quizmaster/internal/repository"
	"quizmaster/internal/service"
	"quizmaster/internal/validation"

	_ "quizmaster/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title Quizmaster API
// @version 1.0
// @description Multiple-choice quiz grading and result history.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewSQLXDB(ctx, cfg.DB.Driver, cfg.GetDSN(), appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db.DB, cfg.DB.Driver, database.Up, appLogger); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Warn("redis.address is empty, latest-result caching is disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	catalogRepository := repository.NewCatalogDatabaseAdapter(db)
	resultRepository := repository.NewQuizResultDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db, appLogger)

	tokenService, err := service.NewTokenService(cfg.JWT, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create TokenService", zap.Error(err))
	}
	latestCache := service.NewLatestResultCache(cacheAdapter, cfg.Redis.LatestResultTTL, appMetrics, appLogger)
	resultStore := service.NewResultStore(resultRepository, txManager, latestCache, appLogger)
	rehydrator := service.NewRehydrator(catalogRepository, appMetrics, appLogger)

	catalogService := service.NewCatalogService(catalogRepository, txManager, appLogger)
	gradingService := service.NewGradingService(catalogRepository, resultStore, appMetrics, appLogger)
	resultService := service.NewResultService(catalogRepository, resultStore, rehydrator, appLogger)

	validator := validation.NewValidator()
	quizHandler := handler.NewQuizHandler(catalogService, gradingService, resultService, validator)
	adminHandler := handler.NewAdminHandler(catalogService, validator)
	healthHandler := handler.NewHealthHandler(db, cacheAdapter, appLogger)

	appLogger.Info("Configured server",
		zap.Int("port", cfg.Server.Port),
		zap.String("env", cfg.Logger.Env),
		zap.String("db_driver", cfg.DB.Driver))

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  2 * cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(appLogger),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(appLogger))
	app.Use(middleware.Metrics(appMetrics))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/healthz", healthHandler.Check)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Routes{
		Quiz:        quizHandler,
		Admin:       adminHandler,
		Tokens:      tokenService,
		SubmitLimit: middleware.RateLimiter(ctx, cfg.RateLimit, appMetrics),
		Logger:      appLogger,
	})

	if err := serve(ctx, app, ":"+strconv.Itoa(cfg.Server.Port), appLogger); err != nil {
		appLogger.Fatal("Server stopped with error", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

// serve runs app on addr until ctx is done. A listen failure is returned
// rather than treated as a clean stop.
func serve(ctx context.Context, app *fiber.App, addr string, appLogger *zap.Logger) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.String("addr", addr))
		return app.Listen(addr)
	})
	g.Go(func() error {
		<-gCtx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})
	return g.Wait()
}

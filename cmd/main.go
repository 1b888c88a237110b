package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/crime_analysis_system/internal/alerting"
	"github.com/shenikar/crime_analysis_system/internal/config"
	v1 "github.com/shenikar/crime_analysis_system/internal/handler/http/v1"
	"github.com/shenikar/crime_analysis_system/internal/metrics"
	"github.com/shenikar/crime_analysis_system/internal/repository"
	"github.com/shenikar/crime_analysis_system/internal/service"
	"github.com/shenikar/crime_analysis_system/internal/webhook"
	"github.com/shenikar/crime_analysis_system/pkg/logger"
	"github.com/shenikar/crime_analysis_system/pkg/postgres"
	redisclient "github.com/shenikar/crime_analysis_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/crime_analysis_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Crime Analysis System API
// @version 1.0
// @description Crime incident registry, geospatial alerts, ETL bookkeeping and reporting.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey SessionAuth
// @in cookie
// @name sessionid
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.NewWithOutput(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(dbpool)
	sessionRepo := repository.NewSessionRepository(redisClient)
	agencyRepo := repository.NewAgencyRepository(dbpool)
	catalogRepo := repository.NewCatalogRepository(dbpool)
	crimeRepo := repository.NewCrimeRepository(dbpool, redisClient, cfg.CrimeCacheTTL)
	alertRepo := repository.NewAlertRepository(dbpool)
	etlRepo := repository.NewETLRepository(dbpool)
	reportRepo := repository.NewReportRepository(dbpool)
	analyticsRepo := repository.NewAnalyticsRepository(dbpool)

	// Очередь уведомлений и воркер вебхуков
	publisher := webhook.NewRedisNotificationPublisher(redisClient)
	workerDone := webhook.NewNotificationWorker(redisClient, alertRepo, log, cfg).Start(ctx)

	// Инициализация сервисов
	alertService := service.NewAlertService(alertRepo, alerting.NewRedisLocker(redisClient), publisher, log, cfg)
	services := v1.Services{
		Accounts:  service.NewAccountService(userRepo, sessionRepo, log, cfg),
		Agencies:  service.NewAgencyService(agencyRepo, log),
		Crimes:    service.NewCrimeService(catalogRepo, crimeRepo, log),
		Alerts:    alertService,
		ETL:       service.NewETLService(etlRepo, log),
		Reports:   service.NewReportService(reportRepo, log),
		Analytics: service.NewAnalyticsService(analyticsRepo, log),
	}

	// Периодическая проверка подписок
	var schedulerDone <-chan struct{}
	if cfg.EvaluatorEnabled {
		schedulerDone, err = alerting.NewScheduler(alertService, log, cfg.EvaluatorTick).Start(ctx)
		if err != nil {
			log.Fatalf("Failed to start alert scheduler: %v", err)
		}
		log.Infof("Alert evaluator started, tick %s", cfg.EvaluatorTick)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Fatalf("Invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(
		gin.Recovery(),
		v1.RequestIDMiddleware(),
		v1.RequestLoggerMiddleware(log),
		v1.CORSMiddleware(cfg.CORSAllowedOrigins),
		metrics.Middleware(),
	)
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", metrics.Handler())

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Остановка фоновых задач
	cancel()
	for _, done := range []<-chan struct{}{workerDone, schedulerDone} {
		if done == nil {
			continue
		}
		select {
		case <-done:
		case <-shutdownCtx.Done():
			log.Warn("Background workers did not stop in time")
			return
		}
	}

	log.Info("Server gracefully stopped")
}

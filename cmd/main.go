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

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/adapters"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/config"
	v1 "github.com/SafeSchoolOS/safeschool-os-sub001/internal/handler/http/v1"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/queue"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/repository"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/scheduler"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/service"
	"github.com/SafeSchoolOS/safeschool-os-sub001/pkg/logger"
	"github.com/SafeSchoolOS/safeschool-os-sub001/pkg/postgres"
	redisclient "github.com/SafeSchoolOS/safeschool-os-sub001/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/SafeSchoolOS/safeschool-os-sub001/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SafeSchool Alert Engine API
// @version 1.0
// @description Safety-alert lifecycle engine: alert triggering, dispatch, lockdown, notifications and transport telemetry.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

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
	log := logger.New(cfg.LogLevel)

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
	alertRepo := repository.NewAlertRepository(dbpool)
	lockdownRepo := repository.NewLockdownRepository(dbpool)
	notificationRepo := repository.NewNotificationRepository(dbpool)
	transportRepo := repository.NewTransportRepository(dbpool)
	signalRepo := repository.NewSignalRepository(dbpool)
	cooldownStore := repository.NewRedisCooldownStore(redisClient)

	// Инициализация внешних адаптеров
	dispatchAdapter := adapters.NewHTTPDispatchAdapter(cfg.DispatchURL, cfg.AdapterSecret, cfg.AdapterTimeout, log)
	lockdownAdapter := adapters.NewHTTPLockdownAdapter(cfg.LockdownURL, cfg.AdapterSecret, cfg.AdapterTimeout, log)
	notificationAdapter := adapters.NewHTTPNotificationAdapter(cfg.NotificationURL, cfg.AdapterSecret, cfg.AdapterTimeout, log)
	weatherAdapter := adapters.NewNWSWeatherAdapter(cfg.WeatherURL, cfg.AdapterSecret, cfg.AdapterTimeout, log)
	socialAdapter := adapters.NewSentinelSocialAdapter(cfg.SocialURL, cfg.AdapterSecret, cfg.AdapterTimeout, log)

	// Инициализация очереди заданий
	jobQueue := queue.NewRedisQueue(redisClient)

	// Инициализация сервисов
	alertService := service.NewAlertService(alertRepo, jobQueue, log, cfg.EscalationWindow, cfg.FireEscalationWindow)
	escalationPolicy := service.NewTimeoutEscalationPolicy(alertRepo, jobQueue, log)

	// Регистрация обработчиков заданий
	escalateHandler, err := jobs.NewEscalateHandler(alertRepo, escalationPolicy, log)
	if err != nil {
		log.Fatalf("Failed to build escalate handler: %v", err)
	}

	router := jobs.NewRouter(log)
	router.Register(jobs.JobDispatch, jobs.NewDispatchHandler(alertRepo, dispatchAdapter, log).Handle)
	router.Register(jobs.JobLockdown, jobs.NewLockdownHandler(lockdownRepo, lockdownAdapter, log).Handle)
	router.Register(jobs.JobNotifyStaff, jobs.NewNotifyStaffHandler(notificationRepo, notificationAdapter, log).Handle)
	router.Register(jobs.JobMassNotify, jobs.NewMassNotifyHandler(notificationRepo, notificationAdapter, log).Handle)
	router.Register(jobs.JobEscalate, escalateHandler.Handle)
	router.Register(jobs.JobRFIDScan, jobs.NewRFIDScanHandler(transportRepo, notificationAdapter, log).Handle)
	router.Register(jobs.JobGPSUpdate, jobs.NewGPSUpdateHandler(transportRepo, notificationAdapter, cooldownStore, log, cfg.GeofenceRadiusMeters, cfg.GeofenceRenotifyCooldown).Handle)
	router.Register(jobs.JobPollWeather, jobs.NewWeatherPollHandler(signalRepo, alertRepo, weatherAdapter, jobQueue, log).Handle)
	router.Register(jobs.JobPollSocial, jobs.NewSocialPollHandler(signalRepo, alertRepo, socialAdapter, jobQueue, log, cfg.SocialWatermarkFallback).Handle)

	// Запуск пула воркеров очереди
	worker := queue.NewWorker(redisClient, jobQueue, router, log, cfg.WorkerConcurrency, cfg.JobMaxRetries, cfg.JobRetryBaseDelay)
	worker.Start(ctx)

	// Запуск планировщика опросов внешних сервисов
	pollScheduler := scheduler.NewScheduler(jobQueue, log, cfg.WeatherPollInterval, cfg.SocialPollInterval)
	pollScheduler.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(alertService, jobQueue, log, cfg)

	// Настройка Gin роутера
	engine := gin.Default()
	api := engine.Group("/api/v1")
	handler.RegisterRoutes(api, v1.APIKeyAuthMiddleware(cfg, log))

	// Добавление маршрута для Swagger UI
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: engine,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

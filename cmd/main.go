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

	"github.com/sirupsen/logrus"
	"github.com/streetbites/streetbites_backend/internal/config"
	v1 "github.com/streetbites/streetbites_backend/internal/handler/http/v1"
	"github.com/streetbites/streetbites_backend/internal/handler/subscriber"
	"github.com/streetbites/streetbites_backend/internal/notifier"
	"github.com/streetbites/streetbites_backend/internal/repository"
	"github.com/streetbites/streetbites_backend/internal/service"
	"github.com/streetbites/streetbites_backend/pkg/logger"
	mqttclient "github.com/streetbites/streetbites_backend/pkg/mqtt"
	"github.com/streetbites/streetbites_backend/pkg/postgres"
	redisclient "github.com/streetbites/streetbites_backend/pkg/redis"

	_ "github.com/streetbites/streetbites_backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title StreetBites API
// @version 1.0
// @description Food truck discovery backend: live locations, weekly schedules, check-ins and proximity notifications.
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

	// Инициализация издателя событий
	eventPublisher := notifier.NewRedisEventPublisher(redisClient)

	// Инициализация и запуск воркера доставки вебхуков
	notifierWorker := notifier.NewWorker(redisClient, log, cfg)
	notifierWorker.Start(ctx)

	// Инициализация репозиториев
	businessRepo := repository.NewBusinessRepository(dbpool, redisClient)
	scheduleRepo := repository.NewScheduleRepository(dbpool)
	profileRepo := repository.NewProfileRepository(dbpool)

	// Инициализация сервисов
	businessService := service.NewBusinessService(businessRepo, profileRepo, log, cfg, eventPublisher)
	scheduleService := service.NewScheduleService(scheduleRepo, businessRepo, profileRepo, log, cfg, eventPublisher)
	profileService := service.NewProfileService(profileRepo, businessRepo, log)

	// Подключение к MQTT-брокеру и подписка на GPS-трекеры фудтраков
	mqttClient, err := mqttclient.NewMQTTClient(cfg.MQTTBroker, cfg.MQTTClientID)
	if err != nil {
		log.Fatalf("Failed to connect to MQTT broker: %v", err)
	}
	defer mqttClient.Disconnect(250)
	log.Info("Successfully connected to MQTT broker")

	locationSubscriber := subscriber.NewLocationSubscriber(mqttClient, businessService, log)
	if err := locationSubscriber.Start(); err != nil {
		log.Fatalf("Failed to subscribe to location topic: %v", err)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(businessService, scheduleService, profileService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	if len(cfg.APIKeys) > 0 {
		api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	}
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
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

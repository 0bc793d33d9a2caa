package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/fleet_incident_reporting/internal/config"
	v1 "github.com/shenikar/fleet_incident_reporting/internal/handler/http/v1"
	"github.com/shenikar/fleet_incident_reporting/internal/notification"
	"github.com/shenikar/fleet_incident_reporting/internal/repository"
	"github.com/shenikar/fleet_incident_reporting/internal/service"
	"github.com/shenikar/fleet_incident_reporting/pkg/logger"
	redisclient "github.com/shenikar/fleet_incident_reporting/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/fleet_incident_reporting/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Fleet Incident Reporting API
// @version 1.0
// @description This is a Fleet Incident Reporting API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey SessionAuth
// @in header
// @name X-Session-Token
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

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация хранилища записей (seed + overlay)
	store := repository.NewStore(redisClient)

	// Инициализация издателя событий инцидентов
	eventPublisher := notification.NewRedisEventPublisher(redisClient)

	// Инициализация и запуск воркера уведомлений
	notificationWorker := notification.NewWorker(redisClient, store, log, cfg)
	notificationWorker.Start(ctx)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(store, log, cfg, eventPublisher)
	analyticsService := service.NewAnalyticsService(store, log)
	draftService := service.NewDraftService(store, log, cfg.DraftDebounce)
	defer draftService.Stop()
	authService := service.NewAuthService(store, log, cfg.SessionTTL)
	fleetService := service.NewFleetService(store, log)
	notificationService := service.NewNotificationService(store, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(
		authService,
		incidentService,
		analyticsService,
		draftService,
		fleetService,
		notificationService,
		log,
		cfg,
	)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
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

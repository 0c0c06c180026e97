package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/mechafix/dispatch/internal/pkg/config"
	"github.com/mechafix/dispatch/internal/pkg/database"
	"github.com/mechafix/dispatch/internal/pkg/health"
	"github.com/mechafix/dispatch/internal/pkg/logger"
	"github.com/mechafix/dispatch/internal/pkg/metrics"
	"github.com/mechafix/dispatch/internal/pkg/nsq"
	"github.com/mechafix/dispatch/internal/pkg/server"
	"github.com/mechafix/dispatch/services/dispatch/gateway"
	"github.com/mechafix/dispatch/services/dispatch/handler"
	"github.com/mechafix/dispatch/services/dispatch/repository"
	"github.com/mechafix/dispatch/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NSQ producer
	producer, err := nsq.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// Initialize repositories
	requestRepo := repository.NewRequestRepository(configs, postgresClient.GetDB(), redisClient)
	mechanicRepo := repository.NewMechanicRepository(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	dispatchGW := gateway.NewDispatchGW(configs, producer)

	// Initialize usecase
	dispatchUC := usecase.NewDispatchUC(configs, requestRepo, mechanicRepo, dispatchGW)

	// Initialize handlers
	h := handler.NewHandler(dispatchUC, configs)
	if err := h.InitNSQConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NSQ consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	metrics.RegisterEndpoint(e)
	h.RegisterRoutes(e)

	// Register component cleanup
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(context.Context) error {
		h.Stop()
		return nil
	})
	shutdownManager.Register(func(context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownManager.Register(func(context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(context.Context) error {
		return postgresClient.Close()
	})

	// Start server and block until shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}

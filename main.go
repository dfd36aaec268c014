package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"order-gateway/config"
	"order-gateway/controllers"
	"order-gateway/middleware"
	"order-gateway/repositories"
	"order-gateway/routes"
	"order-gateway/services"
)

func main() {
	cfg := config.LoadConfig()
	logger := newLogger(cfg)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	pool, err := config.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create database pool")
	}
	defer pool.Close()

	// Serving must not start until the store is reachable and the schema
	// exists; exhausting the retry budget kills the process.
	if err := config.BringUp(ctx, pool, logger, cfg.StartupMaxAttempts, cfg.StartupRetryInterval); err != nil {
		logger.Fatal().Err(err).Msg("database initialization failed")
	}

	userRepo := repositories.NewUserRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	external := services.NewExternalClient(cfg.ExternalAPIURL, cfg.ExternalHealthTimeout, cfg.ExternalRequestTimeout)

	userService := services.NewUserService(userRepo, logger)
	orderService := services.NewOrderService(userRepo, orderRepo, external, logger)
	healthService := services.NewHealthService(pool, external, logger)

	metrics := middleware.NewMetrics()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogger(logger))
	router.Use(metrics.Handler())

	routes.SetupRoutes(
		router,
		controllers.NewHealthController(healthService),
		controllers.NewUserController(userService),
		controllers.NewOrderController(orderService),
		metrics,
	)

	logger.Info().
		Str("port", cfg.Port).
		Str("environment", cfg.AppEnv).
		Str("external_api", cfg.ExternalAPIURL).
		Msg("server starting")

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.AppEnv == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

package main

import (
	"time"

	"github.com/ekozlova/shareit/config"
	"github.com/ekozlova/shareit/internal/cache"
	"github.com/ekozlova/shareit/internal/handler"
	"github.com/ekozlova/shareit/internal/metrics"
	"github.com/ekozlova/shareit/internal/middleware"
	"github.com/ekozlova/shareit/internal/repository"
	"github.com/ekozlova/shareit/internal/service"
	"github.com/ekozlova/shareit/pkg/database"
	"github.com/ekozlova/shareit/pkg/logger"
	"github.com/ekozlova/shareit/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	db := database.NewPostgresDB(cfg.DSN())
	metrics.Register()

	// Booking lifecycle events are optional: without a broker the service
	// still runs, it just stops notifying downstream consumers.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Warn().Err(err).Msg("rabbitmq unavailable, booking events disabled")
		} else {
			defer publisher.Close()
		}
	}

	var searchCache *cache.SearchCache
	if cfg.RedisAddr != "" {
		client := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword)
		searchCache = cache.NewSearchCache(client, 5*time.Minute)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	// Services
	userSvc := service.NewUserService(userRepo)
	bookingSvc := service.NewBookingService(bookingRepo, itemRepo, userRepo, publisher)
	itemSvc := service.NewItemService(itemRepo, userRepo, bookingRepo, commentRepo, requestRepo, searchCache, log)
	requestSvc := service.NewRequestService(requestRepo, itemRepo, userRepo)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			metrics.IncHTTP(v.Method, c.Path())
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "shareit"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler.NewUserHandler(userSvc).RegisterRoutes(e)
	handler.NewItemHandler(itemSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewRequestHandler(requestSvc).RegisterRoutes(e)

	log.Info().Str("port", cfg.ServerPort).Msg("shareit starting")
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

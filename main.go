package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/expotech/exhibition-service/config"
	"github.com/expotech/exhibition-service/internal/handler"
	"github.com/expotech/exhibition-service/internal/middleware"
	"github.com/expotech/exhibition-service/internal/repository"
	"github.com/expotech/exhibition-service/internal/service"
	"github.com/expotech/exhibition-service/pkg/database"
	"github.com/expotech/exhibition-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ publisher: booking events for the notification pipeline.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RABBIT_URL not set, booking events disabled")
	}

	// Repositories
	equipmentRepo := repository.NewEquipmentRepository(db)
	exhibitionRepo := repository.NewExhibitionRepository(db)
	pricingRepo := repository.NewPricingRepository(db)

	// Services
	availabilitySvc := service.NewAvailabilityService(equipmentRepo, exhibitionRepo, publisher)
	pricingSvc := service.NewPricingService(pricingRepo, exhibitionRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.RateLimiter(echoMw.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimitPerSec))))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "exhibition-service"})
	})

	packageCache := gocache.New(
		time.Duration(cfg.PackageCacheTTL)*time.Second,
		2*time.Duration(cfg.PackageCacheTTL)*time.Second,
	)
	cacheMw := middleware.Cache(packageCache, time.Duration(cfg.PackageCacheTTL)*time.Second)

	api := e.Group("/api/v1")
	handler.NewAvailabilityHandler(availabilitySvc).RegisterRoutes(api)
	handler.NewPricingHandler(pricingSvc).RegisterRoutes(api, cacheMw)

	log.Printf("Exhibition Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

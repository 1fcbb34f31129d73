package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/partywknd/config"
	"github.com/Eursukkul/partywknd/internal/auth"
	"github.com/Eursukkul/partywknd/internal/consumer"
	"github.com/Eursukkul/partywknd/internal/handler"
	"github.com/Eursukkul/partywknd/internal/middleware"
	"github.com/Eursukkul/partywknd/internal/repository"
	"github.com/Eursukkul/partywknd/internal/seed"
	"github.com/Eursukkul/partywknd/internal/service"
	"github.com/Eursukkul/partywknd/pkg/database"
	"github.com/Eursukkul/partywknd/pkg/rabbitmq"
	"github.com/Eursukkul/partywknd/pkg/redisstore"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.NewDB(cfg.DB)
	defer database.Close(db)

	// Publisher is optional; without a broker domain events are skipped.
	var publisher service.Publisher
	var mqPublisher *rabbitmq.Publisher
	if cfg.RabbitMQ.URL != "" {
		mqPublisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.URL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer mqPublisher.Close()
		publisher = mqPublisher
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	agentRepo := repository.NewAgentRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	lodgingRepo := repository.NewLodgingRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Services
	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	svc := handler.Services{
		Catalog:  service.NewCatalogService(eventRepo, lodgingRepo),
		Packages: service.NewPackageService(packageRepo, lodgingRepo, eventRepo, publisher),
		Bookings: service.NewBookingService(bookingRepo, packageRepo, userRepo, publisher),
		Messages: service.NewMessageService(messageRepo, packageRepo, userRepo, publisher),
		Admin:    service.NewAdminService(userRepo, agentRepo, adminRepo, issuer, cfg.Auth.BcryptCost),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := seed.Run(ctx, svc.Catalog, svc.Packages); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		return
	}
	if cfg.SeedDemo {
		if err := seed.Run(ctx, svc.Catalog, svc.Packages); err != nil {
			log.Printf("[Seed] demo data not loaded: %v", err)
		}
	}

	if cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPassword != "" {
		if err := svc.Admin.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			log.Fatalf("failed to bootstrap admin account: %v", err)
		}
	}

	// Catalog feed
	var (
		mqConsumer   *rabbitmq.Consumer
		consumerDone <-chan struct{}
	)
	if cfg.RabbitMQ.CatalogSync && cfg.RabbitMQ.URL != "" {
		mqConsumer, err = rabbitmq.NewConsumer(cfg.RabbitMQ.URL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}

		msgs, err := mqConsumer.Consume()
		if err != nil {
			log.Fatalf("failed to start consuming: %v", err)
		}
		consumerDone = consumer.NewCatalogConsumer(svc.Catalog).Start(ctx, msgs)
	}

	routes := handler.RouteConfig{
		Prefix:      cfg.APIPrefix,
		Issuer:      issuer,
		AllowNoAuth: cfg.Auth.AllowNoAuth,
	}
	if cfg.RateLimitEnabled() {
		if rdb := redisstore.NewClient(cfg.Redis); rdb != nil {
			defer rdb.Close()
			routes.RateLimit = middleware.RateLimit(cfg.RateLimit, rdb)
		}
	}
	if cfg.Auth.AllowNoAuth {
		log.Println("[Auth] ALLOW_NO_AUTH is set, requests without a token run as the dev identity")
	}

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	handler.RegisterRoutes(e, routes, svc)

	go func() {
		log.Printf("PartyWKND API starting on :%s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if mqConsumer != nil {
		// closing the channel ends the delivery stream after the in-flight message
		mqConsumer.Close()
		select {
		case <-consumerDone:
		case <-shutdownCtx.Done():
			log.Println("[CatalogConsumer] did not stop before the shutdown deadline")
		}
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toko-storefront/internal/client"
	"toko-storefront/internal/config"
	"toko-storefront/internal/logger"
	"toko-storefront/internal/repository"
	"toko-storefront/internal/server"
	"toko-storefront/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	db, err := client.InitDBClient(&cfg.Database)
	if err != nil {
		log.Error("failed to init database", slog.Any("error", err))
		os.Exit(1)
	}

	paypalClient := client.NewPaypalClient(&cfg.Paypal)
	braintreeClient := client.NewBraintreeClient(&cfg.Braintree)

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	contactRepo := repository.NewContactRepository(db)

	if cfg.Environment.Name == "development" {
		if err := productRepo.Seed(context.Background()); err != nil {
			log.Warn("failed to seed catalog", slog.Any("error", err))
		}
	}

	reviewService := service.NewReviewService(reviewRepo)
	catalogService := service.NewCatalogService(productRepo, reviewService)
	cartService := service.NewCartService(db, log, productRepo, orderRepo)
	checkoutService := service.NewCheckoutService(
		db, log, cfg.BaseURL,
		paypalClient, braintreeClient,
		orderRepo, addressRepo, paymentRepo,
	)
	contactService := service.NewContactService(contactRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(
		cfg.JWT.Secret,
		catalogService,
		cartService,
		checkoutService,
		reviewService,
		contactService,
		productRepo,
	)

	log.Info("starting HTTP server", slog.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Error("HTTP server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}
}

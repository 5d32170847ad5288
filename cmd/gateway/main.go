package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/payment-gateway/internal/application"
	"github.com/DanielPopoola/payment-gateway/internal/application/services"
	"github.com/DanielPopoola/payment-gateway/internal/config"
	"github.com/DanielPopoola/payment-gateway/internal/infrastructure/bank"
	"github.com/DanielPopoola/payment-gateway/internal/infrastructure/persistence/memory"
	"github.com/DanielPopoola/payment-gateway/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/payment-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/payment-gateway/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/payment-gateway/internal/interfaces/rest/openapi"
)

// @title        Payment Gateway API
// @version      1.0
// @description  Card payment authorization against an acquiring bank.
// @BasePath     /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"store", cfg.Store.Backend,
		"bank_url", cfg.Bank.URL,
	)

	ctx := context.Background()

	store, closeStore, err := newPaymentStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialise payment store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	bankClient := bank.NewBankClient(cfg.Bank)
	retryBankClient := bank.NewRetryBankClient(bankClient, cfg.Retry, logger)

	processor := services.NewPaymentProcessor(
		retryBankClient,
		store,
		application.NewPaymentRequestValidator(nil),
		logger,
	)
	retriever := services.NewPaymentRetriever(store)

	h := handlers.NewHandlers(processor, retriever, logger)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	doc, err := openapi.Load()
	if err != nil {
		logger.Error("failed to load openapi document", "error", err)
		os.Exit(1)
	}
	validate, err := middleware.OpenAPIValidator(doc)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	handler := validate(mux)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

func newPaymentStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (application.PaymentStore, func(), error) {
	if cfg.Store.Backend != config.StorePostgres {
		return memory.NewPaymentStore(), func() {}, nil
	}

	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	return postgres.NewPaymentStore(db), db.Close, nil
}

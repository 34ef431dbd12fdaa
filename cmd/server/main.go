package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/casecollector/Case-Collector-Backend/internal/api"
	"github.com/casecollector/Case-Collector-Backend/internal/catalog"
	"github.com/casecollector/Case-Collector-Backend/internal/config"
	"github.com/casecollector/Case-Collector-Backend/internal/csfloat"
	"github.com/casecollector/Case-Collector-Backend/internal/scheduler"
	"github.com/casecollector/Case-Collector-Backend/internal/service"
	"github.com/casecollector/Case-Collector-Backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Make sure the data directory exists before the stores touch it
	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Optional fernet secret for encrypting the stored API key
	var secret *fernet.Key
	if cfg.Security.FernetSecret != "" {
		keys, err := fernet.DecodeKeys(cfg.Security.FernetSecret)
		if err != nil {
			log.Fatalf("Failed to decode FERNET_SECRET: %v", err)
		}
		secret = keys[0]
	}

	// Create stores
	holdingsStore := store.NewHoldingsStore(filepath.Join(cfg.Data.Dir, store.HoldingsFile))
	cacheStore := store.NewPriceCacheStore(filepath.Join(cfg.Data.Dir, store.PriceCacheFile))
	historyStore := store.NewHistoryStore(filepath.Join(cfg.Data.Dir, store.HistoryFile))
	credentialStore := store.NewCredentialStore(filepath.Join(cfg.Data.Dir, store.CredentialFile), secret)

	// Create services
	systemService := service.NewSystemService(cfg.Data.Dir)
	ledgerService, err := service.NewLedgerService(holdingsStore, nil)
	if err != nil {
		log.Fatalf("Failed to load holdings: %v", err)
	}
	priceService := service.NewPriceService(csfloat.NewClient(), cacheStore, credentialStore, nil)
	historyService := service.NewHistoryService(historyStore, nil)
	refreshService := service.NewRefreshService(ledgerService, priceService, historyService, catalog.Names(), nil)

	log.Printf("Loaded %d holdings from %s", len(ledgerService.Holdings()), cfg.Data.Dir)

	// Optional scheduled refresh
	if cfg.Refresh.Schedule != "" {
		sched, err := scheduler.New(cfg.Refresh.Schedule, refreshService)
		if err != nil {
			log.Fatalf("Failed to set up refresh schedule: %v", err)
		}
		sched.Start()
		defer sched.Stop()
		log.Printf("Scheduled price refresh: %s", cfg.Refresh.Schedule)
	}

	// Create router
	router := api.NewRouter(systemService, ledgerService, priceService, historyService, refreshService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"weardistrict/internal/config"
	"weardistrict/internal/domain"
	"weardistrict/internal/httpserver"
	"weardistrict/internal/importer"
	"weardistrict/internal/metrics"
	"weardistrict/internal/seed"
	authsvc "weardistrict/internal/service/auth"
	cartsvc "weardistrict/internal/service/cart"
	checkoutsvc "weardistrict/internal/service/checkout"
	productsvc "weardistrict/internal/service/product"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	config.LoadDotEnv(logger)
	if err := run(config.FromEnv(), logger); err != nil {
		logger.Fatal(err)
	}
}

// run owns every resource it opens so they are released before main exits.
func run(cfg config.Config, logger *log.Logger) error {
	catalog, err := loadCatalog(cfg.CatalogCSV, logger)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	ctx := context.Background()
	storage, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer storage.close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	productService := productsvc.New(catalog, logger, m)
	cartService := cartsvc.New(ctx, storage.repo, logger, m)
	authService := authsvc.New(ctx, seed.Users(), storage.repo, logger, m)
	checkoutService := checkoutsvc.New(cartService, logger, m)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		ProductSvc:   productService,
		CartSvc:      cartService,
		AuthSvc:      authService,
		CheckoutSvc:  checkoutService,
		Ready:        storage.ready,
		Gatherer:     registry,
		AllowOrigins: cfg.AllowOrigins,
	})
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (storage=%s)", cfg.HTTPAddr, cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
	return nil
}

// loadCatalog reads CATALOG_CSV when set and falls back to the built-in seed.
func loadCatalog(path string, logger *log.Logger) ([]domain.Product, error) {
	if path == "" {
		return seed.Products(), nil
	}
	products, err := importer.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Printf("catalog loaded from %s count=%d", path, len(products))
	return products, nil
}

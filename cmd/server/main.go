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
	"time"

	"github.com/foodstorage/backend/config"
	httpDelivery "github.com/foodstorage/backend/internal/delivery/http"
	"github.com/foodstorage/backend/internal/infrastructure/openfoodfacts"
	"github.com/foodstorage/backend/internal/infrastructure/webclient"
	"github.com/foodstorage/backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting FoodStorage Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// One shared client for the whole process, released on shutdown
	client := webclient.NewClient(webclient.Config{
		Timeout:   cfg.HTTPClient.Timeout,
		UserAgent: cfg.HTTPClient.UserAgent,
		Debug:     cfg.Server.Environment == "development",
	})
	defer func() {
		if err := client.Close(); err != nil {
			log.Printf("Failed to close web client: %v", err)
		}
	}()

	log.Printf("OpenFoodFacts API: %s (timeout: %s, user agent: %s)",
		cfg.OpenFoodFacts.BaseURL, cfg.HTTPClient.Timeout, cfg.HTTPClient.UserAgent)
	if cfg.RateLimit.PerIP > 0 {
		log.Printf("Rate limit: %d requests/minute per client", cfg.RateLimit.PerIP)
	}

	lookup := openfoodfacts.NewService(client, cfg.OpenFoodFacts.BaseURL)
	foodResearch := usecase.NewFoodResearchService(lookup)

	handler := httpDelivery.NewHandler(foodResearch)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, srv, shutdownTimeout); err != nil {
		client.Close()
		log.Fatalf("Failed to start server: %v", err)
	}
	log.Printf("Server stopped")
}

// serve runs srv until ctx is done, then shuts it down gracefully.
// It returns the listen error if the server could not start.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		log.Printf("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	return nil
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

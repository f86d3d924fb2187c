package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"kolosaldash/internal/app"
	"kolosaldash/internal/config"
	"kolosaldash/internal/handler"
	"kolosaldash/internal/router"
)

// @title Kolosal Dashboard API
// @version 1.0
// @description Backend for the Kolosal admin dashboard: collaborator status, document browsing, retrieval, engine management and the parse, chunk, review and commit ingestion pipeline.
// @BasePath /api
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg)
	go a.Runs.StartSweeper(ctx, cfg.Ingest.SweepInterval)

	log.Printf("Collaborators: kolosal=%s markitdown=%s docling=%s embedding=%s",
		cfg.Services.KolosalURL, cfg.Services.MarkitdownURL, cfg.Services.DoclingURL, cfg.Models.Embedding)

	// Initialize handlers
	handlers := router.Handlers{
		Health:    handler.NewHealthHandler(a.Kolosal),
		Status:    handler.NewStatusHandler(a.Status),
		Documents: handler.NewDocumentHandler(a.Documents),
		Retrieve:  handler.NewRetrieveHandler(a.Retrieve),
		Engines:   handler.NewEngineHandler(a.Engines),
		Ingest:    handler.NewIngestHandler(a.Ingest, cfg.Ingest.MaxUploadMB<<20),
	}

	// Setup router
	r := router.Setup(handlers, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown: %v", err)
		}
	}()

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	log.Printf("Server stopped")
	return nil
}

package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seedtech-calendar/internal/config"
	"seedtech-calendar/internal/content"
	"seedtech-calendar/internal/database"
	"seedtech-calendar/internal/i18n"
	"seedtech-calendar/internal/ideas"
	"seedtech-calendar/internal/llm"
	"seedtech-calendar/internal/metrics"
	"seedtech-calendar/internal/server"
	"seedtech-calendar/internal/session"
)

const (
	sessionTTL           = 2 * time.Hour
	sweepInterval        = 10 * time.Minute
	generationsPerMinute = 15 // Gemini free tier allows 15 RPM
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	translator, err := i18n.NewTranslator()
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	textGen, closer, err := llm.NewGeminiClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer closer.Close()

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	sessions := session.NewManager(sessionTTL)
	stopSweeper := make(chan struct{})
	sessions.StartSweeper(sweepInterval, stopSweeper)
	defer close(stopSweeper)

	srv := server.New(server.Options{
		Store:                content.NewStore(),
		Translator:           translator,
		Sessions:             sessions,
		Generator:            ideas.NewGenerator(textGen, logger),
		MetricsStore:         metrics.NewStore(db.SQL),
		Logger:               logger,
		GenerationsPerMinute: generationsPerMinute,
	})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Router(),
	}

	go func() {
		log.Printf("Calendar server listening on port %s", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wqy7711/e-novel-api/internal/config"
	"github.com/wqy7711/e-novel-api/internal/db"
	"github.com/wqy7711/e-novel-api/internal/handler"
	transport "github.com/wqy7711/e-novel-api/internal/http"
	"github.com/wqy7711/e-novel-api/internal/logger"
	"github.com/wqy7711/e-novel-api/internal/repository"
	"github.com/wqy7711/e-novel-api/internal/scheduler"
	"github.com/wqy7711/e-novel-api/internal/seed"
	"github.com/wqy7711/e-novel-api/internal/service"
	"github.com/wqy7711/e-novel-api/internal/service/translate"
	"github.com/wqy7711/e-novel-api/internal/snowflake"
)

// @title E-Novel API
// @version 1.0
// @description Novel catalog with on-demand, field-level translation and a persistent translation cache.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(cfg.NodeID); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	novelRepo := repository.NewNovelRepository(dbConn)
	translationRepo := repository.NewTranslationRepository(dbConn)

	if cfg.SeedData {
		if err := seed.Run(context.Background(), novelRepo); err != nil {
			log.Fatalf("seed catalog: %v", err)
		}
	}

	// One provider and one limiter per process, shared by reference.
	provider, err := translate.NewProvider(translate.Config{
		Provider: cfg.AIProvider,
		APIKey:   cfg.AIAPIKey,
		BaseURL:  cfg.AIBaseURL,
		Model:    cfg.AIModel,
	})
	if err != nil {
		log.Fatalf("create translation provider: %v", err)
	}
	limiter := translate.NewRateLimiter(cfg.AIRateLimitQPS)

	novelService := service.NewNovelService(novelRepo, translationRepo)
	translationService := service.NewTranslationService(
		novelRepo, translationRepo, provider, limiter, cfg.SourceLanguage, cfg.CacheTTL())

	novelHandler := handler.NewNovelHandler(novelService)
	translateHandler := handler.NewTranslateHandler(translationService)

	router := transport.NewRouter(novelHandler, translateHandler)

	sweeper := scheduler.NewSweeper(translationRepo, cfg.SweepInterval)
	sweeper.Start()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down", "module", "main", "action", "shutdown", "resource", "server", "result", "ok")
		sweeper.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = router.Shutdown(ctx)
	}()

	if err := router.Start(cfg.Addr); err != nil {
		logger.Error("server stopped", "module", "main", "action", "serve", "resource", "server", "result", "failed", "error", err)
	}
}

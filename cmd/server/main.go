package main

import (
	"context"
	"log"

	"summarizer/backend/internal/config"
	"summarizer/backend/internal/handler"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[FATAL] Invalid configuration: %v", err)
	}
	log.Printf("[INFO] Starting summarizer env=%s provider=%s model=%s", cfg.Env, cfg.Provider, cfg.Model)

	// The oracle is built once and shared; without it there is nothing to serve.
	if err := handler.InitSummarizer(context.Background(), cfg); err != nil {
		log.Fatalf("[FATAL] Failed to initialize summarization model: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := handler.NewRouter(cfg)

	log.Printf("[INFO] Server ready port=%s allowed_origins=%v", cfg.Port, cfg.AllowedOrigins)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}

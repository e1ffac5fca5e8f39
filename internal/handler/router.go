package handler

import (
	"strings"
	"time"

	"summarizer/backend/internal/config"
	"summarizer/backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var defaultOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// NewRouter wires middleware and routes
func NewRouter(cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())

	r.Use(middleware.MirrorPreflightHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(cfg.AllowedOrigins),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	var ipLimiter *middleware.IPRateLimiter
	if cfg.RateLimitPerSecond > 0 {
		ipLimiter = middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitPerSecond), max(cfg.RateLimitBurst, 1))
	}
	dailyQuota := middleware.NewDailyQuota(cfg.DailyQuota)

	// Health check endpoints (no rate limiting)
	r.GET("/health", HandleHealth)
	r.GET("/ready", HandleReadiness)

	r.POST("/summarize", middleware.RateLimitMiddleware(ipLimiter, dailyQuota), HandleSummarize)

	return r
}

func allowedOrigins(configured []string) []string {
	var origins []string
	for _, o := range configured {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return defaultOrigins
	}
	return origins
}

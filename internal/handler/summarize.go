package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"summarizer/backend/internal/config"
	"summarizer/backend/internal/middleware"
	"summarizer/backend/internal/model"
	"summarizer/backend/internal/oracle"
	"summarizer/backend/internal/refiner"
	"summarizer/backend/internal/summarize"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/unicode/norm"
)

var (
	summarizer *summarize.Service
	serviceMu  sync.RWMutex
)

// InitSummarizer builds the oracle once and installs the shared service
func InitSummarizer(ctx context.Context, cfg config.Config) error {
	o, err := oracle.New(ctx, cfg)
	if err != nil {
		return err
	}

	var sampler *summarize.Sampler
	if cfg.Sampling.Enabled {
		sampler = summarize.NewSampler(nil, cfg.Sampling)
	}

	SetService(summarize.NewService(o, summarize.Options{
		MaxTextChars: cfg.MaxTextChars,
		Sampler:      sampler,
		Timeout:      cfg.GenerationTimeout,
	}))
	log.Printf("[INFO] Summarizer ready oracle=%s sampling=%t", o.Name(), cfg.Sampling.Enabled)
	return nil
}

// SetService replaces the shared service
func SetService(s *summarize.Service) {
	serviceMu.Lock()
	defer serviceMu.Unlock()
	summarizer = s
}

func currentService() *summarize.Service {
	serviceMu.RLock()
	defer serviceMu.RUnlock()
	return summarizer
}

// HandleSummarize serves POST /summarize
func HandleSummarize(c *gin.Context) {
	startTime := time.Now()
	requestID := middleware.GetRequestID(c)

	var req model.SummarizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[%s] Invalid request body: %v", requestID, err)
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Detail: "Invalid request body"})
		return
	}

	// Normalize Unicode to NFC form before validation
	req.Text = norm.NFC.String(req.Text)

	svc := currentService()
	if svc == nil {
		c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{Detail: "Summarization model is not available"})
		return
	}

	log.Printf("[%s] Summarize request chars=%d preview=%q", requestID, len([]rune(req.Text)), preview(req.Text, 60))

	result, err := svc.Summarize(c.Request.Context(), &req)
	if err != nil {
		status, detail := errorResponse(err)
		log.Printf("[%s] Summarize failed status=%d after %v: %v", requestID, status, time.Since(startTime), err)
		c.JSON(status, model.ErrorResponse{Detail: detail})
		return
	}

	log.Printf("[%s] [PERF] Summarize completed in %v summary_words=%d", requestID, time.Since(startTime), refiner.CountWords(result.Summary))
	c.JSON(http.StatusOK, result)
}

// errorResponse maps a service error onto a status code and a caller-safe message
func errorResponse(err error) (int, string) {
	detail := "Internal server error"
	var se *summarize.Error
	if errors.As(err, &se) {
		detail = se.Detail
	}

	switch {
	case errors.Is(err, summarize.ErrValidation):
		return http.StatusBadRequest, detail
	case errors.Is(err, summarize.ErrNotReady):
		return http.StatusServiceUnavailable, detail
	case errors.Is(err, oracle.ErrRateLimited):
		return http.StatusTooManyRequests, "The summarization model is rate limited. Please try again later."
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Summary generation timed out. Please try again."
	case errors.Is(err, summarize.ErrGeneration):
		return http.StatusBadGateway, detail
	default:
		return http.StatusInternalServerError, detail
	}
}

func preview(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return s
}

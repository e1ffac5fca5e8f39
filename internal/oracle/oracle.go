// Package oracle is the boundary to the pretrained text-to-text model that
// writes abstractive summaries. Backends differ; the contract does not.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"summarizer/backend/internal/config"
)

var (
	// ErrRateLimited marks backend quota or throttling failures.
	ErrRateLimited = errors.New("model backend rate limited")
	// ErrUnavailable marks a backend that is loading or otherwise not serving.
	ErrUnavailable = errors.New("model backend unavailable")
	// ErrEmptyOutput is returned when the backend decodes to nothing.
	ErrEmptyOutput = errors.New("model returned an empty summary")
)

// Params mirrors the knobs of a seq2seq generate call. Lengths are in
// generation tokens, not words.
type Params struct {
	NumBeams          int
	MinLength         int
	MaxLength         int
	DoSample          bool
	Temperature       float64
	TopK              int
	TopP              float64
	NoRepeatNgramSize int
	LengthPenalty     float64
	EarlyStopping     bool
}

func (p Params) String() string {
	return fmt.Sprintf("beams=%d len=[%d,%d] sample=%t temp=%.2f top_k=%d top_p=%.2f no_repeat=%d length_penalty=%.2f",
		p.NumBeams, p.MinLength, p.MaxLength, p.DoSample, p.Temperature, p.TopK, p.TopP, p.NoRepeatNgramSize, p.LengthPenalty)
}

// Oracle turns input text into one decoded summary. Implementations must be
// safe for concurrent use; they are built once and shared by every request.
type Oracle interface {
	Name() string
	Generate(ctx context.Context, text string, params Params) (string, error)
}

// New builds the backend selected by cfg.Provider.
func New(ctx context.Context, cfg config.Config) (Oracle, error) {
	truncator := NewTokenTruncator(defaultEncoding)

	switch cfg.Provider {
	case config.ProviderHuggingFace:
		return NewHuggingFaceOracle(HuggingFaceConfig{
			BaseURL:        cfg.HFBaseURL,
			Model:          cfg.Model,
			Token:          cfg.HFToken,
			MaxInputTokens: cfg.MaxInputTokens,
		}, truncator), nil
	case config.ProviderGemini:
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		return NewGeminiOracle(ctx, cfg.GeminiAPIKey, cfg.Model, cfg.MaxInputTokens, truncator)
	case config.ProviderOpenAI:
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		return NewOpenAIOracle(OpenAIConfig{
			APIKey:         cfg.OpenAIAPIKey,
			BaseURL:        cfg.OpenAIBaseURL,
			Model:          cfg.Model,
			MaxInputTokens: cfg.MaxInputTokens,
		}, truncator), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Provider)
	}
}

package oracle

import (
	"context"
	"fmt"
	"strings"

	"summarizer/backend/internal/oracle/prompt"

	"google.golang.org/genai"
)

// GeminiOracle implements Oracle using the Gemini API
type GeminiOracle struct {
	client         *genai.Client
	model          string
	maxInputTokens int
	truncator      Truncator
}

// NewGeminiOracle creates a Gemini client for model
func NewGeminiOracle(ctx context.Context, apiKey, model string, maxInputTokens int, truncator Truncator) (*GeminiOracle, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	if truncator == nil {
		truncator = WordTruncator{}
	}

	return &GeminiOracle{
		client:         client,
		model:          model,
		maxInputTokens: maxInputTokens,
		truncator:      truncator,
	}, nil
}

func (o *GeminiOracle) Name() string {
	return "gemini:" + o.model
}

// Generate summarizes text. Beam count has no Gemini equivalent and is
// ignored; length bounds and length penalty go into the prompt.
func (o *GeminiOracle) Generate(ctx context.Context, text string, params Params) (string, error) {
	input := o.truncator.Truncate(text, o.maxInputTokens)
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{{Text: prompt.BuildGenerationPrompt(input, prompt.GenerationOptions{
				MinTokens:     params.MinLength,
				MaxTokens:     params.MaxLength,
				LengthPenalty: params.LengthPenalty,
			})}},
		},
	}

	resp, err := o.client.Models.GenerateContent(ctx, o.model, contents, geminiConfig(params))
	if err != nil {
		return "", classify(err)
	}

	// Extract text from response
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		var sb strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			sb.WriteString(part.Text)
		}
		if out := strings.TrimSpace(sb.String()); out != "" {
			return out, nil
		}
	}
	return "", ErrEmptyOutput
}

func geminiConfig(params Params) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(params.MaxLength),
		CandidateCount:  1,
	}
	if !params.DoSample {
		config.Temperature = genai.Ptr[float32](0)
		return config
	}

	config.Temperature = genai.Ptr(float32(params.Temperature))
	if params.TopK > 0 {
		config.TopK = genai.Ptr(float32(params.TopK))
	}
	if params.TopP > 0 {
		config.TopP = genai.Ptr(float32(params.TopP))
	}
	return config
}

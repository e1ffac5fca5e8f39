package oracle

import (
	"context"
	"fmt"
	"strings"

	"summarizer/backend/internal/oracle/prompt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const systemPrompt = `You summarize documents. Stay faithful to the source,
keep critical names, numbers and dates, and never add facts.
Answer in the language of the input.`

// OpenAIConfig contains configuration for an OpenAI-compatible backend.
type OpenAIConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	MaxInputTokens int
}

// OpenAIOracle calls the Chat Completions API of OpenAI or any compatible server.
type OpenAIOracle struct {
	client         openai.Client
	model          string
	maxInputTokens int
	truncator      Truncator
}

func NewOpenAIOracle(cfg OpenAIConfig, truncator Truncator) *OpenAIOracle {
	// failures surface to the caller as-is; nothing in the request path retries
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if truncator == nil {
		truncator = WordTruncator{}
	}

	return &OpenAIOracle{
		client:         openai.NewClient(opts...),
		model:          cfg.Model,
		maxInputTokens: cfg.MaxInputTokens,
		truncator:      truncator,
	}
}

func (o *OpenAIOracle) Name() string {
	return "openai:" + o.model
}

func (o *OpenAIOracle) Generate(ctx context.Context, text string, params Params) (string, error) {
	input := o.truncator.Truncate(text, o.maxInputTokens)
	userPrompt := prompt.BuildGenerationPrompt(input, prompt.GenerationOptions{
		MinTokens:     params.MinLength,
		MaxTokens:     params.MaxLength,
		LengthPenalty: params.LengthPenalty,
	})

	resp, err := o.client.Chat.Completions.New(ctx, chatParams(o.model, userPrompt, params))
	if err != nil {
		return "", classify(fmt.Errorf("failed to do request: %w", err))
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyOutput
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", ErrEmptyOutput
	}
	return summary, nil
}

func chatParams(model, userPrompt string, params Params) openai.ChatCompletionNewParams {
	req := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		MaxCompletionTokens: openai.Int(int64(params.MaxLength)),
	}

	if params.DoSample {
		req.Temperature = openai.Float(params.Temperature)
		if params.TopP > 0 {
			req.TopP = openai.Float(params.TopP)
		}
	} else {
		req.Temperature = openai.Float(0)
	}
	if fp := frequencyPenalty(params.NoRepeatNgramSize); fp > 0 {
		req.FrequencyPenalty = openai.Float(fp)
	}
	return req
}

// frequencyPenalty approximates a no-repeat n-gram window: smaller windows
// forbid more repetition, so they get a stronger penalty.
func frequencyPenalty(window int) float64 {
	if window <= 0 {
		return 0
	}
	return min(1.5/float64(window), 1.0)
}

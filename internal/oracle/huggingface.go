package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HuggingFaceConfig points at a hosted seq2seq summarization endpoint.
type HuggingFaceConfig struct {
	BaseURL        string
	Model          string
	Token          string
	MaxInputTokens int
	HTTPClient     *http.Client
}

// HuggingFaceOracle calls a Hugging Face Inference summarization pipeline,
// which accepts the generate parameters directly.
type HuggingFaceOracle struct {
	cfg       HuggingFaceConfig
	client    *http.Client
	truncator Truncator
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	NumBeams          int      `json:"num_beams,omitempty"`
	MinLength         int      `json:"min_length,omitempty"`
	MaxLength         int      `json:"max_length,omitempty"`
	DoSample          bool     `json:"do_sample"`
	Temperature       *float64 `json:"temperature,omitempty"`
	TopK              *int     `json:"top_k,omitempty"`
	TopP              *float64 `json:"top_p,omitempty"`
	NoRepeatNgramSize int      `json:"no_repeat_ngram_size,omitempty"`
	LengthPenalty     float64  `json:"length_penalty,omitempty"`
	EarlyStopping     bool     `json:"early_stopping,omitempty"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfSummary struct {
	SummaryText   string `json:"summary_text"`
	GeneratedText string `json:"generated_text"`
}

type hfError struct {
	Error string `json:"error"`
}

func NewHuggingFaceOracle(cfg HuggingFaceConfig, truncator Truncator) *HuggingFaceOracle {
	// no client timeout; the request context carries GENERATION_TIMEOUT
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	if truncator == nil {
		truncator = WordTruncator{}
	}
	return &HuggingFaceOracle{cfg: cfg, client: client, truncator: truncator}
}

func (o *HuggingFaceOracle) Name() string {
	return "huggingface:" + o.cfg.Model
}

func (o *HuggingFaceOracle) Generate(ctx context.Context, text string, params Params) (string, error) {
	body, err := json.Marshal(hfRequest{
		Inputs:     o.truncator.Truncate(text, o.cfg.MaxInputTokens),
		Parameters: toHFParameters(params),
		Options:    hfOptions{WaitForModel: true},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := strings.TrimRight(o.cfg.BaseURL, "/") + "/" + o.cfg.Model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if o.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+o.cfg.Token)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(data))
		var apiErr hfError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			msg = apiErr.Error
		}
		return "", classify(&HTTPStatusError{StatusCode: resp.StatusCode, Body: msg})
	}

	var summaries []hfSummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(summaries) == 0 {
		return "", ErrEmptyOutput
	}

	summary := summaries[0].SummaryText
	if summary == "" {
		summary = summaries[0].GeneratedText
	}
	if strings.TrimSpace(summary) == "" {
		return "", ErrEmptyOutput
	}
	return summary, nil
}

// toHFParameters only sends sampling knobs when sampling is on; the
// pipeline rejects temperature 0 with do_sample.
func toHFParameters(p Params) hfParameters {
	hp := hfParameters{
		NumBeams:          p.NumBeams,
		MinLength:         p.MinLength,
		MaxLength:         p.MaxLength,
		DoSample:          p.DoSample,
		NoRepeatNgramSize: p.NoRepeatNgramSize,
		LengthPenalty:     p.LengthPenalty,
		EarlyStopping:     p.EarlyStopping,
	}
	if p.DoSample {
		temperature, topK, topP := p.Temperature, p.TopK, p.TopP
		hp.Temperature = &temperature
		if topK > 0 {
			hp.TopK = &topK
		}
		if topP > 0 {
			hp.TopP = &topP
		}
	}
	return hp
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider names accepted by MODEL_PROVIDER.
const (
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
	ProviderOpenAI      = "openai"
)

type Config struct {
	Env            string   `env:"ENV"`
	Port           string   `env:"PORT"            envDefault:"8000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://127.0.0.1:3000" envSeparator:","`

	Provider string `env:"MODEL_PROVIDER" envDefault:"huggingface"`
	Model    string `env:"MODEL_NAME"     envDefault:"facebook/bart-large-cnn"`

	HFToken       string `env:"HF_API_TOKEN"`
	HFBaseURL     string `env:"HF_BASE_URL"     envDefault:"https://api-inference.huggingface.co/models"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	MaxInputTokens    int           `env:"MAX_INPUT_TOKENS"   envDefault:"1024"`
	MaxTextChars      int           `env:"MAX_TEXT_CHARS"     envDefault:"50000"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"0s"`

	Sampling Sampling `envPrefix:"SAMPLING_"`

	RateLimitPerSecond float64 `env:"RATE_LIMIT_PER_SECOND" envDefault:"2"`
	RateLimitBurst     int     `env:"RATE_LIMIT_BURST"      envDefault:"5"`
	DailyQuota         int64   `env:"DAILY_QUOTA"           envDefault:"0"`
}

// Sampling holds the ranges per-request generation parameters are drawn from.
type Sampling struct {
	Enabled          bool    `env:"ENABLED"            envDefault:"true"`
	TopKMin          int     `env:"TOP_K_MIN"          envDefault:"30"`
	TopKMax          int     `env:"TOP_K_MAX"          envDefault:"60"`
	TopPMin          float64 `env:"TOP_P_MIN"          envDefault:"0.85"`
	TopPMax          float64 `env:"TOP_P_MAX"          envDefault:"0.95"`
	LengthPenaltyMin float64 `env:"LENGTH_PENALTY_MIN" envDefault:"0.8"`
	LengthPenaltyMax float64 `env:"LENGTH_PENALTY_MAX" envDefault:"1.2"`
	BeamsMin         int     `env:"BEAMS_MIN"          envDefault:"2"`
	BeamsMax         int     `env:"BEAMS_MAX"          envDefault:"5"`
}

// Load reads .env.local and .env when present, then parses the environment.
func Load() (Config, error) {
	// missing files are fine; real env vars always win
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot run with.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderHuggingFace, ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown MODEL_PROVIDER %q", c.Provider)
	}
	if c.MaxTextChars <= 0 {
		return fmt.Errorf("MAX_TEXT_CHARS must be positive, got %d", c.MaxTextChars)
	}
	if c.MaxInputTokens <= 0 {
		return fmt.Errorf("MAX_INPUT_TOKENS must be positive, got %d", c.MaxInputTokens)
	}
	return c.Sampling.Validate()
}

func (s Sampling) Validate() error {
	if s.TopKMin < 0 || s.TopKMin > s.TopKMax {
		return fmt.Errorf("invalid top-k range [%d, %d]", s.TopKMin, s.TopKMax)
	}
	if s.TopPMin < 0 || s.TopPMax > 1 || s.TopPMin > s.TopPMax {
		return fmt.Errorf("invalid top-p range [%g, %g]", s.TopPMin, s.TopPMax)
	}
	if s.LengthPenaltyMin > s.LengthPenaltyMax {
		return fmt.Errorf("invalid length penalty range [%g, %g]", s.LengthPenaltyMin, s.LengthPenaltyMax)
	}
	if s.BeamsMin < 1 || s.BeamsMin > s.BeamsMax {
		return fmt.Errorf("invalid beam range [%d, %d]", s.BeamsMin, s.BeamsMax)
	}
	return nil
}

// IsProduction reports whether ENV=production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, ProviderHuggingFace, cfg.Provider)
	assert.Equal(t, "facebook/bart-large-cnn", cfg.Model)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 1024, cfg.MaxInputTokens)
	assert.Equal(t, 50000, cfg.MaxTextChars)
	assert.Equal(t, time.Duration(0), cfg.GenerationTimeout)
	assert.True(t, cfg.Sampling.Enabled)
	assert.Equal(t, 30, cfg.Sampling.TopKMin)
	assert.Equal(t, 60, cfg.Sampling.TopKMax)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MODEL_PROVIDER", "gemini")
	t.Setenv("MODEL_NAME", "gemini-2.5-flash-lite")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("SAMPLING_ENABLED", "false")
	t.Setenv("SAMPLING_BEAMS_MAX", "8")
	t.Setenv("GENERATION_TIMEOUT", "45s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.Model)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.False(t, cfg.Sampling.Enabled)
	assert.Equal(t, 8, cfg.Sampling.BeamsMax)
	assert.Equal(t, 45*time.Second, cfg.GenerationTimeout)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MODEL_PROVIDER", "torch")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown MODEL_PROVIDER")
}

func TestSamplingValidate(t *testing.T) {
	valid := Sampling{TopKMin: 10, TopKMax: 20, TopPMin: 0.8, TopPMax: 0.9, LengthPenaltyMin: 1, LengthPenaltyMax: 1, BeamsMin: 1, BeamsMax: 4}
	require.NoError(t, valid.Validate())

	badTopK := valid
	badTopK.TopKMin = 30
	assert.Error(t, badTopK.Validate())

	badTopP := valid
	badTopP.TopPMax = 1.5
	assert.Error(t, badTopP.Validate())

	badBeams := valid
	badBeams.BeamsMin = 0
	assert.Error(t, badBeams.Validate())
}

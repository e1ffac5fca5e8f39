package summarize

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"summarizer/backend/internal/config"
	"summarizer/backend/internal/model"
	"summarizer/backend/internal/oracle"
	"summarizer/backend/internal/oracle/prompt"
)

type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) Name() string {
	return "mock"
}

func (m *MockOracle) Generate(ctx context.Context, text string, params oracle.Params) (string, error) {
	args := m.Called(text, params)
	return args.String(0), args.Error(1)
}

var testRanges = config.Sampling{
	Enabled: true, TopKMin: 30, TopKMax: 60, TopPMin: 0.85, TopPMax: 0.95,
	LengthPenaltyMin: 0.8, LengthPenaltyMax: 1.2, BeamsMin: 2, BeamsMax: 5,
}

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestSummarizeDeterministic(t *testing.T) {
	m := new(MockOracle)
	m.On("Generate", "Long input text.", mock.Anything).Return("  Summary: A summary.  ", nil)

	svc := NewService(m, Options{MaxTextChars: 1000})
	res, err := svc.Summarize(context.Background(), &model.SummarizationRequest{Text: "Long input text."})
	require.NoError(t, err)
	assert.Equal(t, "A summary.", res.Summary)

	params := m.Calls[0].Arguments.Get(1).(oracle.Params)
	assert.False(t, params.DoSample)
	assert.Equal(t, 4, params.NumBeams)
	assert.Equal(t, 40, params.MinLength)
	assert.Equal(t, 150, params.MaxLength)
	assert.Equal(t, 3, params.NoRepeatNgramSize)
	m.AssertExpectations(t)
}

func TestSummarizeLengthTiersOrderMaxTokens(t *testing.T) {
	maxFor := func(tier string) int {
		m := new(MockOracle)
		m.On("Generate", mock.Anything, mock.Anything).Return("Out.", nil)
		svc := NewService(m, Options{MaxTextChars: 1000})
		_, err := svc.Summarize(context.Background(), &model.SummarizationRequest{Text: "In.", Length: tier})
		require.NoError(t, err)
		return m.Calls[0].Arguments.Get(1).(oracle.Params).MaxLength
	}

	short, medium, long := maxFor("short"), maxFor("medium"), maxFor("long")
	assert.Less(t, short, medium)
	assert.Less(t, medium, long)
	assert.Equal(t, medium, maxFor(""))
}

func TestSummarizeAppliesStyleInstruction(t *testing.T) {
	m := new(MockOracle)
	m.On("Generate", prompt.BulletInstruction+"Body.", mock.Anything).Return(prompt.BulletInstruction+"- point", nil)

	svc := NewService(m, Options{MaxTextChars: 1000})
	res, err := svc.Summarize(context.Background(), &model.SummarizationRequest{Text: "Body.", SummaryStyle: "bullet"})
	require.NoError(t, err)
	assert.Equal(t, "- point", res.Summary)
	m.AssertExpectations(t)
}

func TestSummarizeRefinesToWordBudget(t *testing.T) {
	m := new(MockOracle)
	m.On("Generate", mock.Anything, mock.Anything).
		Return("The cat sat on the mat. Stock markets rallied today on strong earnings. The mat was red.", nil)

	svc := NewService(m, Options{MaxTextChars: 1000})
	res, err := svc.Summarize(context.Background(), &model.SummarizationRequest{Text: "Input.", MaxWords: intPtr(12)})
	require.NoError(t, err)
	assert.Equal(t, "Stock markets rallied today on strong earnings.", res.Summary)
}

func TestSummarizeZeroBudgetIsUnbounded(t *testing.T) {
	m := new(MockOracle)
	m.On("Generate", mock.Anything, mock.Anything).Return("One. Two. Three.", nil)

	svc := NewService(m, Options{MaxTextChars: 1000})
	res, err := svc.Summarize(context.Background(), &model.SummarizationRequest{Text: "Input.", TargetWordCount: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, "One. Two. Three.", res.Summary)
}

func TestSummarizeValidationSkipsOracle(t *testing.T) {
	tests := []struct {
		name string
		req  model.SummarizationRequest
	}{
		{"empty", model.SummarizationRequest{Text: ""}},
		{"blank", model.SummarizationRequest{Text: "   "}},
		{"too long", model.SummarizationRequest{Text: strings.Repeat("x", 51)}},
		{"temperature", model.SummarizationRequest{Text: "ok", Temperature: floatPtr(3)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := new(MockOracle)
			svc := NewService(m, Options{MaxTextChars: 50})

			req := test.req
			_, err := svc.Summarize(context.Background(), &req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var se *Error
			require.True(t, errors.As(err, &se))
			assert.NotEmpty(t, se.Detail)
			m.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
		})
	}
}

func TestSummarizeNotReady(t *testing.T) {
	svc := NewService(nil, Options{MaxTextChars: 50})
	assert.False(t, svc.Ready())

	_, err := svc.Summarize(context.Background(), &model.SummarizationRequest{Text: "ok"})
	assert.True(t, errors.Is(err, ErrNotReady))
}

func TestSummarizeGenerationErrors(t *testing.T) {
	rateLimited := errors.Join(oracle.ErrRateLimited, errors.New("429"))

	tests := []struct {
		name     string
		output   string
		err      error
		wantKind error
		wantIs   error
	}{
		{"backend failure", "", errors.New("tensor shape mismatch"), ErrGeneration, nil},
		{"rate limited", "", rateLimited, ErrGeneration, oracle.ErrRateLimited},
		{"loading", "", oracle.ErrUnavailable, ErrNotReady, oracle.ErrUnavailable},
		{"blank output", "   ", nil, ErrGeneration, oracle.ErrEmptyOutput},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := new(MockOracle)
			m.On("Generate", mock.Anything, mock.Anything).Return(test.output, test.err)

			svc := NewService(m, Options{MaxTextChars: 50})
			_, err := svc.Summarize(context.Background(), &model.SummarizationRequest{Text: "ok"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.wantKind), "got %v", err)
			if test.wantIs != nil {
				assert.True(t, errors.Is(err, test.wantIs), "got %v", err)
			}
		})
	}
}

func TestSummarizeSamplingDrawsPerCall(t *testing.T) {
	m := new(MockOracle)
	m.On("Generate", mock.Anything, mock.Anything).Return("Out.", nil)

	svc := NewService(m, Options{MaxTextChars: 100, Sampler: NewSampler(rand.NewPCG(7, 11), testRanges)})
	for i := 0; i < 20; i++ {
		_, err := svc.Summarize(context.Background(), &model.SummarizationRequest{Text: "In.", Temperature: floatPtr(0.9)})
		require.NoError(t, err)
	}

	seen := map[int]bool{}
	for _, call := range m.Calls {
		p := call.Arguments.Get(1).(oracle.Params)
		assert.True(t, p.DoSample)
		assert.InDelta(t, 0.9, p.Temperature, 1e-9)
		seen[p.TopK] = true
	}
	assert.Greater(t, len(seen), 1, "top-k should vary between calls")
}

func TestBuildParamsZeroTemperatureIsDeterministic(t *testing.T) {
	p := BuildParams(model.LengthShort, 0, NewSampler(rand.NewPCG(1, 2), testRanges))
	assert.False(t, p.DoSample)
	assert.Equal(t, 4, p.NumBeams)
	assert.Equal(t, 60, p.MaxLength)
}

func TestSamplerDrawsWithinRanges(t *testing.T) {
	s := NewSampler(rand.NewPCG(1, 2), testRanges)
	for i := 0; i < 500; i++ {
		d := s.Draw()
		assert.GreaterOrEqual(t, d.TopK, 30)
		assert.LessOrEqual(t, d.TopK, 60)
		assert.GreaterOrEqual(t, d.TopP, 0.85)
		assert.LessOrEqual(t, d.TopP, 0.95)
		assert.GreaterOrEqual(t, d.LengthPenalty, 0.8)
		assert.LessOrEqual(t, d.LengthPenalty, 1.2)
		assert.GreaterOrEqual(t, d.NumBeams, 2)
		assert.LessOrEqual(t, d.NumBeams, 5)
	}
}

func TestSamplerSameSeedSameDraws(t *testing.T) {
	a := NewSampler(rand.NewPCG(3, 4), testRanges)
	b := NewSampler(rand.NewPCG(3, 4), testRanges)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Draw(), b.Draw())
	}
}

func TestLengthPresetsStrictlyIncrease(t *testing.T) {
	assert.Less(t, LengthPresets[model.LengthShort].MaxTokens, LengthPresets[model.LengthMedium].MaxTokens)
	assert.Less(t, LengthPresets[model.LengthMedium].MaxTokens, LengthPresets[model.LengthLong].MaxTokens)
}

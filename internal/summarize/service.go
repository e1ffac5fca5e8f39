// Package summarize runs one summarization request end to end: validation,
// parameter mapping, the oracle call and extractive refinement.
package summarize

import (
	"context"
	"errors"
	"log"
	"time"

	"summarizer/backend/internal/model"
	"summarizer/backend/internal/oracle"
	"summarizer/backend/internal/oracle/prompt"
	"summarizer/backend/internal/oracle/response"
	"summarizer/backend/internal/refiner"
	"summarizer/backend/internal/summarize/validation"
)

// Options configures a Service.
type Options struct {
	MaxTextChars int
	// Sampler enables randomized decoding; nil means always deterministic.
	Sampler *Sampler
	// Timeout bounds each oracle call; zero means no bound.
	Timeout time.Duration
}

// Service is shared by all requests. The oracle is only read.
type Service struct {
	oracle   oracle.Oracle
	pipeline *validation.Pipeline
	opts     Options
}

func NewService(o oracle.Oracle, opts Options) *Service {
	return &Service{
		oracle:   o,
		pipeline: validation.DefaultPipeline(),
		opts:     opts,
	}
}

// Ready reports whether an oracle is attached.
func (s *Service) Ready() bool {
	return s != nil && s.oracle != nil
}

// OracleName names the backend for logs and health output.
func (s *Service) OracleName() string {
	if !s.Ready() {
		return ""
	}
	return s.oracle.Name()
}

// Summarize validates req, asks the oracle for an abstractive summary and,
// when a word budget is set, trims it with the extractive refiner.
// Failures are *Error values of kind ErrValidation, ErrNotReady or ErrGeneration.
func (s *Service) Summarize(ctx context.Context, req *model.SummarizationRequest) (*model.SummarizationResult, error) {
	if err := s.pipeline.Validate(ctx, validation.Input{
		Request:      req,
		MaxTextChars: s.opts.MaxTextChars,
	}); err != nil {
		return nil, validationError(err)
	}

	if !s.Ready() {
		return nil, notReadyError()
	}

	style := req.StyleName()
	params := BuildParams(req.LengthTier(), req.TemperatureOrDefault(), s.opts.Sampler)
	log.Printf("[SUMMARIZE] oracle=%s style=%s tier=%s %s", s.oracle.Name(), style, req.LengthTier(), params)

	genCtx := ctx
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := s.oracle.Generate(genCtx, prompt.WithInstruction(req.Text, style), params)
	if err != nil {
		log.Printf("[ORACLE] Generation failed after %v: %v", time.Since(start), err)
		if errors.Is(err, oracle.ErrUnavailable) {
			return nil, &Error{Kind: ErrNotReady, Detail: "Summarization model is loading. Please try again shortly.", Err: err}
		}
		return nil, generationError(err)
	}
	log.Printf("[PERF] Generation completed in %v", time.Since(start))

	summary := response.Clean(raw, prompt.InstructionPrefix(style))
	if summary == "" {
		return nil, generationError(oracle.ErrEmptyOutput)
	}

	if budget := req.WordBudget(); budget > 0 {
		summary = refiner.Refine(summary, budget)
		log.Printf("[SUMMARIZE] Refined to %d/%d words", refiner.CountWords(summary), budget)
	}

	return &model.SummarizationResult{Summary: summary}, nil
}

// Package validation checks a summarization request before any model work.
package validation

import (
	"context"

	"summarizer/backend/internal/model"
)

// Input is a request plus the limits it is checked against.
type Input struct {
	Request      *model.SummarizationRequest
	MaxTextChars int
}

// Result carries the client-facing reason when a check fails.
type Result struct {
	IsValid bool
	Reason  string
}

func OK() Result {
	return Result{IsValid: true}
}

func Fail(reason string) Result {
	return Result{Reason: reason}
}

// Validator is one request check. Name shows up in rejection logs.
type Validator interface {
	Name() string
	Validate(ctx context.Context, input Input) Result
}

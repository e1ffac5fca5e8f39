package validation

import (
	"context"
	"errors"
	"log"
)

// Pipeline runs validators in order and stops at the first failure
type Pipeline struct {
	validators []Validator
}

// NewPipeline creates a new validation pipeline
func NewPipeline(validators ...Validator) *Pipeline {
	return &Pipeline{validators: validators}
}

// DefaultPipeline checks everything a request must satisfy before any model work
func DefaultPipeline() *Pipeline {
	return NewPipeline(
		NewTextRequiredValidator(),
		NewTextLengthValidator(),
		NewTemperatureValidator(),
		NewWordBudgetValidator(),
		NewLengthTierValidator(),
		NewStyleValidator(),
	)
}

// Validate returns nil when every validator passes, otherwise an error
// carrying the first failure's reason.
func (p *Pipeline) Validate(ctx context.Context, input Input) error {
	for _, v := range p.validators {
		result := v.Validate(ctx, input)
		if result.IsValid {
			continue
		}

		log.Printf("[Pipeline] %s: FAIL - %s", v.Name(), result.Reason)
		return errors.New(result.Reason)
	}
	return nil
}
